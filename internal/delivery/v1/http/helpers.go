package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type IDResponse struct {
	ID int64 `json:"id"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

var successResponse = SuccessResponse{Success: true}

// ToHTTPResponse выбирает код по классу ошибки. Сообщение берётся из конкретной ошибки,
// для неизвестных ошибок наружу уходит только общий текст.
func ToHTTPResponse(err error) (int, string) {
	msg := e.ErrInternalServerError.Error()
	if cause := e.Cause(err); cause != nil {
		msg = cause.Error()
	}

	switch {
	case errors.Is(err, e.ErrNotFound):
		return http.StatusNotFound, msg
	case errors.Is(err, e.ErrValidation):
		return http.StatusBadRequest, msg
	case errors.Is(err, e.ErrUnauthenticated), errors.Is(err, e.ErrAuthenticationFailed):
		return http.StatusUnauthorized, msg
	case errors.Is(err, e.ErrForbidden):
		return http.StatusForbidden, msg
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parsePriceToCents converts a string like "599.99" or "600" to int64 cents.
// Returns error if:
// - invalid format
// - more than 2 decimal places
// - negative value
// - exceeds reasonable limit (10^9 rubles)
func parsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.Wrap("price is empty", e.ErrMissingFields)
	}

	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, e.Wrap(s, e.ErrInvalidPrice)
	}

	if d.IsNegative() {
		return 0, e.Wrap(s, e.ErrInvalidPrice)
	}

	maxPrice := decimal.NewFromInt(1_000_000_000)
	if d.GreaterThan(maxPrice) {
		return 0, e.Wrap(s, e.ErrInvalidPrice)
	}

	// "20.50" допустимо, "20.505" нет
	if !d.Equal(d.Round(2)) {
		return 0, e.Wrap(s, e.ErrPricePrecision)
	}

	return d.Shift(2).IntPart(), nil
}

// formatCents превращает копейки в десятичное JSON-число: 2000 -> 20.00.
func formatCents(cents int64) json.Number {
	return json.Number(decimal.New(cents, -2).StringFixed(2))
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	return nil
}

// decodeJSON читает тело запроса в dst. Неизвестные поля игнорируются.
func decodeJSON(r *http.Request, dst any) error {
	const maxBodySize = 1 << 20

	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "application/json") {
		return e.Wrap(ct, e.ErrExpectedJSON)
	}

	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(dst); err != nil {
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	return nil
}

func parseImage(files []*multipart.FileHeader) (*usecase.ProductImage, error) {
	const maxFileSize = 15 << 20

	if len(files) == 0 {
		return nil, e.ErrNoImages
	}

	fh := files[0]
	data, mimeType, err := readFile(fh, maxFileSize)
	if err != nil {
		return nil, err
	}

	return usecase.NewProductImage(data, mimeType, int64(len(data)), fh.Filename), nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxSize+1))
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	switch mimeType {
	case "image/jpeg", "image/png", "image/webp":
	default:
		return nil, "", e.Wrap(mimeType, e.ErrUnsupportedMediaType)
	}

	return data, mimeType, nil
}

// pathID достаёт положительный целочисленный параметр маршрута.
func pathID(r *http.Request, name string) (int64, error) {
	return parseID(chi.URLParam(r, name), name)
}

// queryID достаёт положительный целочисленный query-параметр.
func queryID(r *http.Request, name string) (int64, error) {
	return parseID(r.URL.Query().Get(name), name)
}

func parseID(raw, name string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, e.Wrap(name+"="+raw, e.ErrInvalidID)
	}

	return id, nil
}

// optionalPrice разбирает необязательный фильтр по цене.
func optionalPrice(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	cents, err := parsePriceToCents(raw)
	if err != nil {
		return nil, err
	}

	return &cents, nil
}

func optionalString(r *http.Request, name string) *string {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}

	return &raw
}
