package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr error
	}{
		{"20.0", 2000, nil},
		{"599.99", 59999, nil},
		{"600", 60000, nil},
		{" 0.05 ", 5, nil},
		{"0", 0, nil},
		{"1000000000", 100_000_000_000, nil},
		{"20.505", 0, e.ErrPricePrecision},
		{"-1", 0, e.ErrInvalidPrice},
		{"abc", 0, e.ErrInvalidPrice},
		{"1000000000.01", 0, e.ErrInvalidPrice},
		{"", 0, e.ErrMissingFields},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePriceToCents(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.ErrorIs(t, err, e.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "20.00", formatCents(2000).String())
	assert.Equal(t, "0.05", formatCents(5).String())
	assert.Equal(t, "40.00", formatCents(4000).String())
}

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"not found", e.Wrap("op", e.ErrProductNotFound), http.StatusNotFound, e.ErrProductNotFound.Error()},
		{"validation", e.Wrap("a", e.Wrap("b", e.ErrCategorySlugTaken)), http.StatusBadRequest, e.ErrCategorySlugTaken.Error()},
		{"cost overflow", e.Wrap("OrderUseCase.CreateOrder", e.ErrOrderCostOverflow), http.StatusBadRequest, e.ErrOrderCostOverflow.Error()},
		{"unauthenticated", e.ErrNotLoggedIn, http.StatusUnauthorized, e.ErrNotLoggedIn.Error()},
		{"bad credentials", e.ErrInvalidCredentials, http.StatusUnauthorized, e.ErrInvalidCredentials.Error()},
		{"forbidden", e.ErrInsufficientRights, http.StatusForbidden, e.ErrInsufficientRights.Error()},
		{"unknown", errors.New("pq: connection reset"), http.StatusInternalServerError, e.ErrInternalServerError.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := ToHTTPResponse(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
