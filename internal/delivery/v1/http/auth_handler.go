package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type AuthHandler struct {
	authUsecase usecase.AuthUC
	sessions    *SessionMiddleware
	logger      logger.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUC, sessions *SessionMiddleware, logger logger.Logger) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, sessions: sessions, logger: logger}
}

// registration
//
//	@Summary		Регистрация
//	@Description	Создает пользователя и сразу открывает для него сессию
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			user	body		RegistrationIn	true	"Данные пользователя"
//	@Success		200		{object}	SuccessResponse
//	@Failure		400		{object}	ErrorResponse	"Имя занято или пароли не совпадают"
//	@Router			/registration [post]
func (h *AuthHandler) registration(w http.ResponseWriter, r *http.Request) {
	var in RegistrationIn
	if err := decodeJSON(r, &in); err != nil {
		WriteError(w, err)
		return
	}

	res, err := h.authUsecase.Register(r.Context(), usecase.NewRegisterReq(in.Username, in.Email, in.Password1, in.Password2))
	if err != nil {
		h.logger.Warnf("registration failed: %v", err)
		WriteError(w, err)
		return
	}

	h.sessions.setSessionCookie(w, res.SessionID)
	WriteSuccess(w, http.StatusOK, successResponse)
}

// login
//
//	@Summary	Вход
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body		LoginIn	true	"Имя и пароль"
//	@Success	200			{object}	SuccessResponse
//	@Failure	401			{object}	ErrorResponse
//	@Router		/login [post]
func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var in LoginIn
	if err := decodeJSON(r, &in); err != nil {
		WriteError(w, err)
		return
	}

	res, err := h.authUsecase.Login(r.Context(), usecase.NewLoginReq(in.Username, in.Password))
	if err != nil {
		WriteError(w, err)
		return
	}

	h.sessions.setSessionCookie(w, res.SessionID)
	WriteSuccess(w, http.StatusOK, successResponse)
}

// logout
//
//	@Summary	Выход
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	SuccessResponse
//	@Router		/logout [post]
func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authUsecase.Logout(r.Context(), h.sessions.sessionID(r)); err != nil {
		h.logger.Errorf(err, "logout")
		WriteError(w, err)
		return
	}

	h.sessions.clearSessionCookie(w)
	WriteSuccess(w, http.StatusOK, successResponse)
}

// currentUser
//
//	@Summary	Текущий пользователь
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	UserOut
//	@Failure	401	{object}	ErrorResponse
//	@Router		/user [get]
func (h *AuthHandler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.authUsecase.CurrentUser(r.Context(), PrincipalFromContext(r.Context()))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, UserOut{Username: user.Username})
}

// listUsers
//
//	@Summary		Список пользователей
//	@Description	Нужно право auth.view_user
//	@Tags			auth
//	@Produce		json
//	@Success		200	{array}		UserWithEmailOut
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Router			/users [get]
func (h *AuthHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.authUsecase.ListUsers(r.Context(), PrincipalFromContext(r.Context()))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toUsersOut(users))
}
