package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5/middleware"
)

type principalCtxKey struct{}

// WithPrincipal кладёт пользователя запроса в контекст.
func WithPrincipal(ctx context.Context, p *domain.Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey{}, p)
}

// PrincipalFromContext возвращает пользователя запроса или nil для анонимного запроса.
func PrincipalFromContext(ctx context.Context) *domain.Principal {
	p, _ := ctx.Value(principalCtxKey{}).(*domain.Principal)
	return p
}

// SessionMiddleware восстанавливает пользователя по cookie сессии.
// Просроченная или неизвестная сессия превращает запрос в анонимный.
type SessionMiddleware struct {
	authUC usecase.AuthUC
	cfg    *cfg.SessionCfg
	logger logger.Logger
}

func NewSessionMiddleware(authUC usecase.AuthUC, cfg *cfg.SessionCfg, logger logger.Logger) *SessionMiddleware {
	return &SessionMiddleware{authUC: authUC, cfg: cfg, logger: logger}
}

func (m *SessionMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.cfg.CookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		principal, err := m.authUC.Authenticate(r.Context(), cookie.Value)
		if err != nil {
			if !errors.Is(err, e.ErrUnauthenticated) {
				m.logger.Warnf("session lookup failed: %v", err)
			}
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	})
}

// setSessionCookie выдаёт cookie сессии после входа или регистрации.
func (m *SessionMiddleware) setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(m.cfg.TTL.Seconds()),
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *SessionMiddleware) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *SessionMiddleware) sessionID(r *http.Request) string {
	cookie, err := r.Cookie(m.cfg.CookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// RequestLogger пишет строку access-лога на каждый запрос.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Infof("%s %s -> %d (%d bytes, %s) req_id=%s",
				r.Method, r.URL.Path, ww.Status(), ww.BytesWritten(), time.Since(start), middleware.GetReqID(r.Context()))
		})
	}
}
