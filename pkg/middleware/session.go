package middleware

import (
	"net/http"

	"movie-review/internal/data/repository"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

// ViewSession attaches the browser's view session to the request context,
// starting a new one (and setting the cookie) when the cookie is missing,
// unknown or expired.
func ViewSession(sessionRepo repository.SessionRepository, cookieName string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cookie, err := r.Cookie(cookieName); err == nil {
				session, err := sessionRepo.FindValidSession(r.Context(), cookie.Value)
				if err != nil {
					logger.Error("Failed to validate session", zap.Error(err))
					utils.ResponseInternalError(w, "Internal server error")
					return
				}
				if session != nil {
					next.ServeHTTP(w, r.WithContext(utils.SetSessionContext(r.Context(), session.Token)))
					return
				}
			}

			session, err := sessionRepo.Create(r.Context())
			if err != nil {
				logger.Error("Failed to create session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			logger.Debug("Started view session",
				zap.String("path", r.URL.Path),
				zap.String("ip", r.RemoteAddr),
			)

			http.SetCookie(w, &http.Cookie{
				Name:     cookieName,
				Value:    session.Token.String(),
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
				Secure:   r.TLS != nil,
			})

			next.ServeHTTP(w, r.WithContext(utils.SetSessionContext(r.Context(), session.Token)))
		})
	}
}
