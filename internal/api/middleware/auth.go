package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/identity"
)

const bearerPrefix = "Bearer "

// RequireAuth пропускает запрос дальше только с действующим Bearer токеном
// Сессия кладется в контекст (handlers.SessionFromContext)
func RequireAuth(sessions SessionResolver, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				handlers.RespondUnauthorized(w)
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))

			session, err := sessions.GetSession(r.Context(), raw)
			if err != nil {
				if !errors.Is(err, identity.ErrNoSession) {
					logger.Error("%s %s - Failed to resolve session: %v", r.Method, r.URL.Path, err)
					handlers.RespondInternalError(w)
					return
				}
				logger.Warn("%s %s - Rejected token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(handlers.WithSession(r.Context(), session)))
		})
	}
}
