package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

type sessionKey struct{}

// WithSession кладет сессию в контекст запроса (auth middleware)
func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext возвращает сессию или nil для анонимного запроса
func SessionFromContext(ctx context.Context) *domain.Session {
	session, _ := ctx.Value(sessionKey{}).(*domain.Session)
	return session
}

// Actor возвращает пользователя запроса или nil
func Actor(r *http.Request) *domain.Identity {
	session := SessionFromContext(r.Context())
	if session == nil {
		return nil
	}
	user := session.User
	return &user
}

// PathUUID извлекает UUID из переменной маршрута
func PathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return uuid.Nil, fmt.Errorf("missing path variable %q", name)
	}
	return uuid.Parse(raw)
}
