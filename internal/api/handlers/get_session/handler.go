package get_session

import (
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/access"
)

type Handler struct {
	gate   AdminGate
	logger Logger
}

func NewHandler(gate AdminGate, logger Logger) *Handler {
	return &Handler{
		gate:   gate,
		logger: logger,
	}
}

// Handle GET /api/v1/auth/session
// Ошибка проверки прав не ломает ответ: пользователь видится как не-администратор
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session := handlers.SessionFromContext(r.Context())
	if session == nil {
		handlers.RespondUnauthorized(w)
		return
	}

	isAdmin := access.Check(r.Context(), h.gate, session.User.ID, h.logger)

	handlers.RespondJSON(w, http.StatusOK, fromDomain(session, isAdmin))
}
