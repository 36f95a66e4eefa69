package sign_out

import (
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
)

type Handler struct {
	service IdentityService
	logger  Logger
}

func NewHandler(service IdentityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/sign-out
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session := handlers.SessionFromContext(r.Context())
	if session == nil {
		handlers.RespondUnauthorized(w)
		return
	}

	if err := h.service.SignOut(r.Context(), session); err != nil {
		h.logger.Error("POST /auth/sign-out - Failed to revoke session: user_id=%s, error=%v", session.User.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/sign-out - Session revoked: user_id=%s", session.User.ID)
	w.WriteHeader(http.StatusNoContent)
}
