package get_profile

import (
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
)

type Handler struct {
	service ProfileService
	logger  Logger
}

func NewHandler(service ProfileService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor := handlers.Actor(r)
	if actor == nil {
		handlers.RespondUnauthorized(w)
		return
	}

	profile, err := h.service.Get(r.Context(), actor)
	if err != nil {
		h.logger.Error("GET /profile - Failed to get profile: user_id=%s, error=%v", actor.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, profile)
}
