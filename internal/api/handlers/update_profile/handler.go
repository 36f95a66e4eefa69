package update_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/profiles"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/profiles/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle PUT /api/v1/profile
// Неизвестные поля (в том числе isAdmin) отклоняются при декодировании
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor := handlers.Actor(r)
	if actor == nil {
		handlers.RespondUnauthorized(w)
		return
	}

	var req models.UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	profile, err := h.service.Update(r.Context(), actor, &req)
	if err != nil {
		if errors.Is(err, profiles.ErrInvalidInput) {
			h.logger.Warn("PUT /profile - Validation failed: %v", err)
			handlers.RespondBadRequest(w, handlers.TrimSentinel(err, profiles.ErrInvalidInput))
			return
		}
		h.logger.Error("PUT /profile - Failed to update profile: user_id=%s, error=%v", actor.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /profile - Profile updated: user_id=%s", actor.ID)
	handlers.RespondJSON(w, http.StatusOK, profile)
}
