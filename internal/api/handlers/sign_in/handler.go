package sign_in

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/identity"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/identity/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверный email или пароль"
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

// Handle POST /api/v1/auth/sign-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/sign-in - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.SignIn(r.Context(), &req)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			h.logger.Warn("POST /auth/sign-in - Invalid credentials")
			handlers.RespondError(w, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		h.logger.Error("POST /auth/sign-in - Failed to sign in: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/sign-in - Session issued: user_id=%s", session.User.ID)
	handlers.RespondJSON(w, http.StatusOK, session)
}
