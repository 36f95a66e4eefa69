package check_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-HotelBookingService/internal/usecase/check_availability"
)

const (
	msgInvalidRoomID = "некорректный ID номера"
	msgInvalidDates  = "некорректные даты, ожидается checkIn и checkOut в формате YYYY-MM-DD"
	msgNotFound      = "номер не найден"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/availability?checkIn=2024-06-01&checkOut=2024-06-03
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathUUID(r, "roomId")
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	query := r.URL.Query()
	checkIn, err := time.Parse(domain.DateFormat, query.Get("checkIn"))
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid checkIn: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}
	checkOut, err := time.Parse(domain.DateFormat, query.Get("checkOut"))
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid checkOut: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDates)

		case errors.Is(err, checkAvailability.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /rooms/{id}/availability - Failed to check availability: room_id=%s, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
