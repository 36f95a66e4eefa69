package list_bookings

import (
	"net/url"

	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings/models"
)

// requestFromQuery собирает фильтр из query параметров
// ?status=confirmed&roomId=...&checkInFrom=2024-06-01&checkInTo=2024-06-30
func requestFromQuery(query url.Values) *models.ListBookingsRequest {
	return &models.ListBookingsRequest{
		Status:      optional(query, "status"),
		RoomID:      optional(query, "roomId"),
		CheckInFrom: optional(query, "checkInFrom"),
		CheckInTo:   optional(query, "checkInTo"),
	}
}

func optional(query url.Values, key string) *string {
	value := query.Get(key)
	if value == "" {
		return nil
	}
	return &value
}
