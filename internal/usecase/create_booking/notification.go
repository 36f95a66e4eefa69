package create_booking

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// templateVars собирает переменные шаблона письма-подтверждения
func templateVars(booking *domain.Booking, room *domain.Room, actorEmail, currency string, printer *message.Printer) map[string]string {
	return map[string]string{
		"guest_name":  booking.Guest.Name,
		"room_name":   room.Name,
		"check_in":    booking.CheckIn.Format(domain.NotificationDateFormat),
		"check_out":   booking.CheckOut.Format(domain.NotificationDateFormat),
		"guests":      strconv.Itoa(booking.Guests),
		"total_price": printer.Sprintf("%d", booking.TotalPrice),
		"currency":    currency,
		"to_email":    booking.Guest.Email,
		"reply_to":    actorEmail,
	}
}

// newPrinter создает принтер для локали; неизвестная локаль дает английский формат
func newPrinter(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}
