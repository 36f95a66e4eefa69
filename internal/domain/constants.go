package domain

// Business validation constants
const (
	MinGuests              = 1
	MinPasswordLength      = 6
	MaxGuestNameLength     = 200
	MaxGuestPhoneLength    = 32
	MaxFullNameLength      = 200
	DefaultMaxNights       = 365
	NotificationDateFormat = "Jan 02, 2006"
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, при которых бронирование занимает номер
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// RevenueStatuses статусы, учитываемые в выручке
var RevenueStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCompleted,
}
