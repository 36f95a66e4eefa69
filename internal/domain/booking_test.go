package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, _ := time.Parse(DateFormat, s)
	return t
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"two nights", date("2024-06-01"), date("2024-06-03"), 2},
		{"one night", date("2024-06-01"), date("2024-06-02"), 1},
		{"partial day rounds up", date("2024-06-01"), date("2024-06-02").Add(3 * time.Hour), 2},
		{"same day", date("2024-06-01"), date("2024-06-01"), 0},
		{"reversed", date("2024-06-03"), date("2024-06-01"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestTotalPrice(t *testing.T) {
	nights := Nights(date("2024-06-01"), date("2024-06-03"))
	assert.Equal(t, int64(30000), TotalPrice(15000, nights))
}

func TestBookingStatus_Transitions(t *testing.T) {
	legal := map[[2]BookingStatus]bool{
		{StatusPending, StatusConfirmed}:   true,
		{StatusPending, StatusCancelled}:   true,
		{StatusConfirmed, StatusCancelled}: true,
		{StatusConfirmed, StatusCompleted}: true,
	}
	all := []BookingStatus{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, legal[[2]BookingStatus{from, to}], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}

	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, BookingStatus("archived").IsTerminal())
}

func TestParseBookingStatus(t *testing.T) {
	status, err := ParseBookingStatus(" Confirmed ")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)

	_, err = ParseBookingStatus("archived")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestBooking_CanBeCancelled(t *testing.T) {
	owner := uuid.New()
	b := &Booking{UserID: owner, Status: StatusConfirmed}

	assert.True(t, b.CanBeCancelled())
	assert.True(t, b.IsOwnedBy(owner))
	assert.False(t, b.IsOwnedBy(uuid.New()))

	b.Status = StatusCompleted
	assert.False(t, b.CanBeCancelled())
}

func TestRoom_CanHost(t *testing.T) {
	r := &Room{Capacity: 2}
	assert.True(t, r.CanHost(1))
	assert.True(t, r.CanHost(2))
	assert.False(t, r.CanHost(5))
	assert.False(t, r.CanHost(0))

	assert.True(t, RoomPatch{}.IsEmpty())
	price := int64(100)
	assert.False(t, RoomPatch{Price: &price}.IsEmpty())
}
