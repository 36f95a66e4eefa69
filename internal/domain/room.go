package domain

import (
	"time"

	"github.com/google/uuid"
)

// Room represents a bookable room type in the catalog
type Room struct {
	ID               uuid.UUID
	Name             string
	Type             string
	Description      string
	ShortDescription string
	Price            int64 // за ночь, в минимальных единицах валюты
	Capacity         int
	Size             int // м²
	Amenities        []string
	Images           []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CanHost returns true if the room fits the number of guests
func (r *Room) CanHost(guests int) bool {
	return guests >= MinGuests && guests <= r.Capacity
}

// RoomPatch partial update of a room; nil fields are left untouched
type RoomPatch struct {
	Name             *string
	Type             *string
	Description      *string
	ShortDescription *string
	Price            *int64
	Capacity         *int
	Size             *int
	Amenities        *[]string
	Images           *[]string
}

// IsEmpty returns true if the patch changes nothing
func (p RoomPatch) IsEmpty() bool {
	return p.Name == nil && p.Type == nil && p.Description == nil &&
		p.ShortDescription == nil && p.Price == nil && p.Capacity == nil &&
		p.Size == nil && p.Amenities == nil && p.Images == nil
}
