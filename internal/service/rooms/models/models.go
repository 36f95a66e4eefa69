package models

import (
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// UpdateRoomRequest запрос на частичное обновление номера
// Все поля опциональны - обновляются только переданные значения
type UpdateRoomRequest struct {
	Name             *string   `json:"name,omitempty"`
	Type             *string   `json:"type,omitempty"`
	Description      *string   `json:"description,omitempty"`
	ShortDescription *string   `json:"shortDescription,omitempty"`
	Price            *int64    `json:"price,omitempty"`
	Capacity         *int      `json:"capacity,omitempty"`
	Size             *int      `json:"size,omitempty"`
	Amenities        *[]string `json:"amenities,omitempty"`
	Images           *[]string `json:"images,omitempty"`
}

// ToDomainPatch конвертирует запрос в domain патч
func (r *UpdateRoomRequest) ToDomainPatch() domain.RoomPatch {
	return domain.RoomPatch{
		Name:             r.Name,
		Type:             r.Type,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		Price:            r.Price,
		Capacity:         r.Capacity,
		Size:             r.Size,
		Amenities:        r.Amenities,
		Images:           r.Images,
	}
}

// RoomResponse ответ с данными номера
type RoomResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"shortDescription"`
	Price            int64     `json:"price"`
	Capacity         int       `json:"capacity"`
	Size             int       `json:"size"`
	Amenities        []string  `json:"amenities"`
	Images           []string  `json:"images"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// RoomListResponse ответ со списком номеров
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}

	resp := &RoomResponse{
		ID:               r.ID.String(),
		Name:             r.Name,
		Type:             r.Type,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		Price:            r.Price,
		Capacity:         r.Capacity,
		Size:             r.Size,
		Amenities:        r.Amenities,
		Images:           r.Images,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	if resp.Amenities == nil {
		resp.Amenities = []string{}
	}
	if resp.Images == nil {
		resp.Images = []string{}
	}
	return resp
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}
	for _, room := range rooms {
		if r := FromDomainRoom(room); r != nil {
			resp.Rooms = append(resp.Rooms, *r)
		}
	}
	return resp
}
