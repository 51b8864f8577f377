package models

import (
	"time"

	"github.com/m04kA/SMC-HotelOccupancy/internal/domain"
)

// Request модели

// CreateRoomRequest запрос на создание номера
type CreateRoomRequest struct {
	Name     string  `json:"name"`
	Rate     float64 `json:"rate"`
	Discount float64 `json:"discount"`
}

// ToDomain конвертирует запрос в domain модель без бронирований
func (r *CreateRoomRequest) ToDomain() *domain.Room {
	return domain.NewRoom(r.Name, nil, r.Rate, r.Discount)
}

// UpdateRoomRequest частичное обновление номера, nil поля не меняются.
// Новая цена и скидка применяются ко всем бронированиям номера, включая существующие
type UpdateRoomRequest struct {
	Name     *string  `json:"name,omitempty"`
	Rate     *float64 `json:"rate,omitempty"`
	Discount *float64 `json:"discount,omitempty"`
}

// Apply переносит заданные поля запроса в номер
func (r *UpdateRoomRequest) Apply(room *domain.Room) {
	if r.Name != nil {
		room.Name = *r.Name
	}
	if r.Rate != nil {
		room.Rate = *r.Rate
	}
	if r.Discount != nil {
		room.Discount = *r.Discount
	}
}

// Response модели

// RoomResponse ответ с данными номера
type RoomResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Rate      float64   `json:"rate"`
	Discount  float64   `json:"discount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoomListResponse ответ со списком номеров
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// RoomStatusResponse занятость номера в конкретный момент
type RoomStatusResponse struct {
	RoomID   int64     `json:"roomId"`
	Date     time.Time `json:"date"`
	Occupied bool      `json:"occupied"`
}

// Методы конвертации

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}

	return &RoomResponse{
		ID:        r.ID,
		Name:      r.Name,
		Rate:      r.Rate,
		Discount:  r.Discount,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}

	for _, room := range rooms {
		if roomResp := FromDomainRoom(room); roomResp != nil {
			resp.Rooms = append(resp.Rooms, *roomResp)
		}
	}

	return resp
}
