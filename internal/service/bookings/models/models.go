package models

import (
	"time"

	"github.com/m04kA/SMC-HotelOccupancy/internal/domain"
)

// Request модели

// CreateBookingRequest запрос на создание бронирования
type CreateBookingRequest struct {
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
	Discount float64   `json:"discount"`
}

// ToDomain конвертирует запрос в domain модель для номера room
func (r *CreateBookingRequest) ToDomain(room *domain.Room) *domain.Booking {
	booking := domain.NewBooking(r.Name, r.Email, r.CheckIn, r.CheckOut, r.Discount, room)
	booking.RoomID = room.ID
	return booking
}

// ListRoomBookingsRequest запрос списка бронирований номера.
// From и To необязательны и ограничивают окно включительно
type ListRoomBookingsRequest struct {
	RoomID int64
	From   *time.Time
	To     *time.Time
}

// Response модели

// BookingResponse ответ с данными бронирования и расчетом стоимости
type BookingResponse struct {
	ID       int64     `json:"id"`
	RoomID   int64     `json:"roomId"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
	Discount float64   `json:"discount"`

	Nights                int     `json:"nights"`
	BasePrice             float64 `json:"basePrice"`
	RoomDiscountAmount    float64 `json:"roomDiscountAmount"`
	BookingDiscountAmount float64 `json:"bookingDiscountAmount"`
	Fee                   float64 `json:"fee"`

	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainBooking конвертирует domain модель в DTO.
// Для расчета стоимости у бронирования должен быть заполнен Room
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:        b.ID,
		RoomID:    b.RoomID,
		Name:      b.Name,
		Email:     b.Email,
		CheckIn:   b.CheckIn,
		CheckOut:  b.CheckOut,
		Discount:  b.Discount,
		Nights:    b.NightDifference(),
		CreatedAt: b.CreatedAt,
	}

	if b.Room != nil {
		resp.BasePrice = b.BasePrice()
		resp.RoomDiscountAmount = b.RoomDiscountAmount()
		resp.BookingDiscountAmount = b.BookingDiscountAmount()
		resp.Fee = b.Fee()
	}

	return resp
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result}
}
