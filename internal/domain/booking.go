package domain

import (
	"math"
	"time"
)

// Pricing is the part of a room a booking needs to compute its fee
type Pricing interface {
	PricePerNight() float64
	DiscountPercent() float64
}

// RoomPricing is a bare pricing record for bookings that are not linked to a loaded Room
type RoomPricing struct {
	Rate     float64
	Discount float64
}

// PricePerNight returns the nightly rate
func (p RoomPricing) PricePerNight() float64 {
	return p.Rate
}

// DiscountPercent returns the room-level discount in percent
func (p RoomPricing) DiscountPercent() float64 {
	return p.Discount
}

// Booking represents a guest reservation of a room
type Booking struct {
	ID       int64
	RoomID   int64
	Name     string
	Email    string
	CheckIn  time.Time
	CheckOut time.Time
	Discount float64 // Скидка бронирования в процентах (0-100), суммируется со скидкой номера

	// Room ссылка на номер, используется только для расчета стоимости.
	// Бронирование не регистрируется в Room.Bookings автоматически
	Room Pricing

	CreatedAt time.Time
}

// NewBooking создает бронирование для номера
func NewBooking(name, email string, checkIn, checkOut time.Time, discount float64, room Pricing) *Booking {
	return &Booking{
		Name:     name,
		Email:    email,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Discount: discount,
		Room:     room,
	}
}

// Interval returns the check-in and check-out instants
func (b *Booking) Interval() (time.Time, time.Time) {
	return b.CheckIn, b.CheckOut
}

// NightDifference returns the number of nights, rounded to the nearest whole day.
// The difference is taken by absolute value, so a reversed interval still counts positive nights.
func (b *Booking) NightDifference() int {
	days := math.Abs(float64(b.CheckIn.Sub(b.CheckOut)) / float64(DayStep))
	return int(math.Round(days))
}

// BasePrice стоимость без скидок: цена за ночь * количество ночей
func (b *Booking) BasePrice() float64 {
	return b.Room.PricePerNight() * float64(b.NightDifference())
}

// RoomDiscountAmount скидка номера, считается от базовой стоимости
func (b *Booking) RoomDiscountAmount() float64 {
	return b.BasePrice() * b.Room.DiscountPercent() / 100
}

// BookingDiscountAmount скидка бронирования, считается от базовой стоимости
func (b *Booking) BookingDiscountAmount() float64 {
	return b.BasePrice() * b.Discount / 100
}

// Fee returns the charge for the booking.
// Both discounts are taken from the base price and are not compounded; two 50% discounts
// give a zero fee. The result is not clamped, so discounts above 100% in total give a negative fee.
func (b *Booking) Fee() float64 {
	basePrice := b.BasePrice()
	roomDiscount := basePrice * b.Room.DiscountPercent() / 100
	bookingDiscount := basePrice * b.Discount / 100

	return basePrice - roomDiscount - bookingDiscount
}

// BookingsFilter фильтр для выборки бронирований номеров
type BookingsFilter struct {
	RoomIDs []int64    // Пустой список - бронирования всех номеров
	From    *time.Time // Бронирования, заканчивающиеся не раньше From (опционально)
	To      *time.Time // Бронирования, начинающиеся не позже To (опционально)
}
