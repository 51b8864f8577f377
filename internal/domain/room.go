package domain

import (
	"math"
	"time"
)

// Room represents a hotel room with its bookings and pricing.
// Bookings may overlap: double-booking is representable and is not rejected here.
// Query methods never modify Bookings.
type Room struct {
	ID       int64
	Name     string
	Bookings []StayInterval
	Rate     float64 // Цена за ночь
	Discount float64 // Скидка номера в процентах (0-100), применяется к каждому бронированию

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRoom создает номер с заданным списком бронирований
func NewRoom(name string, bookings []StayInterval, rate, discount float64) *Room {
	return &Room{
		Name:     name,
		Bookings: bookings,
		Rate:     rate,
		Discount: discount,
	}
}

// PricePerNight returns the nightly rate of the room
func (r *Room) PricePerNight() float64 {
	return r.Rate
}

// DiscountPercent returns the room-level discount in percent
func (r *Room) DiscountPercent() float64 {
	return r.Discount
}

// IsOccupied returns true if date lies within [checkIn, checkOut] of any booking
func (r *Room) IsOccupied(date time.Time) bool {
	for _, stay := range r.Bookings {
		if covers(stay, date) {
			return true
		}
	}
	return false
}

// OccupiedDays обходит период [start, end] с шагом DayStep и возвращает
// количество занятых выборок и общее количество выборок.
// При start == end получается одна выборка, при start > end ни одной
func (r *Room) OccupiedDays(start, end time.Time) (occupied, total int) {
	for day := start; !day.After(end); day = day.Add(DayStep) {
		total++
		if r.IsOccupied(day) {
			occupied++
		}
	}
	return occupied, total
}

// OccupancyPercentage returns the share (0-100) of sampled days in [start, end]
// on which the room is occupied. An empty sample space yields 0.
func (r *Room) OccupancyPercentage(start, end time.Time) float64 {
	return percentage(r.OccupiedDays(start, end))
}

// OverlapOccupancyPercentage считает загрузку по длительностям: суммирует длительность
// бронирований, целиком лежащих в [start, end], делит на длительность периода и
// округляет до целого процента. Частично пересекающиеся бронирования не учитываются.
// Если start не раньше end, возвращает ErrInvalidRange
func (r *Room) OverlapOccupancyPercentage(start, end time.Time) (float64, error) {
	if !start.Before(end) {
		return 0, ErrInvalidRange
	}

	var booked time.Duration
	for _, stay := range r.Bookings {
		if !containedIn(stay, start, end) {
			continue
		}
		checkIn, checkOut := stay.Interval()
		booked += absDuration(checkOut.Sub(checkIn))
	}

	if booked == 0 {
		return 0, nil
	}

	return math.Round(float64(booked) * 100 / float64(end.Sub(start))), nil
}

// IsAvailable returns true if the room is not occupied on any sampled day of [start, end].
// Scanning stops at the first occupied day.
func (r *Room) IsAvailable(start, end time.Time) bool {
	for day := start; !day.After(end); day = day.Add(DayStep) {
		if r.IsOccupied(day) {
			return false
		}
	}
	return true
}

func percentage(occupied, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(occupied) / float64(total) * 100
}

// AttachBookings раскладывает бронирования по номерам по RoomID и проставляет каждому
// бронированию ссылку на его номер. Используется слоем загрузки из хранилища;
// бронирования номеров, которых нет в rooms, пропускаются
func AttachBookings(rooms []*Room, bookings []*Booking) {
	byID := make(map[int64]*Room, len(rooms))
	for _, room := range rooms {
		byID[room.ID] = room
	}

	for _, booking := range bookings {
		room, ok := byID[booking.RoomID]
		if !ok {
			continue
		}
		booking.Room = room
		room.Bookings = append(room.Bookings, booking)
	}
}
