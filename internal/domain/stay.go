package domain

import "time"

// StayInterval is anything that occupies a room from check-in to check-out.
// Occupancy queries only need these two instants, so both a full Booking and
// a bare Stay record can be placed into Room.Bookings.
type StayInterval interface {
	Interval() (checkIn, checkOut time.Time)
}

// Stay is a minimal check-in/check-out record
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// Interval returns the check-in and check-out instants
func (s Stay) Interval() (time.Time, time.Time) {
	return s.CheckIn, s.CheckOut
}

// covers проверяет, что момент попадает в [checkIn, checkOut] включительно.
// Сравнение идет по полной метке времени, без усечения до календарного дня
func covers(stay StayInterval, date time.Time) bool {
	checkIn, checkOut := stay.Interval()
	return !date.Before(checkIn) && !date.After(checkOut)
}

// containedIn проверяет, что пребывание целиком лежит внутри [start, end]
func containedIn(stay StayInterval, start, end time.Time) bool {
	checkIn, checkOut := stay.Interval()
	return !checkIn.Before(start) && !checkOut.After(end)
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
