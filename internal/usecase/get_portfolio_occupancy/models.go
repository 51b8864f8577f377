package get_portfolio_occupancy

import "time"

// Request модель запроса загрузки портфеля номеров
type Request struct {
	RoomIDs   []int64 // Пустой список - все номера
	StartDate time.Time
	EndDate   time.Time
}

// Response модель ответа с общей загрузкой и разбивкой по номерам
type Response struct {
	StartDate    time.Time
	EndDate      time.Time
	OccupiedDays int // Занятые выборки по всем номерам
	TotalDays    int // Номера x дни
	Percentage   float64
	Rooms        []RoomOccupancy
}

// RoomOccupancy загрузка одного номера
type RoomOccupancy struct {
	RoomID       int64
	RoomName     string
	OccupiedDays int
	TotalDays    int
	Percentage   float64
}
