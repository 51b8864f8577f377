package get_available_rooms

import "time"

// Request модель запроса свободных номеров
type Request struct {
	StartDate time.Time
	EndDate   time.Time
}

// Response модель ответа со списком свободных номеров в порядке ID
type Response struct {
	StartDate time.Time
	EndDate   time.Time
	Rooms     []AvailableRoom
}

// AvailableRoom свободный номер с предварительной стоимостью проживания
type AvailableRoom struct {
	RoomID    int64
	Name      string
	Rate      float64
	Discount  float64
	Nights    int     // Количество ночей между StartDate и EndDate
	QuotedFee float64 // Стоимость с учетом скидки номера, без скидки бронирования
}
