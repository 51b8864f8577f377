package get_room_occupancy

import (
	"time"

	"github.com/m04kA/SMC-HotelOccupancy/internal/domain"
)

// Request модель запроса загрузки номера
type Request struct {
	RoomID    int64
	StartDate time.Time
	EndDate   time.Time
	Model     domain.OccupancyModel // Пустое значение - модель по умолчанию
}

// Response модель ответа с загрузкой номера
type Response struct {
	RoomID     int64
	RoomName   string
	StartDate  time.Time
	EndDate    time.Time
	Model      domain.OccupancyModel
	Percentage float64

	// Заполняются только для посуточной модели
	OccupiedDays int
	TotalDays    int
}
