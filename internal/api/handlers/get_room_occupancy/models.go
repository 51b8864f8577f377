package get_room_occupancy

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelOccupancy/internal/api/handlers"
	"github.com/m04kA/SMC-HotelOccupancy/internal/domain"
	getRoomOccupancy "github.com/m04kA/SMC-HotelOccupancy/internal/usecase/get_room_occupancy"
)

// RoomOccupancyResponse HTTP response model
type RoomOccupancyResponse struct {
	RoomID     int64     `json:"roomId"`
	RoomName   string    `json:"roomName"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Model      string    `json:"model"`
	Percentage float64   `json:"percentage"`

	// Только для модели daily
	OccupiedDays *int `json:"occupiedDays,omitempty"`
	TotalDays    *int `json:"totalDays,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRoomOccupancy.Response) *RoomOccupancyResponse {
	result := &RoomOccupancyResponse{
		RoomID:     resp.RoomID,
		RoomName:   resp.RoomName,
		StartDate:  resp.StartDate,
		EndDate:    resp.EndDate,
		Model:      string(resp.Model),
		Percentage: resp.Percentage,
	}

	if resp.Model == domain.ModelDaily {
		occupied, total := resp.OccupiedDays, resp.TotalDays
		result.OccupiedDays = &occupied
		result.TotalDays = &total
	}

	return result
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(roomID int64, startStr, endStr, model string) (*getRoomOccupancy.Request, error) {
	start, err := handlers.ParseDate(startStr)
	if err != nil {
		return nil, fmt.Errorf("startDate: %w", err)
	}

	end, err := handlers.ParseDate(endStr)
	if err != nil {
		return nil, fmt.Errorf("endDate: %w", err)
	}

	return &getRoomOccupancy.Request{
		RoomID:    roomID,
		StartDate: start,
		EndDate:   end,
		Model:     domain.OccupancyModel(model),
	}, nil
}
