package get_portfolio_occupancy

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelOccupancy/internal/api/handlers"
	getPortfolioOccupancy "github.com/m04kA/SMC-HotelOccupancy/internal/usecase/get_portfolio_occupancy"
)

// PortfolioOccupancyResponse HTTP response model
type PortfolioOccupancyResponse struct {
	StartDate    time.Time       `json:"startDate"`
	EndDate      time.Time       `json:"endDate"`
	OccupiedDays int             `json:"occupiedDays"`
	TotalDays    int             `json:"totalDays"`
	Percentage   float64         `json:"percentage"`
	Rooms        []RoomOccupancy `json:"rooms"`
}

// RoomOccupancy загрузка одного номера
type RoomOccupancy struct {
	RoomID       int64   `json:"roomId"`
	RoomName     string  `json:"roomName"`
	OccupiedDays int     `json:"occupiedDays"`
	TotalDays    int     `json:"totalDays"`
	Percentage   float64 `json:"percentage"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getPortfolioOccupancy.Response) *PortfolioOccupancyResponse {
	rooms := make([]RoomOccupancy, len(resp.Rooms))
	for i, room := range resp.Rooms {
		rooms[i] = RoomOccupancy{
			RoomID:       room.RoomID,
			RoomName:     room.RoomName,
			OccupiedDays: room.OccupiedDays,
			TotalDays:    room.TotalDays,
			Percentage:   room.Percentage,
		}
	}

	return &PortfolioOccupancyResponse{
		StartDate:    resp.StartDate,
		EndDate:      resp.EndDate,
		OccupiedDays: resp.OccupiedDays,
		TotalDays:    resp.TotalDays,
		Percentage:   resp.Percentage,
		Rooms:        rooms,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(startStr, endStr string, roomIDs []int64) (*getPortfolioOccupancy.Request, error) {
	start, err := handlers.ParseDate(startStr)
	if err != nil {
		return nil, fmt.Errorf("startDate: %w", err)
	}

	end, err := handlers.ParseDate(endStr)
	if err != nil {
		return nil, fmt.Errorf("endDate: %w", err)
	}

	return &getPortfolioOccupancy.Request{
		RoomIDs:   roomIDs,
		StartDate: start,
		EndDate:   end,
	}, nil
}
