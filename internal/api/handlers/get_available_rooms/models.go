package get_available_rooms

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelOccupancy/internal/api/handlers"
	getAvailableRooms "github.com/m04kA/SMC-HotelOccupancy/internal/usecase/get_available_rooms"
)

// AvailableRoomsResponse HTTP response model
type AvailableRoomsResponse struct {
	StartDate time.Time       `json:"startDate"`
	EndDate   time.Time       `json:"endDate"`
	Rooms     []AvailableRoom `json:"rooms"`
}

// AvailableRoom свободный номер
type AvailableRoom struct {
	RoomID    int64   `json:"roomId"`
	Name      string  `json:"name"`
	Rate      float64 `json:"rate"`
	Discount  float64 `json:"discount"`
	Nights    int     `json:"nights"`
	QuotedFee float64 `json:"quotedFee"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableRooms.Response) *AvailableRoomsResponse {
	rooms := make([]AvailableRoom, len(resp.Rooms))
	for i, room := range resp.Rooms {
		rooms[i] = AvailableRoom{
			RoomID:    room.RoomID,
			Name:      room.Name,
			Rate:      room.Rate,
			Discount:  room.Discount,
			Nights:    room.Nights,
			QuotedFee: room.QuotedFee,
		}
	}

	return &AvailableRoomsResponse{
		StartDate: resp.StartDate,
		EndDate:   resp.EndDate,
		Rooms:     rooms,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(startStr, endStr string) (*getAvailableRooms.Request, error) {
	start, err := handlers.ParseDate(startStr)
	if err != nil {
		return nil, fmt.Errorf("startDate: %w", err)
	}

	end, err := handlers.ParseDate(endStr)
	if err != nil {
		return nil, fmt.Errorf("endDate: %w", err)
	}

	return &getAvailableRooms.Request{
		StartDate: start,
		EndDate:   end,
	}, nil
}
