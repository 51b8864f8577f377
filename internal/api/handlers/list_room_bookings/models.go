package list_room_bookings

import (
	"fmt"

	"github.com/m04kA/SMC-HotelOccupancy/internal/api/handlers"
	"github.com/m04kA/SMC-HotelOccupancy/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров from и to
func ToServiceRequest(roomID int64, fromStr, toStr string) (*models.ListRoomBookingsRequest, error) {
	req := &models.ListRoomBookingsRequest{RoomID: roomID}

	if fromStr != "" {
		from, err := handlers.ParseDate(fromStr)
		if err != nil {
			return nil, fmt.Errorf("from: %w", err)
		}
		req.From = &from
	}

	if toStr != "" {
		to, err := handlers.ParseDate(toStr)
		if err != nil {
			return nil, fmt.Errorf("to: %w", err)
		}
		req.To = &to
	}

	return req, nil
}
