package get_room_status

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelOccupancy/internal/service/rooms/models"
)

type RoomService interface {
	GetStatus(ctx context.Context, roomID int64, date time.Time) (*models.RoomStatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
