package get_room_occupancy

import (
	"context"

	getRoomOccupancy "github.com/m04kA/SMC-HotelOccupancy/internal/usecase/get_room_occupancy"
)

type GetRoomOccupancyUseCase interface {
	Execute(ctx context.Context, req *getRoomOccupancy.Request) (*getRoomOccupancy.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
