package list_room_bookings

import (
	"context"

	"github.com/m04kA/SMC-HotelOccupancy/internal/service/bookings/models"
)

type BookingService interface {
	ListByRoom(ctx context.Context, req *models.ListRoomBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
