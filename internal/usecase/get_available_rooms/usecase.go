package get_available_rooms

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelOccupancy/internal/domain"
)

// UseCase use case для поиска номеров, свободных на весь период
type UseCase struct {
	roomRepo     RoomRepository
	bookingRepo  BookingRepository
	metrics      Metrics
	maxRangeDays int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	metrics Metrics,
	maxRangeDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		metrics:      metrics,
		maxRangeDays: maxRangeDays,
		logger:       logger,
	}
}

// Execute выполняет use case поиска свободных номеров
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableRooms: period=%s to %s",
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.maxRangeDays); err != nil {
		uc.logger.Warn("GetAvailableRooms: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем все номера
	rooms, err := uc.roomRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to get rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	// 3. Получаем бронирования, пересекающиеся с периодом
	if len(rooms) > 0 {
		bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
			From: &req.StartDate,
			To:   &req.EndDate,
		})
		if err != nil {
			uc.logger.Error("GetAvailableRooms: failed to get bookings: %v", err)
			return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}
		domain.AttachBookings(rooms, bookings)
	}

	// 4. Отбираем свободные номера и считаем предварительную стоимость
	available := domain.AvailableRooms(rooms, req.StartDate, req.EndDate)
	uc.metrics.ObserveOccupancyQuery("available")

	resp := &Response{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Rooms:     make([]AvailableRoom, 0, len(available)),
	}
	for _, room := range available {
		quote := domain.NewBooking("", "", req.StartDate, req.EndDate, 0, room)
		resp.Rooms = append(resp.Rooms, AvailableRoom{
			RoomID:    room.ID,
			Name:      room.Name,
			Rate:      room.Rate,
			Discount:  room.Discount,
			Nights:    quote.NightDifference(),
			QuotedFee: quote.Fee(),
		})
	}

	uc.logger.Info("GetAvailableRooms: %d of %d rooms available", len(resp.Rooms), len(rooms))
	return resp, nil
}
