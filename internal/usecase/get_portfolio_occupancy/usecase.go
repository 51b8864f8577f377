package get_portfolio_occupancy

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelOccupancy/internal/domain"
)

// UseCase use case для расчета общей загрузки набора номеров
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

// Execute выполняет use case расчета загрузки портфеля.
// Итог считается по общему пространству выборок номера x дни, а не как среднее по номерам
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetPortfolioOccupancy: rooms=%v, period=%s to %s",
		req.RoomIDs, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.maxRangeDays); err != nil {
		uc.logger.Warn("GetPortfolioOccupancy: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем номера: все или только запрошенные
	rooms, err := uc.loadRooms(ctx, req.RoomIDs)
	if err != nil {
		return nil, err
	}

	// 3. Получаем бронирования этих номеров, пересекающиеся с периодом
	if len(rooms) > 0 {
		filter := domain.BookingsFilter{
			From: &req.StartDate,
			To:   &req.EndDate,
		}
		if len(req.RoomIDs) > 0 {
			filter.RoomIDs = roomIDs(rooms)
		}

		bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
		if err != nil {
			uc.logger.Error("GetPortfolioOccupancy: failed to get bookings: %v", err)
			return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}
		domain.AttachBookings(rooms, bookings)
	}

	// 4. Считаем загрузку
	report := domain.PortfolioOccupancy(rooms, req.StartDate, req.EndDate)
	uc.metrics.ObserveOccupancyQuery("portfolio")

	uc.logger.Info("GetPortfolioOccupancy: rooms=%d, occupied=%d of %d, occupancy=%.2f%%",
		len(rooms), report.OccupiedDays, report.TotalDays, report.Percentage)

	return fromReport(req, report), nil
}

func (uc *UseCase) loadRooms(ctx context.Context, ids []int64) ([]*domain.Room, error) {
	if len(ids) == 0 {
		rooms, err := uc.roomRepo.GetAll(ctx)
		if err != nil {
			uc.logger.Error("GetPortfolioOccupancy: failed to get rooms: %v", err)
			return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
		}
		return rooms, nil
	}

	requested := uniqueIDs(ids)
	rooms, err := uc.roomRepo.GetByIDs(ctx, requested)
	if err != nil {
		uc.logger.Error("GetPortfolioOccupancy: failed to get rooms %v: %v", requested, err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	if missing := missingIDs(requested, rooms); len(missing) > 0 {
		uc.logger.Warn("GetPortfolioOccupancy: rooms %v not found", missing)
		return nil, fmt.Errorf("%w: %v", ErrRoomNotFound, missing)
	}

	return rooms, nil
}

func roomIDs(rooms []*domain.Room) []int64 {
	ids := make([]int64, 0, len(rooms))
	for _, room := range rooms {
		ids = append(ids, room.ID)
	}
	return ids
}

func fromReport(req *Request, report domain.PortfolioReport) *Response {
	resp := &Response{
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		OccupiedDays: report.OccupiedDays,
		TotalDays:    report.TotalDays,
		Percentage:   report.Percentage,
		Rooms:        make([]RoomOccupancy, 0, len(report.Rooms)),
	}

	for _, r := range report.Rooms {
		resp.Rooms = append(resp.Rooms, RoomOccupancy{
			RoomID:       r.Room.ID,
			RoomName:     r.Room.Name,
			OccupiedDays: r.OccupiedDays,
			TotalDays:    r.TotalDays,
			Percentage:   r.Percentage,
		})
	}

	return resp
}
