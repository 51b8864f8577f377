package get_room_occupancy

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelOccupancy/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelOccupancy/internal/infra/storage/room"
)

// UseCase use case для расчета загрузки одного номера за период
type UseCase struct {
	roomRepo     RoomRepository
	bookingRepo  BookingRepository
	metrics      Metrics
	maxRangeDays int
	defaultModel domain.OccupancyModel
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// maxRangeDays <= 0 снимает ограничение на длину периода
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	metrics Metrics,
	maxRangeDays int,
	defaultModel domain.OccupancyModel,
	logger Logger,
) *UseCase {
	if !defaultModel.IsValid() {
		defaultModel = domain.DefaultOccupancyModel
	}

	return &UseCase{
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		metrics:      metrics,
		maxRangeDays: maxRangeDays,
		defaultModel: defaultModel,
		logger:       logger,
	}
}

// Execute выполняет use case расчета загрузки номера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Подставляем модель по умолчанию
	model := req.Model
	if model == "" {
		model = uc.defaultModel
	}

	uc.logger.Info("GetRoomOccupancy: room=%d, period=%s to %s, model=%s",
		req.RoomID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat), model)

	// 2. Валидация входных данных
	if err := validateRequest(req, model, uc.maxRangeDays); err != nil {
		uc.logger.Warn("GetRoomOccupancy: validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем номер
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("GetRoomOccupancy: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetRoomOccupancy: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 4. Получаем бронирования номера, пересекающиеся с периодом.
	// Остальные бронирования не влияют ни на одну из моделей
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		RoomIDs: []int64{room.ID},
		From:    &req.StartDate,
		To:      &req.EndDate,
	})
	if err != nil {
		uc.logger.Error("GetRoomOccupancy: failed to get bookings for room id=%d: %v", room.ID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}
	domain.AttachBookings([]*domain.Room{room}, bookings)

	resp := &Response{
		RoomID:    room.ID,
		RoomName:  room.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Model:     model,
	}

	// 5. Считаем загрузку выбранной моделью
	switch model {
	case domain.ModelOverlap:
		percent, err := room.OverlapOccupancyPercentage(req.StartDate, req.EndDate)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidRange) {
				uc.logger.Warn("GetRoomOccupancy: empty range for overlap model, room=%d", room.ID)
				return nil, ErrInvalidRange
			}
			return nil, fmt.Errorf("%w: overlap occupancy: %v", ErrInternal, err)
		}
		resp.Percentage = percent
	default:
		resp.OccupiedDays, resp.TotalDays = room.OccupiedDays(req.StartDate, req.EndDate)
		resp.Percentage = room.OccupancyPercentage(req.StartDate, req.EndDate)
	}

	uc.metrics.ObserveOccupancyQuery("room_" + string(model))

	uc.logger.Info("GetRoomOccupancy: room=%d, bookings=%d, occupancy=%.2f%%", room.ID, len(bookings), resp.Percentage)
	return resp, nil
}
