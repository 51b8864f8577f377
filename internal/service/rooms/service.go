package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-HotelOccupancy/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelOccupancy/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelOccupancy/internal/service/rooms/models"
)

// Service сервис для работы с номерами
type Service struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Create создает номер
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Create: creating room name=%q, rate=%.2f, discount=%.2f", req.Name, req.Rate, req.Discount)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	room, err := s.roomRepo.Create(ctx, req.ToDomain())
	if err != nil {
		if errors.Is(err, roomRepo.ErrDuplicateName) {
			s.logger.Warn("Create: room name=%q already exists", req.Name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created room id=%d", room.ID)
	return models.FromDomainRoom(room), nil
}

// GetByID получает номер по ID
func (s *Service) GetByID(ctx context.Context, roomID int64) (*models.RoomResponse, error) {
	if roomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%d not found", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}

// Update частично обновляет номер
func (s *Service) Update(ctx context.Context, roomID int64, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Update: updating room id=%d", roomID)

	if roomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	// 1. Загружаем текущее состояние номера
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Update: room id=%d not found", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Update: failed to get room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 2. Применяем изменения и валидируем результат целиком
	req.Apply(room)
	if err := validateRoom(room.Name, room.Rate, room.Discount); err != nil {
		s.logger.Warn("Update: validation failed for room id=%d: %v", roomID, err)
		return nil, err
	}

	// 3. Сохраняем
	updated, err := s.roomRepo.Update(ctx, room)
	if err != nil {
		switch {
		case errors.Is(err, roomRepo.ErrRoomNotFound):
			s.logger.Warn("Update: room id=%d disappeared before update", roomID)
			return nil, ErrRoomNotFound
		case errors.Is(err, roomRepo.ErrDuplicateName):
			s.logger.Warn("Update: room name=%q already exists", room.Name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Update: repository error for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated room id=%d", roomID)
	return models.FromDomainRoom(updated), nil
}

// List возвращает все номера
func (s *Service) List(ctx context.Context) (*models.RoomListResponse, error) {
	s.logger.Info("List: fetching rooms")

	rooms, err := s.roomRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d rooms", len(rooms))
	return models.FromDomainRoomList(rooms), nil
}

// GetStatus отвечает, занят ли номер в указанный момент
func (s *Service) GetStatus(ctx context.Context, roomID int64, date time.Time) (*models.RoomStatusResponse, error) {
	s.logger.Info("GetStatus: room=%d, date=%s", roomID, date.Format(time.RFC3339))

	if roomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetStatus: room id=%d not found", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetStatus: failed to get room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: GetStatus - repository error: %v", ErrInternal, err)
	}

	// Достаточно бронирований, покрывающих сам момент
	bookings, err := s.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		RoomIDs: []int64{roomID},
		From:    &date,
		To:      &date,
	})
	if err != nil {
		s.logger.Error("GetStatus: failed to get bookings for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: GetStatus - repository error: %v", ErrInternal, err)
	}

	domain.AttachBookings([]*domain.Room{room}, bookings)
	occupied := room.IsOccupied(date)

	s.logger.Info("GetStatus: room=%d occupied=%t", roomID, occupied)
	return &models.RoomStatusResponse{
		RoomID:   roomID,
		Date:     date,
		Occupied: occupied,
	}, nil
}

// validateCreateRequest валидирует данные нового номера
func validateCreateRequest(req *models.CreateRoomRequest) error {
	return validateRoom(req.Name, req.Rate, req.Discount)
}

func validateRoom(name string, rate, discount float64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if rate < 0 {
		return fmt.Errorf("%w: rate must not be negative", ErrInvalidInput)
	}
	if discount < 0 || discount > domain.MaxDiscountPercent {
		return fmt.Errorf("%w: discount must be in 0..%d", ErrInvalidInput, domain.MaxDiscountPercent)
	}
	return nil
}
