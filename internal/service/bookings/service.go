package bookings

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-HotelOccupancy/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelOccupancy/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-HotelOccupancy/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelOccupancy/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

// Create создает бронирование номера.
// Пересечения с существующими бронированиями не проверяются: двойное бронирование допустимо
func (s *Service) Create(ctx context.Context, roomID int64, req *models.CreateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Create: room=%d, checkIn=%s, checkOut=%s",
		roomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	if roomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Create: room id=%d not found", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Create: failed to get room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	booking, err := s.bookingRepo.Create(ctx, req.ToDomain(room))
	if err != nil {
		// Номер мог быть удален между чтением и вставкой
		if errors.Is(err, bookingRepo.ErrRoomNotFound) {
			s.logger.Warn("Create: room id=%d disappeared before insert", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created booking id=%d for room=%d, fee=%.2f", booking.ID, roomID, booking.Fee())
	return models.FromDomainBooking(booking), nil
}

// GetByID получает бронирование по ID вместе с расчетом стоимости
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	room, err := s.roomRepo.GetByID(ctx, booking.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%d of booking id=%d not found", booking.RoomID, id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: failed to get room id=%d: %v", booking.RoomID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	booking.Room = room

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// Delete удаляет бронирование
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}

// ListByRoom возвращает бронирования номера, пересекающие окно [From, To], в порядке заезда
func (s *Service) ListByRoom(ctx context.Context, req *models.ListRoomBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListByRoom: fetching bookings for room=%d", req.RoomID)

	if req.RoomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if req.From != nil && req.To != nil && req.To.Before(*req.From) {
		return nil, fmt.Errorf("%w: to must not be before from", ErrInvalidTimeRange)
	}

	room, err := s.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("ListByRoom: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("ListByRoom: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: ListByRoom - repository error: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		RoomIDs: []int64{req.RoomID},
		From:    req.From,
		To:      req.To,
	})
	if err != nil {
		s.logger.Error("ListByRoom: repository error for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: ListByRoom - repository error: %v", ErrInternal, err)
	}

	for _, b := range bookings {
		b.Room = room
	}

	s.logger.Info("ListByRoom: successfully fetched %d bookings for room=%d", len(bookings), req.RoomID)
	return models.FromDomainBookingList(bookings), nil
}

// validateCreateRequest валидирует данные бронирования
func validateCreateRequest(req *models.CreateBookingRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		return fmt.Errorf("%w: invalid email: %v", ErrInvalidInput, err)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}
	if !req.CheckOut.After(req.CheckIn) {
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidTimeRange)
	}

	if req.Discount < 0 || req.Discount > domain.MaxDiscountPercent {
		return fmt.Errorf("%w: discount must be in 0..%d", ErrInvalidInput, domain.MaxDiscountPercent)
	}

	return nil
}
