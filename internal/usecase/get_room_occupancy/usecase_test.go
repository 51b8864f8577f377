package get_room_occupancy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelOccupancy/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelOccupancy/internal/infra/storage/room"
)

type fakeRoomRepo struct {
	rooms map[int64]domain.Room
	err   error
}

// GetByID возвращает свежую копию, как и настоящий репозиторий
func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	room, ok := f.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return &room, nil
}

type fakeBookingRepo struct {
	bookings []domain.Booking
	err      error
	calls    int
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*domain.Booking, 0, len(f.bookings))
	for i := range f.bookings {
		b := f.bookings[i]
		if len(filter.RoomIDs) > 0 && !contains(filter.RoomIDs, b.RoomID) {
			continue
		}
		if filter.From != nil && b.CheckOut.Before(*filter.From) {
			continue
		}
		if filter.To != nil && b.CheckIn.After(*filter.To) {
			continue
		}
		result = append(result, &b)
	}
	return result, nil
}

func contains(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

type fakeMetrics struct {
	kinds []string
}

func (f *fakeMetrics) ObserveOccupancyQuery(kind string) {
	f.kinds = append(f.kinds, kind)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(d int) time.Time {
	return time.Date(2023, 4, d, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(maxRangeDays int) (*UseCase, *fakeBookingRepo, *fakeMetrics) {
	rooms := &fakeRoomRepo{rooms: map[int64]domain.Room{
		1: {ID: 1, Name: "Room 101", Rate: 100},
	}}
	bookings := &fakeBookingRepo{bookings: []domain.Booking{
		{ID: 1, RoomID: 1, CheckIn: day(3), CheckOut: day(6)},
		{ID: 2, RoomID: 1, CheckIn: day(8), CheckOut: day(10)},
		{ID: 3, RoomID: 2, CheckIn: day(1), CheckOut: day(30)},
	}}
	metrics := &fakeMetrics{}
	return NewUseCase(rooms, bookings, metrics, maxRangeDays, domain.ModelDaily, nopLogger{}), bookings, metrics
}

func TestUseCase_Execute_Daily(t *testing.T) {
	uc, _, metrics := newTestUseCase(366)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, StartDate: day(1), EndDate: day(10)})
	require.NoError(t, err)

	// Заняты 3,4,5,6 и 8,9,10
	assert.Equal(t, domain.ModelDaily, resp.Model)
	assert.Equal(t, 7, resp.OccupiedDays)
	assert.Equal(t, 10, resp.TotalDays)
	assert.InDelta(t, 70.0, resp.Percentage, 1e-9)
	assert.Equal(t, "Room 101", resp.RoomName)
	assert.Equal(t, []string{"room_daily"}, metrics.kinds)
}

func TestUseCase_Execute_Overlap(t *testing.T) {
	uc, _, metrics := newTestUseCase(366)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:    1,
		StartDate: day(1),
		EndDate:   day(11),
		Model:     domain.ModelOverlap,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ModelOverlap, resp.Model)
	assert.Equal(t, 50.0, resp.Percentage)
	assert.Zero(t, resp.TotalDays)
	assert.Equal(t, []string{"room_overlap"}, metrics.kinds)
}

func TestUseCase_Execute_DefaultModelFromConstructor(t *testing.T) {
	rooms := &fakeRoomRepo{rooms: map[int64]domain.Room{1: {ID: 1, Name: "Room"}}}
	uc := NewUseCase(rooms, &fakeBookingRepo{}, &fakeMetrics{}, 0, domain.ModelOverlap, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, StartDate: day(1), EndDate: day(5)})
	require.NoError(t, err)
	assert.Equal(t, domain.ModelOverlap, resp.Model)
	assert.Equal(t, 0.0, resp.Percentage)
}

func TestUseCase_Execute_SingleDayRange(t *testing.T) {
	uc, _, _ := newTestUseCase(366)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, StartDate: day(4), EndDate: day(4)})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalDays)
	assert.Equal(t, 100.0, resp.Percentage)

	_, err = uc.Execute(context.Background(), &Request{
		RoomID:    1,
		StartDate: day(4),
		EndDate:   day(4),
		Model:     domain.ModelOverlap,
	})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{name: "missing room", req: Request{StartDate: day(1), EndDate: day(2)}, wantErr: ErrInvalidInput},
		{name: "missing dates", req: Request{RoomID: 1}, wantErr: ErrInvalidInput},
		{name: "reversed range", req: Request{RoomID: 1, StartDate: day(10), EndDate: day(1)}, wantErr: ErrInvalidRange},
		{name: "range too long", req: Request{RoomID: 1, StartDate: day(1), EndDate: day(30)}, wantErr: ErrRangeTooLong},
		{name: "unknown model", req: Request{RoomID: 1, StartDate: day(1), EndDate: day(2), Model: "weekly"}, wantErr: ErrInvalidModel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, bookings, metrics := newTestUseCase(7)

			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, bookings.calls)
			assert.Empty(t, metrics.kinds)
		})
	}
}

func TestUseCase_Execute_RoomNotFound(t *testing.T) {
	uc, bookings, _ := newTestUseCase(366)

	_, err := uc.Execute(context.Background(), &Request{RoomID: 42, StartDate: day(1), EndDate: day(2)})
	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.Zero(t, bookings.calls)
}

func TestUseCase_Execute_RepositoryErrors(t *testing.T) {
	uc := NewUseCase(&fakeRoomRepo{err: errors.New("db down")}, &fakeBookingRepo{}, &fakeMetrics{}, 0, "", nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{RoomID: 1, StartDate: day(1), EndDate: day(2)})
	assert.ErrorIs(t, err, ErrInternal)

	rooms := &fakeRoomRepo{rooms: map[int64]domain.Room{1: {ID: 1}}}
	uc = NewUseCase(rooms, &fakeBookingRepo{err: errors.New("db down")}, &fakeMetrics{}, 0, "", nopLogger{})
	_, err = uc.Execute(context.Background(), &Request{RoomID: 1, StartDate: day(1), EndDate: day(2)})
	assert.ErrorIs(t, err, ErrInternal)
}
