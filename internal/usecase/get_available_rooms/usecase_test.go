package get_available_rooms

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelOccupancy/internal/domain"
)

type fakeRoomRepo struct {
	rooms []domain.Room
	err   error
	calls int
}

func (f *fakeRoomRepo) GetAll(_ context.Context) ([]*domain.Room, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*domain.Room, 0, len(f.rooms))
	for i := range f.rooms {
		room := f.rooms[i]
		result = append(result, &room)
	}
	return result, nil
}

type fakeBookingRepo struct {
	bookings []domain.Booking
	err      error
	calls    int
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*domain.Booking, 0, len(f.bookings))
	for i := range f.bookings {
		b := f.bookings[i]
		result = append(result, &b)
	}
	return result, nil
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

func TestUseCase_Execute(t *testing.T) {
	rooms := &fakeRoomRepo{rooms: []domain.Room{
		{ID: 1, Name: "Room 1", Rate: 100, Discount: 10},
		{ID: 2, Name: "Room 2", Rate: 200},
		{ID: 3, Name: "Room 3", Rate: 300, Discount: 50},
	}}
	bookings := &fakeBookingRepo{bookings: []domain.Booking{
		{ID: 1, RoomID: 2, CheckIn: day(12), CheckOut: day(14)},
	}}
	metrics := &fakeMetrics{}
	uc := NewUseCase(rooms, bookings, metrics, 366, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{StartDate: day(10), EndDate: day(15)})
	require.NoError(t, err)

	require.Len(t, resp.Rooms, 2)
	assert.Equal(t, int64(1), resp.Rooms[0].RoomID)
	assert.Equal(t, int64(3), resp.Rooms[1].RoomID)

	assert.Equal(t, 5, resp.Rooms[0].Nights)
	assert.Equal(t, 450.0, resp.Rooms[0].QuotedFee)
	assert.Equal(t, 750.0, resp.Rooms[1].QuotedFee)
	assert.Equal(t, []string{"available"}, metrics.kinds)
}

func TestUseCase_Execute_BoundaryDayIsOccupied(t *testing.T) {
	rooms := &fakeRoomRepo{rooms: []domain.Room{{ID: 1, Name: "Room 1", Rate: 100}}}
	bookings := &fakeBookingRepo{bookings: []domain.Booking{
		{ID: 1, RoomID: 1, CheckIn: day(1), CheckOut: day(10)},
	}}
	uc := NewUseCase(rooms, bookings, &fakeMetrics{}, 366, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{StartDate: day(10), EndDate: day(15)})
	require.NoError(t, err)
	assert.Empty(t, resp.Rooms)
	assert.NotNil(t, resp.Rooms)
}

func TestUseCase_Execute_NoRooms(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := NewUseCase(&fakeRoomRepo{}, bookings, &fakeMetrics{}, 366, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{StartDate: day(1), EndDate: day(2)})
	require.NoError(t, err)
	assert.Empty(t, resp.Rooms)
	assert.Zero(t, bookings.calls)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{name: "missing dates", req: Request{}, wantErr: ErrInvalidInput},
		{name: "reversed range", req: Request{StartDate: day(10), EndDate: day(1)}, wantErr: ErrInvalidRange},
		{name: "range too long", req: Request{StartDate: day(1), EndDate: day(20)}, wantErr: ErrRangeTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rooms := &fakeRoomRepo{}
			uc := NewUseCase(rooms, &fakeBookingRepo{}, &fakeMetrics{}, 7, nopLogger{})

			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, rooms.calls)
		})
	}
}

func TestUseCase_Execute_RepositoryErrors(t *testing.T) {
	uc := NewUseCase(&fakeRoomRepo{err: errors.New("db down")}, &fakeBookingRepo{}, &fakeMetrics{}, 0, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{StartDate: day(1), EndDate: day(2)})
	assert.ErrorIs(t, err, ErrInternal)

	rooms := &fakeRoomRepo{rooms: []domain.Room{{ID: 1}}}
	uc = NewUseCase(rooms, &fakeBookingRepo{err: errors.New("db down")}, &fakeMetrics{}, 0, nopLogger{})
	_, err = uc.Execute(context.Background(), &Request{StartDate: day(1), EndDate: day(2)})
	assert.ErrorIs(t, err, ErrInternal)
}
