package list_room_bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelOccupancy/internal/service/bookings"
	"github.com/m04kA/SMC-HotelOccupancy/internal/service/bookings/models"
)

type fakeService struct {
	err error
	req *models.ListRoomBookingsRequest
}

func (f *fakeService) ListByRoom(_ context.Context, req *models.ListRoomBookingsRequest) (*models.BookingListResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingListResponse{Bookings: []*models.BookingResponse{
		{ID: 1, RoomID: req.RoomID, Fee: 400},
	}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func get(h *Handler, roomID, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms/"+roomID+"/bookings"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"roomId": roomID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	svc := &fakeService{}
	rec := get(NewHandler(svc, nopLogger{}), "3", "?from=2023-04-01&to=2023-04-30")

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.BookingListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Bookings, 1)
	assert.Equal(t, 400.0, body.Bookings[0].Fee)

	require.NotNil(t, svc.req.From)
	require.NotNil(t, svc.req.To)
	assert.Equal(t, int64(3), svc.req.RoomID)
	assert.Equal(t, time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC), *svc.req.From)
	assert.Equal(t, time.Date(2023, 4, 30, 0, 0, 0, 0, time.UTC), *svc.req.To)
}

func TestHandler_Handle_NoWindow(t *testing.T) {
	svc := &fakeService{}
	rec := get(NewHandler(svc, nopLogger{}), "3", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.req.From)
	assert.Nil(t, svc.req.To)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		roomID     string
		query      string
		err        error
		wantStatus int
	}{
		{name: "invalid id", roomID: "x", wantStatus: http.StatusBadRequest},
		{name: "invalid date", roomID: "1", query: "?from=01.04.2023", wantStatus: http.StatusBadRequest},
		{name: "reversed range", roomID: "1", err: bookings.ErrInvalidTimeRange, wantStatus: http.StatusBadRequest},
		{name: "room not found", roomID: "1", err: bookings.ErrRoomNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", roomID: "1", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(NewHandler(&fakeService{err: tt.err}, nopLogger{}), tt.roomID, tt.query)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
