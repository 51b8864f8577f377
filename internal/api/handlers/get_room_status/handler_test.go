package get_room_status

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

	"github.com/m04kA/SMC-HotelOccupancy/internal/service/rooms"
	"github.com/m04kA/SMC-HotelOccupancy/internal/service/rooms/models"
)

type fakeService struct {
	gotRoomID int64
	gotDate   time.Time
	err       error
}

func (f *fakeService) GetStatus(_ context.Context, roomID int64, date time.Time) (*models.RoomStatusResponse, error) {
	f.gotRoomID = roomID
	f.gotDate = date
	if f.err != nil {
		return nil, f.err
	}
	return &models.RoomStatusResponse{RoomID: roomID, Date: date, Occupied: true}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func get(h *Handler, roomID, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms/"+roomID+"/status"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"roomId": roomID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	svc := &fakeService{}
	rec := get(NewHandler(svc, nopLogger{}), "3", "?date=2023-04-17")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), svc.gotRoomID)
	assert.Equal(t, time.Date(2023, 4, 17, 0, 0, 0, 0, time.UTC), svc.gotDate)

	var body models.RoomStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Occupied)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		roomID     string
		query      string
		err        error
		wantStatus int
	}{
		{name: "invalid room id", roomID: "abc", query: "?date=2023-04-17", wantStatus: http.StatusBadRequest},
		{name: "missing date", roomID: "3", query: "", wantStatus: http.StatusBadRequest},
		{name: "invalid date", roomID: "3", query: "?date=17.04.2023", wantStatus: http.StatusBadRequest},
		{name: "room not found", roomID: "3", query: "?date=2023-04-17", err: rooms.ErrRoomNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", roomID: "3", query: "?date=2023-04-17", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(NewHandler(&fakeService{err: tt.err}, nopLogger{}), tt.roomID, tt.query)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
