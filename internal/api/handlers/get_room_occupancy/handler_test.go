package get_room_occupancy

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

	"github.com/m04kA/SMC-HotelOccupancy/internal/domain"
	getRoomOccupancy "github.com/m04kA/SMC-HotelOccupancy/internal/usecase/get_room_occupancy"
)

type fakeUseCase struct {
	got  *getRoomOccupancy.Request
	resp *getRoomOccupancy.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getRoomOccupancy.Request) (*getRoomOccupancy.Response, error) {
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func get(h *Handler, roomID, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms/"+roomID+"/occupancy"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"roomId": roomID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle_Daily(t *testing.T) {
	uc := &fakeUseCase{resp: &getRoomOccupancy.Response{
		RoomID:       1,
		RoomName:     "Room 1",
		StartDate:    time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2023, 4, 30, 0, 0, 0, 0, time.UTC),
		Model:        domain.ModelDaily,
		Percentage:   20,
		OccupiedDays: 6,
		TotalDays:    30,
	}}

	rec := get(NewHandler(uc, nopLogger{}), "1", "?startDate=2023-04-01&endDate=2023-04-30")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, int64(1), uc.got.RoomID)
	assert.Equal(t, domain.OccupancyModel(""), uc.got.Model)
	assert.Equal(t, time.Date(2023, 4, 30, 0, 0, 0, 0, time.UTC), uc.got.EndDate)

	var body RoomOccupancyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "daily", body.Model)
	assert.Equal(t, 20.0, body.Percentage)
	require.NotNil(t, body.TotalDays)
	assert.Equal(t, 30, *body.TotalDays)
	assert.Equal(t, 6, *body.OccupiedDays)
}

func TestHandler_Handle_OverlapOmitsDayCounts(t *testing.T) {
	uc := &fakeUseCase{resp: &getRoomOccupancy.Response{RoomID: 1, Model: domain.ModelOverlap, Percentage: 50}}

	rec := get(NewHandler(uc, nopLogger{}), "1", "?startDate=2023-04-01&endDate=2023-04-11&model=overlap")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ModelOverlap, uc.got.Model)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "overlap", body["model"])
	assert.NotContains(t, body, "totalDays")
}

func TestHandler_Handle_Errors(t *testing.T) {
	const query = "?startDate=2023-04-01&endDate=2023-04-10"

	tests := []struct {
		name       string
		roomID     string
		query      string
		err        error
		wantStatus int
	}{
		{name: "invalid room id", roomID: "0", query: query, wantStatus: http.StatusBadRequest},
		{name: "missing end date", roomID: "1", query: "?startDate=2023-04-01", wantStatus: http.StatusBadRequest},
		{name: "invalid date", roomID: "1", query: "?startDate=yesterday&endDate=2023-04-10", wantStatus: http.StatusBadRequest},
		{name: "room not found", roomID: "1", query: query, err: getRoomOccupancy.ErrRoomNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid range", roomID: "1", query: query, err: getRoomOccupancy.ErrInvalidRange, wantStatus: http.StatusBadRequest},
		{name: "range too long", roomID: "1", query: query, err: getRoomOccupancy.ErrRangeTooLong, wantStatus: http.StatusBadRequest},
		{name: "invalid model", roomID: "1", query: query + "&model=weekly", err: getRoomOccupancy.ErrInvalidModel, wantStatus: http.StatusBadRequest},
		{name: "internal", roomID: "1", query: query, err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(NewHandler(&fakeUseCase{err: tt.err}, nopLogger{}), tt.roomID, tt.query)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
