package get_portfolio_occupancy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getPortfolioOccupancy "github.com/m04kA/SMC-HotelOccupancy/internal/usecase/get_portfolio_occupancy"
)

type fakeUseCase struct {
	got *getPortfolioOccupancy.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getPortfolioOccupancy.Request) (*getPortfolioOccupancy.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &getPortfolioOccupancy.Response{
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		OccupiedDays: 7,
		TotalDays:    60,
		Percentage:   11.67,
		Rooms: []getPortfolioOccupancy.RoomOccupancy{
			{RoomID: 1, RoomName: "Room 1", OccupiedDays: 6, TotalDays: 30, Percentage: 20},
			{RoomID: 2, RoomName: "Room 2", OccupiedDays: 1, TotalDays: 30, Percentage: 3.33},
		},
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func get(h *Handler, query string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/occupancy"+query, nil))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	uc := &fakeUseCase{}
	rec := get(NewHandler(uc, nopLogger{}), "?startDate=2023-04-01&endDate=2023-04-30&roomIds=1,2")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int64{1, 2}, uc.got.RoomIDs)

	var body PortfolioOccupancyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 60, body.TotalDays)
	assert.Equal(t, 11.67, body.Percentage)
	require.Len(t, body.Rooms, 2)
	assert.Equal(t, "Room 1", body.Rooms[0].RoomName)
}

func TestHandler_Handle_AllRooms(t *testing.T) {
	uc := &fakeUseCase{}
	rec := get(NewHandler(uc, nopLogger{}), "?startDate=2023-04-01&endDate=2023-04-30")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, uc.got.RoomIDs)
}

func TestHandler_Handle_Errors(t *testing.T) {
	const query = "?startDate=2023-04-01&endDate=2023-04-30"

	tests := []struct {
		name       string
		query      string
		err        error
		wantStatus int
	}{
		{name: "missing dates", query: "", wantStatus: http.StatusBadRequest},
		{name: "invalid room ids", query: query + "&roomIds=1,abc", wantStatus: http.StatusBadRequest},
		{name: "invalid date", query: "?startDate=2023-13-01&endDate=2023-04-30", wantStatus: http.StatusBadRequest},
		{name: "room not found", query: query + "&roomIds=42", err: fmt.Errorf("%w: [42]", getPortfolioOccupancy.ErrRoomNotFound), wantStatus: http.StatusNotFound},
		{name: "invalid range", query: query, err: getPortfolioOccupancy.ErrInvalidRange, wantStatus: http.StatusBadRequest},
		{name: "range too long", query: query, err: getPortfolioOccupancy.ErrRangeTooLong, wantStatus: http.StatusBadRequest},
		{name: "internal", query: query, err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(NewHandler(&fakeUseCase{err: tt.err}, nopLogger{}), tt.query)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
