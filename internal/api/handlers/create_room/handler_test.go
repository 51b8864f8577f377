package create_room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelOccupancy/internal/service/rooms"
	"github.com/m04kA/SMC-HotelOccupancy/internal/service/rooms/models"
)

type fakeService struct {
	got *models.CreateRoomRequest
	err error
}

func (f *fakeService) Create(_ context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.RoomResponse{ID: 7, Name: req.Name, Rate: req.Rate, Discount: req.Discount}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/rooms", strings.NewReader(body)))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	svc := &fakeService{}
	rec := post(NewHandler(svc, nopLogger{}), `{"name":"Room 101","rate":120,"discount":15}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 15.0, svc.got.Discount)

	var body models.RoomResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(7), body.ID)
	assert.Equal(t, "Room 101", body.Name)
}

func TestHandler_Handle_DefaultDiscount(t *testing.T) {
	svc := &fakeService{}
	rec := post(NewHandler(svc, nopLogger{}), `{"name":"Room 101","rate":120}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 0.0, svc.got.Discount)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "malformed body", body: `{"name":`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", body: `{"title":"Room"}`, wantStatus: http.StatusBadRequest},
		{name: "invalid input", body: `{"name":"","rate":1}`, err: fmt.Errorf("%w: name is required", rooms.ErrInvalidInput), wantStatus: http.StatusBadRequest},
		{name: "duplicate", body: `{"name":"Room","rate":1}`, err: rooms.ErrDuplicateName, wantStatus: http.StatusConflict},
		{name: "internal", body: `{"name":"Room","rate":1}`, err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(NewHandler(&fakeService{err: tt.err}, nopLogger{}), tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
