package create_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelOccupancy/internal/api/handlers"
	"github.com/m04kA/SMC-HotelOccupancy/internal/service/bookings"
)

const (
	msgInvalidRoomID      = "некорректный ID номера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD или RFC3339"
	msgInvalidInput       = "некорректные данные бронирования"
	msgInvalidTimeRange   = "дата выезда должна быть позже даты заезда"
	msgRoomNotFound       = "номер не найден"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms/{roomId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.ParseID(mux.Vars(r)["roomId"])
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/bookings - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms/{id}/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	booking, err := h.service.Create(r.Context(), roomID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrRoomNotFound):
			h.logger.Warn("POST /rooms/{id}/bookings - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, bookings.ErrInvalidTimeRange):
			h.logger.Warn("POST /rooms/{id}/bookings - Invalid time range: room_id=%d, %v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /rooms/{id}/bookings - Invalid input: room_id=%d, %v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /rooms/{id}/bookings - Failed to create booking: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms/{id}/bookings - Booking created successfully: booking_id=%d, room_id=%d, fee=%.2f",
		booking.ID, roomID, booking.Fee)
	handlers.RespondJSON(w, http.StatusCreated, booking)
}
