package get_available_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelOccupancy/internal/api/handlers"
	getAvailableRooms "github.com/m04kA/SMC-HotelOccupancy/internal/usecase/get_available_rooms"
)

const (
	msgMissingDates = "startDate и endDate обязательны"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD или RFC3339"
	msgInvalidRange = "начало периода не должно быть позже конца"
	msgRangeTooLong = "слишком длинный период"
	msgInvalidInput = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-rooms
// Query params: startDate, endDate (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	startStr, endStr := query.Get("startDate"), query.Get("endDate")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /available-rooms - Missing dates")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	useCaseReq, err := ToUseCaseRequest(startStr, endStr)
	if err != nil {
		h.logger.Warn("GET /available-rooms - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableRooms.ErrInvalidRange):
			h.logger.Warn("GET /available-rooms - Invalid range: start=%s, end=%s", startStr, endStr)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getAvailableRooms.ErrRangeTooLong):
			h.logger.Warn("GET /available-rooms - Range too long: %v", err)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		case errors.Is(err, getAvailableRooms.ErrInvalidInput):
			h.logger.Warn("GET /available-rooms - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /available-rooms - Failed to get available rooms: start=%s, end=%s, error=%v",
				startStr, endStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-rooms - Rooms retrieved successfully: start=%s, end=%s, rooms_count=%d",
		startStr, endStr, len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
