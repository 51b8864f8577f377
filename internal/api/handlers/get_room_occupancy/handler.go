package get_room_occupancy

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelOccupancy/internal/api/handlers"
	getRoomOccupancy "github.com/m04kA/SMC-HotelOccupancy/internal/usecase/get_room_occupancy"
)

const (
	msgInvalidRoomID = "некорректный ID номера"
	msgMissingDates  = "startDate и endDate обязательны"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD или RFC3339"
	msgInvalidRange  = "начало периода должно быть раньше конца"
	msgRangeTooLong  = "слишком длинный период"
	msgInvalidModel  = "неизвестная модель расчета, ожидается daily или overlap"
	msgInvalidInput  = "некорректные параметры запроса"
	msgRoomNotFound  = "номер не найден"
)

type Handler struct {
	useCase GetRoomOccupancyUseCase
	logger  Logger
}

func NewHandler(useCase GetRoomOccupancyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/occupancy
// Query params: startDate, endDate (required), model (optional: daily, overlap)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.ParseID(mux.Vars(r)["roomId"])
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/occupancy - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	query := r.URL.Query()
	startStr, endStr := query.Get("startDate"), query.Get("endDate")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /rooms/{id}/occupancy - Missing dates: room_id=%d", roomID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	useCaseReq, err := ToUseCaseRequest(roomID, startStr, endStr, query.Get("model"))
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/occupancy - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getRoomOccupancy.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/occupancy - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getRoomOccupancy.ErrInvalidRange):
			h.logger.Warn("GET /rooms/{id}/occupancy - Invalid range: room_id=%d, start=%s, end=%s", roomID, startStr, endStr)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getRoomOccupancy.ErrRangeTooLong):
			h.logger.Warn("GET /rooms/{id}/occupancy - Range too long: room_id=%d, %v", roomID, err)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		case errors.Is(err, getRoomOccupancy.ErrInvalidModel):
			h.logger.Warn("GET /rooms/{id}/occupancy - Invalid model: room_id=%d, %v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidModel)

		case errors.Is(err, getRoomOccupancy.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/occupancy - Invalid input: room_id=%d, %v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /rooms/{id}/occupancy - Failed to get occupancy: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/occupancy - Occupancy calculated: room_id=%d, model=%s, percentage=%.2f",
		roomID, result.Model, result.Percentage)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
