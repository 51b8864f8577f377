package get_portfolio_occupancy

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelOccupancy/internal/api/handlers"
	getPortfolioOccupancy "github.com/m04kA/SMC-HotelOccupancy/internal/usecase/get_portfolio_occupancy"
)

const (
	msgMissingDates   = "startDate и endDate обязательны"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD или RFC3339"
	msgInvalidRoomIDs = "некорректный список номеров, ожидается roomIds=1,2,3"
	msgInvalidRange   = "начало периода не должно быть позже конца"
	msgRangeTooLong   = "слишком длинный период"
	msgInvalidInput   = "некорректные параметры запроса"
	msgRoomNotFound   = "номер не найден"
)

type Handler struct {
	useCase GetPortfolioOccupancyUseCase
	logger  Logger
}

func NewHandler(useCase GetPortfolioOccupancyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/occupancy
// Query params: startDate, endDate (required), roomIds (optional, comma separated)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	startStr, endStr := query.Get("startDate"), query.Get("endDate")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /occupancy - Missing dates")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	roomIDs, err := handlers.ParseIDList(query.Get("roomIds"))
	if err != nil {
		h.logger.Warn("GET /occupancy - Invalid room IDs: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomIDs)
		return
	}

	useCaseReq, err := ToUseCaseRequest(startStr, endStr, roomIDs)
	if err != nil {
		h.logger.Warn("GET /occupancy - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getPortfolioOccupancy.ErrRoomNotFound):
			h.logger.Warn("GET /occupancy - Room not found: %v", err)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getPortfolioOccupancy.ErrInvalidRange):
			h.logger.Warn("GET /occupancy - Invalid range: start=%s, end=%s", startStr, endStr)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getPortfolioOccupancy.ErrRangeTooLong):
			h.logger.Warn("GET /occupancy - Range too long: %v", err)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		case errors.Is(err, getPortfolioOccupancy.ErrInvalidInput):
			h.logger.Warn("GET /occupancy - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /occupancy - Failed to get occupancy: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /occupancy - Occupancy calculated: rooms=%d, percentage=%.2f", len(result.Rooms), result.Percentage)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
