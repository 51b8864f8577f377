package get_room_occupancy

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelOccupancy/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, model domain.OccupancyModel, maxRangeDays int) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return ErrInvalidRange
	}

	if maxRangeDays > 0 && req.EndDate.Sub(req.StartDate) > time.Duration(maxRangeDays)*domain.DayStep {
		return fmt.Errorf("%w: at most %d days", ErrRangeTooLong, maxRangeDays)
	}

	if !model.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidModel, model)
	}

	return nil
}
