package get_available_rooms

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelOccupancy/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, maxRangeDays int) error {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return ErrInvalidRange
	}

	if maxRangeDays > 0 && req.EndDate.Sub(req.StartDate) > time.Duration(maxRangeDays)*domain.DayStep {
		return fmt.Errorf("%w: at most %d days", ErrRangeTooLong, maxRangeDays)
	}

	return nil
}
