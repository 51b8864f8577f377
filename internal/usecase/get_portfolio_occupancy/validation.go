package get_portfolio_occupancy

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelOccupancy/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, maxRangeDays int) error {
	for _, id := range req.RoomIDs {
		if id <= 0 {
			return fmt.Errorf("%w: roomIDs must be positive", ErrInvalidInput)
		}
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

	return nil
}

// uniqueIDs убирает повторы, сохраняя порядок первого вхождения
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

// missingIDs возвращает запрошенные ID, для которых не нашлось номера
func missingIDs(requested []int64, rooms []*domain.Room) []int64 {
	found := make(map[int64]struct{}, len(rooms))
	for _, room := range rooms {
		found[room.ID] = struct{}{}
	}

	missing := make([]int64, 0)
	for _, id := range requested {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
