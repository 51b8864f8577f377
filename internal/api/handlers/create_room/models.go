package create_room

import (
	"github.com/m04kA/SMC-HotelOccupancy/internal/service/rooms/models"
)

// CreateRoomRequest HTTP request model
type CreateRoomRequest struct {
	Name     string   `json:"name"`
	Rate     float64  `json:"rate"`
	Discount *float64 `json:"discount,omitempty"` // По умолчанию 0
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateRoomRequest) ToServiceRequest() *models.CreateRoomRequest {
	discount := 0.0
	if r.Discount != nil {
		discount = *r.Discount
	}

	return &models.CreateRoomRequest{
		Name:     r.Name,
		Rate:     r.Rate,
		Discount: discount,
	}
}
