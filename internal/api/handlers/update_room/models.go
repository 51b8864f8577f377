package update_room

import (
	"github.com/m04kA/SMC-HotelOccupancy/internal/service/rooms/models"
)

// UpdateRoomRequest HTTP request model, отсутствующие поля не меняются
type UpdateRoomRequest struct {
	Name     *string  `json:"name,omitempty"`
	Rate     *float64 `json:"rate,omitempty"`
	Discount *float64 `json:"discount,omitempty"`
}

// IsEmpty true, если запрос не меняет ни одного поля
func (r *UpdateRoomRequest) IsEmpty() bool {
	return r.Name == nil && r.Rate == nil && r.Discount == nil
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateRoomRequest) ToServiceRequest() *models.UpdateRoomRequest {
	return &models.UpdateRoomRequest{
		Name:     r.Name,
		Rate:     r.Rate,
		Discount: r.Discount,
	}
}
