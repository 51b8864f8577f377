package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-HotelOccupancy/internal/api/handlers"
	"github.com/m04kA/SMC-HotelOccupancy/internal/service/bookings/models"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	CheckIn  string   `json:"checkIn"`  // "2023-04-16" или RFC3339
	CheckOut string   `json:"checkOut"` // "2023-04-18" или RFC3339
	Discount *float64 `json:"discount,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса (с парсингом дат)
func (r *CreateBookingRequest) ToServiceRequest() (*models.CreateBookingRequest, error) {
	checkIn, err := handlers.ParseDate(r.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("checkIn: %w", err)
	}

	checkOut, err := handlers.ParseDate(r.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("checkOut: %w", err)
	}

	discount := 0.0
	if r.Discount != nil {
		discount = *r.Discount
	}

	return &models.CreateBookingRequest{
		Name:     r.Name,
		Email:    r.Email,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Discount: discount,
	}, nil
}
