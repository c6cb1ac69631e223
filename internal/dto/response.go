package dto

import (
	"github.com/myusernamejeep/dineflow-backend/internal/models"
)

type CreateBookingResponse struct {
	Message        string       `json:"message"`
	BookingID      string       `json:"bookingId"`
	DepositAmount  float64      `json:"depositAmount"`
	RestaurantName string       `json:"restaurantName"`
	TableDetails   models.Table `json:"tableDetails"`
}

type PaymentResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	BookingID    string `json:"bookingId,omitempty"`
	StripeStatus string `json:"stripeStatus,omitempty"`
}

type UpdateBookingStatusResponse struct {
	Message string          `json:"message"`
	Booking *models.Booking `json:"booking"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
