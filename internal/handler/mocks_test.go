package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/myusernamejeep/dineflow-backend/internal/models"
	"github.com/myusernamejeep/dineflow-backend/internal/service"
)

// --- Mock RestaurantService ---

type mockRestaurantService struct {
	listFn   func(ctx context.Context) ([]models.Restaurant, error)
	createFn func(ctx context.Context, restaurant *models.Restaurant) error
	checkFn  func(ctx context.Context, restaurantID uuid.UUID, date, timeOfDay string, guests int) ([]models.Table, error)
}

func (m *mockRestaurantService) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	return m.listFn(ctx)
}

func (m *mockRestaurantService) CreateRestaurant(ctx context.Context, restaurant *models.Restaurant) error {
	return m.createFn(ctx, restaurant)
}

func (m *mockRestaurantService) CheckAvailability(ctx context.Context, restaurantID uuid.UUID, date, timeOfDay string, guests int) ([]models.Table, error) {
	return m.checkFn(ctx, restaurantID, date, timeOfDay, guests)
}

// --- Mock BookingService ---

type mockBookingService struct {
	createFn func(ctx context.Context, in service.CreateBookingInput) (*service.CreateBookingResult, error)
	listFn   func(ctx context.Context) ([]models.Booking, error)
	updateFn func(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, in service.CreateBookingInput) (*service.CreateBookingResult, error) {
	return m.createFn(ctx, in)
}

func (m *mockBookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return m.listFn(ctx)
}

func (m *mockBookingService) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error) {
	return m.updateFn(ctx, id, status)
}

// --- Mock PaymentService ---

type mockPaymentService struct {
	processFn func(ctx context.Context, bookingID uuid.UUID, paymentMethodID string, amount int64) (*models.Booking, error)
}

func (m *mockPaymentService) ProcessPayment(ctx context.Context, bookingID uuid.UUID, paymentMethodID string, amount int64) (*models.Booking, error) {
	return m.processFn(ctx, bookingID, paymentMethodID, amount)
}
