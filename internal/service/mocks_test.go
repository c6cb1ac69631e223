package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/myusernamejeep/dineflow-backend/internal/models"
	"github.com/myusernamejeep/dineflow-backend/pkg/stripe"
)

// --- Mock RestaurantRepository ---

type mockRestaurantRepo struct {
	createFn   func(ctx context.Context, restaurant *models.Restaurant) error
	findByIDFn func(ctx context.Context, id uuid.UUID) (*models.Restaurant, error)
	findAllFn  func(ctx context.Context) ([]models.Restaurant, error)
}

func (m *mockRestaurantRepo) Create(ctx context.Context, restaurant *models.Restaurant) error {
	if m.createFn != nil {
		return m.createFn(ctx, restaurant)
	}
	return nil
}

func (m *mockRestaurantRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Restaurant, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRestaurantRepo) FindAll(ctx context.Context) ([]models.Restaurant, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	createFn               func(ctx context.Context, booking *models.Booking) error
	findByIDFn             func(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	findByIDWithRestFn     func(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	findAllWithRestFn      func(ctx context.Context) ([]models.Booking, error)
	findActiveForSlotFn    func(ctx context.Context, restaurantID uuid.UUID, date, time string) ([]models.Booking, error)
	existsActiveForTableFn func(ctx context.Context, restaurantID uuid.UUID, tableID, date, time string) (bool, error)
	saveFn                 func(ctx context.Context, booking *models.Booking) error
	updateStatusFn         func(ctx context.Context, id uuid.UUID, status models.BookingStatus) error
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if m.createFn != nil {
		return m.createFn(ctx, booking)
	}
	return nil
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookingRepo) FindByIDWithRestaurant(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	if m.findByIDWithRestFn != nil {
		return m.findByIDWithRestFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookingRepo) FindAllWithRestaurant(ctx context.Context) ([]models.Booking, error) {
	if m.findAllWithRestFn != nil {
		return m.findAllWithRestFn(ctx)
	}
	return nil, nil
}

func (m *mockBookingRepo) FindActiveForSlot(ctx context.Context, restaurantID uuid.UUID, date, time string) ([]models.Booking, error) {
	if m.findActiveForSlotFn != nil {
		return m.findActiveForSlotFn(ctx, restaurantID, date, time)
	}
	return nil, nil
}

func (m *mockBookingRepo) ExistsActiveForTable(ctx context.Context, restaurantID uuid.UUID, tableID, date, time string) (bool, error) {
	if m.existsActiveForTableFn != nil {
		return m.existsActiveForTableFn(ctx, restaurantID, tableID, date, time)
	}
	return false, nil
}

func (m *mockBookingRepo) Save(ctx context.Context, booking *models.Booking) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, booking)
	}
	return nil
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, id, status)
	}
	return nil
}

// --- Mock PaymentGateway ---

type mockGateway struct {
	createIntentFn func(ctx context.Context, params stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

func (m *mockGateway) CreatePaymentIntent(ctx context.Context, params stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return m.createIntentFn(ctx, params)
}

// --- Mock Notifier ---

type mockNotifier struct {
	calls       int
	lastBooking *models.Booking
}

func (m *mockNotifier) BookingConfirmed(ctx context.Context, booking *models.Booking, restaurant *models.Restaurant) {
	m.calls++
	m.lastBooking = booking
}

// --- Fixtures ---

func testRestaurant(depositPerPerson float64) *models.Restaurant {
	return &models.Restaurant{
		ID:               uuid.New(),
		Name:             "The Gastronome Bistro",
		DepositPerPerson: depositPerPerson,
		Tables: []models.Table{
			{TableID: "T01", Capacity: 2, Type: "window"},
			{TableID: "T02", Capacity: 4, Type: "center"},
			{TableID: "T03", Capacity: 6, Type: "private room"},
			{TableID: "T04", Capacity: 2, Type: "center"},
		},
	}
}
