package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/myusernamejeep/dineflow-backend/internal/models"
)

// activeStatuses are the booking statuses that claim a slot.
var activeStatuses = []models.BookingStatus{models.BookingPending, models.BookingConfirmed}

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	FindByIDWithRestaurant(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	FindAllWithRestaurant(ctx context.Context) ([]models.Booking, error)
	FindActiveForSlot(ctx context.Context, restaurantID uuid.UUID, date, time string) ([]models.Booking, error)
	ExistsActiveForTable(ctx context.Context, restaurantID uuid.UUID, tableID, date, time string) (bool, error)
	Save(ctx context.Context, booking *models.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByIDWithRestaurant(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Restaurant").
		First(&booking, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindAllWithRestaurant(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Restaurant").
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindActiveForSlot returns the pending/confirmed bookings that claim tables
// at the given restaurant, date and time.
func (r *bookingRepository) FindActiveForSlot(ctx context.Context, restaurantID uuid.UUID, date, time string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND booking_date = ? AND booking_time = ? AND booking_status IN ?",
			restaurantID, date, time, activeStatuses).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// ExistsActiveForTable is the pre-insert re-check for a single table slot.
func (r *bookingRepository) ExistsActiveForTable(ctx context.Context, restaurantID uuid.UUID, tableID, date, time string) (bool, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND table_id = ? AND booking_date = ? AND booking_time = ? AND booking_status IN ?",
			restaurantID, tableID, date, time, activeStatuses).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *bookingRepository) Save(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("booking_status", status).Error
}
