package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/myusernamejeep/dineflow-backend/internal/models"
	"github.com/myusernamejeep/dineflow-backend/internal/repository"
)

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrTableNotInInventory = errors.New("selected table not found for this restaurant")
	ErrTableTooSmall       = errors.New("selected table capacity is too small for the number of guests")
	ErrTableUnavailable    = errors.New("selected table is no longer available at this time")
	ErrInvalidStatus       = errors.New("invalid booking status")
)

// adminStatuses are the values staff may set directly, independent of payment.
var adminStatuses = map[models.BookingStatus]bool{
	models.BookingConfirmed: true,
	models.BookingCancelled: true,
	models.BookingNoShow:    true,
}

type CreateBookingInput struct {
	RestaurantID  uuid.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	BookingDate   string
	BookingTime   string
	NumGuests     int
	TableID       string
}

type CreateBookingResult struct {
	Booking        *models.Booking
	RestaurantName string
	Table          models.Table
}

type BookingService interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error)
}

type bookingService struct {
	bookingRepo    repository.BookingRepository
	restaurantRepo repository.RestaurantRepository
}

func NewBookingService(bookingRepo repository.BookingRepository, restaurantRepo repository.RestaurantRepository) BookingService {
	return &bookingService{
		bookingRepo:    bookingRepo,
		restaurantRepo: restaurantRepo,
	}
}

// CreateBooking validates the table against the restaurant's inventory,
// re-checks the slot immediately before insert, and persists the booking in
// {paymentStatus: pending, bookingStatus: pending}. The deposit is fixed here
// as depositPerPerson times the party size and never recomputed.
func (s *bookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error) {
	restaurant, err := s.restaurantRepo.FindByID(ctx, in.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	table := restaurant.FindTable(in.TableID)
	if table == nil {
		return nil, ErrTableNotInInventory
	}
	if table.Capacity < in.NumGuests {
		return nil, ErrTableTooSmall
	}

	// Best-effort re-check before insert. Two concurrent requests can still
	// both pass; the partial unique index on active slots catches that case
	// and the duplicate-key error maps to the same conflict below.
	taken, err := s.bookingRepo.ExistsActiveForTable(ctx, in.RestaurantID, in.TableID, in.BookingDate, in.BookingTime)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrTableUnavailable
	}

	booking := &models.Booking{
		RestaurantID:  in.RestaurantID,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		BookingDate:   in.BookingDate,
		BookingTime:   in.BookingTime,
		NumGuests:     in.NumGuests,
		TableID:       in.TableID,
		DepositAmount: restaurant.DepositPerPerson * float64(in.NumGuests),
		PaymentStatus: models.PaymentPending,
		BookingStatus: models.BookingPending,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTableUnavailable
		}
		return nil, err
	}

	return &CreateBookingResult{
		Booking:        booking,
		RestaurantName: restaurant.Name,
		Table:          *table,
	}, nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.bookingRepo.FindAllWithRestaurant(ctx)
}

// UpdateBookingStatus overwrites the booking status unconditionally; there is
// no transition table, so staff can move a booking between any of the allowed
// values regardless of payment state.
func (s *bookingService) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error) {
	if !adminStatuses[status] {
		return nil, ErrInvalidStatus
	}

	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	booking.BookingStatus = status
	return booking, nil
}
