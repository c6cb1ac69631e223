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
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrInvalidGuestCount  = errors.New("number of guests must be a positive integer")
)

type RestaurantService interface {
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	CreateRestaurant(ctx context.Context, restaurant *models.Restaurant) error
	CheckAvailability(ctx context.Context, restaurantID uuid.UUID, date, timeOfDay string, guests int) ([]models.Table, error)
}

type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	bookingRepo    repository.BookingRepository
}

func NewRestaurantService(restaurantRepo repository.RestaurantRepository, bookingRepo repository.BookingRepository) RestaurantService {
	return &restaurantService{
		restaurantRepo: restaurantRepo,
		bookingRepo:    bookingRepo,
	}
}

func (s *restaurantService) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	return s.restaurantRepo.FindAll(ctx)
}

func (s *restaurantService) CreateRestaurant(ctx context.Context, restaurant *models.Restaurant) error {
	return s.restaurantRepo.Create(ctx, restaurant)
}

// CheckAvailability returns the tables that can seat the party and are not
// claimed by a pending or confirmed booking for the given date and time.
// Results follow the restaurant's stored table order. No side effects.
func (s *restaurantService) CheckAvailability(ctx context.Context, restaurantID uuid.UUID, date, timeOfDay string, guests int) ([]models.Table, error) {
	if guests < 1 {
		return nil, ErrInvalidGuestCount
	}

	restaurant, err := s.restaurantRepo.FindByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	existing, err := s.bookingRepo.FindActiveForSlot(ctx, restaurantID, date, timeOfDay)
	if err != nil {
		return nil, err
	}

	claimed := make(map[string]struct{}, len(existing))
	for _, b := range existing {
		claimed[b.TableID] = struct{}{}
	}

	available := make([]models.Table, 0, len(restaurant.Tables))
	for _, t := range restaurant.Tables {
		if t.Capacity < guests {
			continue
		}
		if _, taken := claimed[t.TableID]; taken {
			continue
		}
		available = append(available, t)
	}

	return available, nil
}
