package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/myusernamejeep/dineflow-backend/internal/models"
	"github.com/myusernamejeep/dineflow-backend/internal/repository"
	"github.com/myusernamejeep/dineflow-backend/pkg/stripe"
)

var ErrAlreadyPaid = errors.New("booking already paid")

// PaymentDeclinedError reports a gateway outcome other than succeeded. The
// gateway's status string is the only internal detail surfaced to the client.
type PaymentDeclinedError struct {
	Status string
}

func (e *PaymentDeclinedError) Error() string {
	return fmt.Sprintf("payment declined (status=%s)", e.Status)
}

// PaymentGateway creates and confirms a charge with the external provider.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, params stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// Notifier is invoked after a successful payment. Implementations must not
// block the request path or report failures back to it.
type Notifier interface {
	BookingConfirmed(ctx context.Context, booking *models.Booking, restaurant *models.Restaurant)
}

type PaymentService interface {
	ProcessPayment(ctx context.Context, bookingID uuid.UUID, paymentMethodID string, amount int64) (*models.Booking, error)
}

type paymentService struct {
	bookingRepo repository.BookingRepository
	gateway     PaymentGateway
	notifier    Notifier
	currency    string
}

func NewPaymentService(bookingRepo repository.BookingRepository, gateway PaymentGateway, notifier Notifier, currency string) PaymentService {
	return &paymentService{
		bookingRepo: bookingRepo,
		gateway:     gateway,
		notifier:    notifier,
		currency:    currency,
	}
}

// ProcessPayment charges the booking's deposit and applies the resulting
// state transition: {pending → paid, pending → confirmed} on success,
// paymentStatus → failed on decline. A transport error while calling the
// gateway leaves the booking unmodified.
func (s *paymentService) ProcessPayment(ctx context.Context, bookingID uuid.UUID, paymentMethodID string, amount int64) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByIDWithRestaurant(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if booking.PaymentStatus == models.PaymentPaid {
		return nil, ErrAlreadyPaid
	}

	// The charge always uses the server-computed amount in minor units. A
	// mismatched client amount is logged, not rejected.
	expected := int64(math.Round(booking.DepositAmount * 100))
	if amount != expected {
		log.Printf("[PaymentService] amount mismatch for booking %s: expected %d, got %d", booking.ID, expected, amount)
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, stripe.PaymentIntentParams{
		Amount:          expected,
		Currency:        s.currency,
		PaymentMethodID: paymentMethodID,
		Metadata: map[string]string{
			"bookingId":     booking.ID.String(),
			"restaurantId":  booking.RestaurantID.String(),
			"customerEmail": booking.CustomerEmail,
		},
	})
	if err != nil {
		return nil, err
	}

	if intent.Status != stripe.StatusSucceeded {
		booking.PaymentStatus = models.PaymentFailed
		if err := s.bookingRepo.Save(ctx, booking); err != nil {
			return nil, err
		}
		return nil, &PaymentDeclinedError{Status: intent.Status}
	}

	booking.PaymentStatus = models.PaymentPaid
	booking.BookingStatus = models.BookingConfirmed
	booking.PaymentIntentID = intent.ID
	if err := s.bookingRepo.Save(ctx, booking); err != nil {
		return nil, err
	}

	// Fire-and-forget: the response does not wait on notification delivery.
	s.notifier.BookingConfirmed(ctx, booking, booking.Restaurant)

	return booking, nil
}
