package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myusernamejeep/dineflow-backend/internal/models"
	"github.com/myusernamejeep/dineflow-backend/pkg/stripe"
)

func pendingBooking() *models.Booking {
	restaurant := testRestaurant(100)
	return &models.Booking{
		ID:            uuid.New(),
		RestaurantID:  restaurant.ID,
		CustomerEmail: "somchai@example.com",
		BookingDate:   "2026-09-10",
		BookingTime:   "19:00",
		NumGuests:     4,
		TableID:       "T02",
		DepositAmount: 400,
		PaymentStatus: models.PaymentPending,
		BookingStatus: models.BookingPending,
		Restaurant:    restaurant,
	}
}

func TestProcessPayment_Success(t *testing.T) {
	booking := pendingBooking()
	bookingRepo := &mockBookingRepo{
		findByIDWithRestFn: func(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
			return booking, nil
		},
	}
	var charged stripe.PaymentIntentParams
	gateway := &mockGateway{
		createIntentFn: func(ctx context.Context, params stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
			charged = params
			return &stripe.PaymentIntent{ID: "pi_123", Status: stripe.StatusSucceeded}, nil
		},
	}
	notifier := &mockNotifier{}

	svc := NewPaymentService(bookingRepo, gateway, notifier, "thb")
	got, err := svc.ProcessPayment(context.Background(), booking.ID, "pm_card", 40000)

	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, got.PaymentStatus)
	assert.Equal(t, models.BookingConfirmed, got.BookingStatus)
	assert.Equal(t, "pi_123", got.PaymentIntentID)
	assert.Equal(t, int64(40000), charged.Amount, "deposit 400 x 100 minor units")
	assert.Equal(t, "thb", charged.Currency)
	assert.Equal(t, booking.ID.String(), charged.Metadata["bookingId"])
	assert.Equal(t, booking.RestaurantID.String(), charged.Metadata["restaurantId"])
	assert.Equal(t, "somchai@example.com", charged.Metadata["customerEmail"])
	assert.Equal(t, 1, notifier.calls)
}

func TestProcessPayment_AmountMismatchStillCharges(t *testing.T) {
	booking := pendingBooking()
	bookingRepo := &mockBookingRepo{
		findByIDWithRestFn: func(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
			return booking, nil
		},
	}
	var charged stripe.PaymentIntentParams
	gateway := &mockGateway{
		createIntentFn: func(ctx context.Context, params stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
			charged = params
			return &stripe.PaymentIntent{ID: "pi_456", Status: stripe.StatusSucceeded}, nil
		},
	}

	svc := NewPaymentService(bookingRepo, gateway, &mockNotifier{}, "thb")
	// Mismatched client amount is logged, not rejected; the charge uses the
	// server-computed amount.
	_, err := svc.ProcessPayment(context.Background(), booking.ID, "pm_card", 999)

	require.NoError(t, err)
	assert.Equal(t, int64(40000), charged.Amount)
}

func TestProcessPayment_AlreadyPaid(t *testing.T) {
	booking := pendingBooking()
	booking.PaymentStatus = models.PaymentPaid
	saveCalled := false
	bookingRepo := &mockBookingRepo{
		findByIDWithRestFn: func(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
			return booking, nil
		},
		saveFn: func(ctx context.Context, b *models.Booking) error {
			saveCalled = true
			return nil
		},
	}
	gateway := &mockGateway{
		createIntentFn: func(ctx context.Context, params stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
			t.Fatal("gateway must not be called for an already-paid booking")
			return nil, nil
		},
	}

	svc := NewPaymentService(bookingRepo, gateway, &mockNotifier{}, "thb")
	_, err := svc.ProcessPayment(context.Background(), booking.ID, "pm_card", 40000)

	assert.ErrorIs(t, err, ErrAlreadyPaid)
	assert.False(t, saveCalled)
	assert.Equal(t, models.BookingPending, booking.BookingStatus, "record unchanged")
}

func TestProcessPayment_Declined(t *testing.T) {
	booking := pendingBooking()
	var saved *models.Booking
	bookingRepo := &mockBookingRepo{
		findByIDWithRestFn: func(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
			return booking, nil
		},
		saveFn: func(ctx context.Context, b *models.Booking) error {
			saved = b
			return nil
		},
	}
	gateway := &mockGateway{
		createIntentFn: func(ctx context.Context, params stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
			return &stripe.PaymentIntent{ID: "pi_789", Status: "requires_payment_method"}, nil
		},
	}
	notifier := &mockNotifier{}

	svc := NewPaymentService(bookingRepo, gateway, notifier, "thb")
	_, err := svc.ProcessPayment(context.Background(), booking.ID, "pm_card", 40000)

	var declined *PaymentDeclinedError
	require.ErrorAs(t, err, &declined)
	assert.Equal(t, "requires_payment_method", declined.Status)
	require.NotNil(t, saved)
	assert.Equal(t, models.PaymentFailed, saved.PaymentStatus)
	assert.Equal(t, models.BookingPending, saved.BookingStatus, "booking status untouched on decline")
	assert.Equal(t, 0, notifier.calls)
}

func TestProcessPayment_GatewayErrorLeavesBookingUnmodified(t *testing.T) {
	booking := pendingBooking()
	saveCalled := false
	bookingRepo := &mockBookingRepo{
		findByIDWithRestFn: func(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
			return booking, nil
		},
		saveFn: func(ctx context.Context, b *models.Booking) error {
			saveCalled = true
			return nil
		},
	}
	gateway := &mockGateway{
		createIntentFn: func(ctx context.Context, params stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
			return nil, errors.New("connection reset")
		},
	}

	svc := NewPaymentService(bookingRepo, gateway, &mockNotifier{}, "thb")
	_, err := svc.ProcessPayment(context.Background(), booking.ID, "pm_card", 40000)

	require.Error(t, err)
	assert.False(t, saveCalled)
	assert.Equal(t, models.PaymentPending, booking.PaymentStatus)
}

func TestProcessPayment_BookingNotFound(t *testing.T) {
	svc := NewPaymentService(&mockBookingRepo{}, &mockGateway{}, &mockNotifier{}, "thb")

	_, err := svc.ProcessPayment(context.Background(), uuid.New(), "pm_card", 40000)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}
