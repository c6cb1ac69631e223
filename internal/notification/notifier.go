package notification

import (
	"context"
	"log"

	"github.com/myusernamejeep/dineflow-backend/internal/models"
)

type Publisher interface {
	Publish(routingKey string, payload any) error
}

// Notifier enqueues notification events on the broker. Publish failures are
// logged and swallowed so the payment response never depends on them.
type Notifier struct {
	publisher Publisher
}

func NewNotifier(publisher Publisher) *Notifier {
	return &Notifier{publisher: publisher}
}

func (n *Notifier) BookingConfirmed(ctx context.Context, booking *models.Booking, restaurant *models.Restaurant) {
	ev := BookingConfirmedEvent{
		BookingID:     booking.ID.String(),
		CustomerName:  booking.CustomerName,
		CustomerEmail: booking.CustomerEmail,
		CustomerPhone: booking.CustomerPhone,
		BookingDate:   booking.BookingDate,
		BookingTime:   booking.BookingTime,
		NumGuests:     booking.NumGuests,
		TableID:       booking.TableID,
		DepositAmount: booking.DepositAmount,
	}
	if restaurant != nil {
		ev.RestaurantName = restaurant.Name
	}

	if err := n.publisher.Publish(RoutingKeyBookingConfirmed, ev); err != nil {
		log.Printf("[Notifier] failed to publish %s for booking %s: %v", RoutingKeyBookingConfirmed, ev.BookingID, err)
	}
}
