package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/myusernamejeep/dineflow-backend/internal/notification"
)

type SMSSender interface {
	Send(ctx context.Context, to, body string) error
	Configured() bool
}

type EmailSender interface {
	Send(to, subject, htmlBody string) error
	Configured() bool
}

// NotificationWorker consumes booking-confirmation events and sends the
// customer SMS, customer email and admin email. Delivery is at-most-once: a
// failed send is logged and the message is still acked.
type NotificationWorker struct {
	sms        SMSSender
	mail       EmailSender
	adminEmail string
}

func NewNotificationWorker(sms SMSSender, mail EmailSender, adminEmail string) *NotificationWorker {
	return &NotificationWorker{sms: sms, mail: mail, adminEmail: adminEmail}
}

// Start listens for deliveries until the channel closes.
func (w *NotificationWorker) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			w.handleMessage(msg)
		}
		log.Println("[NotificationWorker] channel closed, stopping worker")
	}()
}

func (w *NotificationWorker) handleMessage(msg amqp.Delivery) {
	var ev notification.BookingConfirmedEvent
	if err := json.Unmarshal(msg.Body, &ev); err != nil {
		log.Printf("[NotificationWorker] failed to unmarshal: %v", err)
		msg.Nack(false, false)
		return
	}

	w.Notify(context.Background(), ev)
	msg.Ack(false)
}

// Notify performs the three sends. Each one is isolated: a failure is logged
// and does not affect the others.
func (w *NotificationWorker) Notify(ctx context.Context, ev notification.BookingConfirmedEvent) {
	if ev.CustomerPhone != "" {
		if !w.sms.Configured() {
			log.Println("[NotificationWorker] SMS credentials not set, SMS not sent")
		} else if err := w.sms.Send(ctx, ev.CustomerPhone, smsBody(ev)); err != nil {
			log.Printf("[NotificationWorker] failed to send SMS to %s: %v", ev.CustomerPhone, err)
		}
	}

	if !w.mail.Configured() {
		log.Println("[NotificationWorker] email credentials not set, emails not sent")
		return
	}

	if err := w.mail.Send(ev.CustomerEmail, "Your DineFlow booking is confirmed", customerEmailBody(ev)); err != nil {
		log.Printf("[NotificationWorker] failed to email customer %s: %v", ev.CustomerEmail, err)
	}

	if w.adminEmail != "" {
		subject := fmt.Sprintf("New booking at %s", ev.RestaurantName)
		if err := w.mail.Send(w.adminEmail, subject, adminEmailBody(ev)); err != nil {
			log.Printf("[NotificationWorker] failed to email admin %s: %v", w.adminEmail, err)
		}
	}
}

func smsBody(ev notification.BookingConfirmedEvent) string {
	return fmt.Sprintf("Your table at %s for %d guests on %s at %s is confirmed. Booking ref: %s",
		ev.RestaurantName, ev.NumGuests, ev.BookingDate, ev.BookingTime, ev.BookingID)
}

func customerEmailBody(ev notification.BookingConfirmedEvent) string {
	return fmt.Sprintf(`
		<p><strong>Your booking is confirmed!</strong></p>
		<p><strong>Restaurant:</strong> %s</p>
		<p><strong>Date:</strong> %s</p>
		<p><strong>Time:</strong> %s</p>
		<p><strong>Guests:</strong> %d</p>
		<p><strong>Table:</strong> %s</p>
		<p><strong>Deposit paid:</strong> %.2f</p>
		<p><strong>Booking ref:</strong> %s</p>
		<p>Thank you for booking with DineFlow.</p>
	`, ev.RestaurantName, ev.BookingDate, ev.BookingTime, ev.NumGuests, ev.TableID, ev.DepositAmount, ev.BookingID)
}

func adminEmailBody(ev notification.BookingConfirmedEvent) string {
	return fmt.Sprintf(`
		<p>New booking at %s</p>
		<p><strong>Customer:</strong> %s (%s, %s)</p>
		<p><strong>Date:</strong> %s</p>
		<p><strong>Time:</strong> %s</p>
		<p><strong>Guests:</strong> %d</p>
		<p><strong>Table:</strong> %s</p>
		<p><strong>Deposit:</strong> %.2f (paid)</p>
		<p><strong>Booking ref:</strong> %s</p>
	`, ev.RestaurantName, ev.CustomerName, ev.CustomerEmail, ev.CustomerPhone,
		ev.BookingDate, ev.BookingTime, ev.NumGuests, ev.TableID, ev.DepositAmount, ev.BookingID)
}
