// Package notification defines the booking-confirmation events published to
// the message broker and the publisher-backed Notifier used by the payment flow.
package notification

// RoutingKeyBookingConfirmed is the routing key for confirmed-booking events.
const RoutingKeyBookingConfirmed = "booking.confirmed"

// BookingConfirmedEvent carries everything the notification worker needs to
// message the customer and the restaurant admin without querying the database.
type BookingConfirmedEvent struct {
	BookingID      string  `json:"bookingId"`
	RestaurantName string  `json:"restaurantName"`
	CustomerName   string  `json:"customerName"`
	CustomerEmail  string  `json:"customerEmail"`
	CustomerPhone  string  `json:"customerPhone"`
	BookingDate    string  `json:"bookingDate"`
	BookingTime    string  `json:"bookingTime"`
	NumGuests      int     `json:"numGuests"`
	TableID        string  `json:"tableId"`
	DepositAmount  float64 `json:"depositAmount"`
}
