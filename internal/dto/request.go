package dto

type CreateBookingRequest struct {
	RestaurantID  string `json:"restaurantId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	BookingDate   string `json:"bookingDate"`
	BookingTime   string `json:"bookingTime"`
	NumGuests     int    `json:"numGuests"`
	TableID       string `json:"tableId"`
}

// HasRequiredFields reports whether every booking field was supplied.
func (r *CreateBookingRequest) HasRequiredFields() bool {
	return r.RestaurantID != "" &&
		r.CustomerName != "" &&
		r.CustomerEmail != "" &&
		r.CustomerPhone != "" &&
		r.BookingDate != "" &&
		r.BookingTime != "" &&
		r.NumGuests >= 1 &&
		r.TableID != ""
}

type ProcessPaymentRequest struct {
	BookingID       string `json:"bookingId"`
	PaymentMethodID string `json:"paymentMethodId"`
	Amount          int64  `json:"amount"` // minor currency units
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

type RestaurantTableRequest struct {
	TableID  string `json:"tableId"`
	Capacity int    `json:"capacity"`
	Type     string `json:"type"`
}

type CreateRestaurantRequest struct {
	Name             string                   `json:"name"`
	Description      string                   `json:"description"`
	Address          string                   `json:"address"`
	Phone            string                   `json:"phone"`
	Image            string                   `json:"image"`
	DepositPerPerson float64                  `json:"depositPerPerson"`
	Tables           []RestaurantTableRequest `json:"tables"`
}
