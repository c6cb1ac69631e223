package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingNoShow    BookingStatus = "no-show"
)

// Active reports whether a booking in this status still occupies its slot.
func (s BookingStatus) Active() bool {
	return s == BookingPending || s == BookingConfirmed
}

type Booking struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	RestaurantID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"restaurantId"`
	CustomerName    string        `gorm:"not null" json:"customerName"`
	CustomerEmail   string        `gorm:"not null" json:"customerEmail"`
	CustomerPhone   string        `gorm:"not null" json:"customerPhone"`
	BookingDate     string        `gorm:"type:varchar(10);not null" json:"bookingDate"` // YYYY-MM-DD
	BookingTime     string        `gorm:"type:varchar(5);not null" json:"bookingTime"`  // HH:MM
	NumGuests       int           `gorm:"not null" json:"numGuests"`
	TableID         string        `gorm:"not null" json:"tableId"`
	DepositAmount   float64       `gorm:"not null" json:"depositAmount"`
	PaymentStatus   PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"paymentStatus"`
	BookingStatus   BookingStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"bookingStatus"`
	PaymentIntentID string        `json:"paymentIntentId,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
