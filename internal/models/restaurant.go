package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Restaurant struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Description      string    `json:"description"`
	Address          string    `json:"address"`
	Phone            string    `json:"phone"`
	Image            string    `json:"image"`
	DepositPerPerson float64   `gorm:"not null;default:0" json:"depositPerPerson"`
	Tables           []Table   `gorm:"foreignKey:RestaurantID" json:"tables"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// FindTable returns the table with the given public table id, or nil.
func (r *Restaurant) FindTable(tableID string) *Table {
	for i := range r.Tables {
		if r.Tables[i].TableID == tableID {
			return &r.Tables[i]
		}
	}
	return nil
}

// Table is one bookable unit of a restaurant's inventory. The surrogate key
// preserves insertion order, so availability results follow the stored order.
type Table struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	TableID      string    `gorm:"not null" json:"tableId"`
	Capacity     int       `gorm:"not null" json:"capacity"`
	Type         string    `gorm:"not null" json:"type"`
}
