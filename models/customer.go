package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is read-only from the API's perspective: rows are seeded or managed
// out of band, and the dashboard only lists and aggregates them.
type Customer struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"not null;index" json:"name"`
	Email    string    `gorm:"not null" json:"email"`
	ImageURL string    `json:"image_url"`

	Invoices []Invoice `gorm:"foreignKey:CustomerID" json:"-"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
