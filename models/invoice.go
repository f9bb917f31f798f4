package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invoice statuses. No other value is ever persisted.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// Invoice stores its amount as integer cents. Conversion to a decimal currency
// unit happens only at the read boundary, never in SQL.
type Invoice struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`
	Amount     int64     `gorm:"not null" json:"amount"`
	Status     string    `gorm:"not null;index" json:"status"`
	Date       string    `gorm:"not null;index" json:"date"` // calendar date, YYYY-MM-DD
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
