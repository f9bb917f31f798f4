package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Revenue is the denormalized per-month aggregate behind the dashboard chart.
// Rows are rebuilt by the revenue rollup service.
type Revenue struct {
	ID      uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Month   string        `gorm:"not null;uniqueIndex" json:"month"` // "Jan" .. "Dec"
	Revenue NumericString `gorm:"not null" json:"revenue"`
}

func (Revenue) TableName() string {
	return "revenue"
}

func (r *Revenue) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}

// NumericString is a float column that tolerates the value arriving as text.
// Legacy revenue rows were imported with the amount stored as a string.
type NumericString float64

func (n *NumericString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*n = 0
	case float64:
		*n = NumericString(v)
	case int64:
		*n = NumericString(v)
	case []byte:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return fmt.Errorf("parse numeric %q: %w", string(v), err)
		}
		*n = NumericString(f)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parse numeric %q: %w", v, err)
		}
		*n = NumericString(f)
	default:
		return fmt.Errorf("unsupported numeric type %T", value)
	}
	return nil
}

func (n NumericString) Value() (driver.Value, error) {
	return float64(n), nil
}
