// services/revenue_service.go
package services

import (
	"time"

	"acme-dashboard-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// RevenueService maintains the denormalized revenue table: one row per month
// label, holding the paid-invoice total in decimal currency units. The table
// is replaced wholesale on each rebuild.
type RevenueService struct {
	db *gorm.DB
}

func NewRevenueService(db *gorm.DB) *RevenueService {
	return &RevenueService{db: db}
}

// StartScheduler rebuilds the rollup now and then on the first of every month.
func (s *RevenueService) StartScheduler() {
	if err := s.Rebuild(); err != nil {
		log.Error().Err(err).Msg("initial revenue rollup failed")
	}

	c := cron.New()
	c.AddFunc("0 2 1 * *", func() {
		if err := s.Rebuild(); err != nil {
			log.Error().Err(err).Msg("revenue rollup failed")
		}
	})
	c.Start()

	log.Info().Msg("revenue rollup scheduler started")
}

// Rebuild recomputes the per-month totals from paid invoices and rewrites the
// revenue table inside one transaction. Months without paid invoices get no
// row.
func (s *RevenueService) Rebuild() error {
	var invoices []models.Invoice
	if err := s.db.Select("date", "amount").
		Where("status = ?", models.StatusPaid).
		Find(&invoices).Error; err != nil {
		return err
	}

	totals := make(map[time.Month]int64)
	for _, invoice := range invoices {
		date, err := time.Parse("2006-01-02", invoice.Date)
		if err != nil {
			log.Warn().Str("date", invoice.Date).Msg("skipping invoice with malformed date")
			continue
		}
		totals[date.Month()] += invoice.Amount
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Revenue{}).Error; err != nil {
			return err
		}
		for month := time.January; month <= time.December; month++ {
			cents, ok := totals[month]
			if !ok {
				continue
			}
			row := models.Revenue{
				Month:   month.String()[:3],
				Revenue: models.NumericString(float64(cents) / 100),
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
