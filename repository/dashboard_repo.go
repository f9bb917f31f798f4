package repository

import (
	"acme-dashboard-backend/models"

	"gorm.io/gorm"
)

type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// CardData holds the four dashboard summary counters, computed fresh per
// request and never persisted. Sums are integer cents.
type CardData struct {
	NumberOfInvoices  int64
	NumberOfCustomers int64
	TotalPaid         int64
	TotalPending      int64
}

// CardData computes the dashboard overview counters.
func (r *DashboardRepository) CardData() (*CardData, error) {
	var data CardData

	if err := r.db.Model(&models.Invoice{}).Count(&data.NumberOfInvoices).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Customer{}).Count(&data.NumberOfCustomers).Error; err != nil {
		return nil, err
	}

	var sums struct {
		Paid    int64
		Pending int64
	}
	err := r.db.Table("invoices").
		Select(`COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS paid,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS pending`).
		Scan(&sums).Error
	if err != nil {
		return nil, err
	}
	data.TotalPaid = sums.Paid
	data.TotalPending = sums.Pending

	return &data, nil
}

// Revenue returns the per-month revenue series. The revenue column is coerced
// to a number while scanning in case it arrives as text.
func (r *DashboardRepository) Revenue() ([]models.Revenue, error) {
	var revenues []models.Revenue
	err := r.db.Order("id").Find(&revenues).Error
	return revenues, err
}
