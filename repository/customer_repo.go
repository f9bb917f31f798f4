package repository

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// CustomerName is the minimal projection used to populate selection inputs.
type CustomerName struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CustomerTableRow is one row of the customers table with its per-customer
// invoice aggregates. Sums stay in integer cents.
type CustomerTableRow struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	TotalInvoices int64     `json:"total_invoices"`
	TotalPending  int64     `json:"total_pending"`
	TotalPaid     int64     `json:"total_paid"`
}

// ListNames returns every customer's id and name, alphabetically ascending.
func (r *CustomerRepository) ListNames() ([]CustomerName, error) {
	var rows []CustomerName
	err := r.db.Table("customers").
		Select("id, name").
		Order("name ASC").
		Scan(&rows).Error
	return rows, err
}

// FilteredPage returns one page of customers matching the query against name
// or email, with invoice count and conditional pending/paid sums per customer.
func (r *CustomerRepository) FilteredPage(query string, page int) ([]CustomerTableRow, error) {
	if page < 1 {
		page = 1
	}
	like := "%" + strings.ToLower(query) + "%"
	var rows []CustomerTableRow
	err := r.db.Table("customers").
		Select(`customers.id, customers.name, customers.email, customers.image_url,
			COUNT(invoices.id) AS total_invoices,
			COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS total_pending,
			COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS total_paid`).
		Joins("LEFT JOIN invoices ON invoices.customer_id = customers.id").
		Where("LOWER(customers.name) LIKE ? OR LOWER(customers.email) LIKE ?", like, like).
		Group("customers.id, customers.name, customers.email, customers.image_url").
		Order("customers.name ASC").
		Limit(ItemsPerPage).
		Offset((page - 1) * ItemsPerPage).
		Scan(&rows).Error
	return rows, err
}

// PageCount counts matching customers (no join needed for the predicate) and
// ceiling-divides by the page size.
func (r *CustomerRepository) PageCount(query string) (int, error) {
	like := "%" + strings.ToLower(query) + "%"
	var total int64
	err := r.db.Table("customers").
		Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return pageCount(total), nil
}
