package repository

import (
	"errors"
	"strings"

	"acme-dashboard-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemsPerPage is the fixed page window for every filtered table.
const ItemsPerPage = 6

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// InvoiceTableRow is one row of the filtered invoice table, joined with the
// owning customer. Amount stays in integer cents.
type InvoiceTableRow struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ImageURL   string    `json:"image_url"`
	Date       string    `json:"date"`
	Amount     int64     `json:"amount"`
	Status     string    `json:"status"`
}

// LatestInvoiceRow backs the dashboard's latest-invoices card.
type LatestInvoiceRow struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ImageURL string    `json:"image_url"`
	Email    string    `json:"email"`
	Amount   int64     `json:"amount"`
}

// InvoiceForm is the shape used to prefill the edit form. Amount is in
// decimal currency units, the one read path that divides by 100.
type InvoiceForm struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
}

// invoiceFilter matches the free-text query against customer name, email,
// the amount and date rendered as text, and the status, case-insensitively.
func invoiceFilter(db *gorm.DB, query string) *gorm.DB {
	like := "%" + strings.ToLower(query) + "%"
	return db.Table("invoices").
		Joins("JOIN customers ON customers.id = invoices.customer_id").
		Where(`LOWER(customers.name) LIKE ?
			OR LOWER(customers.email) LIKE ?
			OR LOWER(CAST(invoices.amount AS TEXT)) LIKE ?
			OR LOWER(CAST(invoices.date AS TEXT)) LIKE ?
			OR LOWER(invoices.status) LIKE ?`,
			like, like, like, like, like)
}

// Latest returns the five most recent invoices with customer details.
func (r *InvoiceRepository) Latest() ([]LatestInvoiceRow, error) {
	var rows []LatestInvoiceRow
	err := r.db.Table("invoices").
		Select("invoices.id, customers.name, customers.image_url, customers.email, invoices.amount").
		Joins("JOIN customers ON customers.id = invoices.customer_id").
		Order("invoices.date DESC").
		Limit(5).
		Scan(&rows).Error
	return rows, err
}

// FilteredPage returns one page of the filtered invoice table. Pages are
// 1-indexed at the interface and translated to a 0-indexed offset here.
func (r *InvoiceRepository) FilteredPage(query string, page int) ([]InvoiceTableRow, error) {
	if page < 1 {
		page = 1
	}
	var rows []InvoiceTableRow
	err := invoiceFilter(r.db, query).
		Select(`invoices.id, invoices.customer_id, customers.name, customers.email,
			customers.image_url, invoices.date, invoices.amount, invoices.status`).
		Order("invoices.date DESC").
		Limit(ItemsPerPage).
		Offset((page - 1) * ItemsPerPage).
		Scan(&rows).Error
	return rows, err
}

// PageCount returns ceil(matching rows / page size) for the same filter.
func (r *InvoiceRepository) PageCount(query string) (int, error) {
	var total int64
	if err := invoiceFilter(r.db, query).Count(&total).Error; err != nil {
		return 0, err
	}
	return pageCount(total), nil
}

// GetByID fetches a single invoice for the edit form. A missing id yields an
// empty result, not an error.
func (r *InvoiceRepository) GetByID(id uuid.UUID) (*InvoiceForm, error) {
	var invoice models.Invoice
	err := r.db.First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &InvoiceForm{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     float64(invoice.Amount) / 100,
		Status:     invoice.Status,
	}, nil
}

// Create inserts a new invoice. Amount arrives already converted to cents.
func (r *InvoiceRepository) Create(customerID uuid.UUID, amountCents int64, status, date string) (*models.Invoice, error) {
	invoice := models.Invoice{
		CustomerID: customerID,
		Amount:     amountCents,
		Status:     status,
		Date:       date,
	}
	if err := r.db.Create(&invoice).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// Update rewrites customer, amount and status for the given id. A missing id
// is a silent no-op; applying the same update twice yields the same row.
func (r *InvoiceRepository) Update(id, customerID uuid.UUID, amountCents int64, status string) error {
	return r.db.Model(&models.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"customer_id": customerID,
			"amount":      amountCents,
			"status":      status,
		}).Error
}

// Delete removes the invoice with the given id.
func (r *InvoiceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Invoice{}, "id = ?", id).Error
}

func pageCount(total int64) int {
	return int((total + ItemsPerPage - 1) / ItemsPerPage)
}
