package repository

import (
	"fmt"
	"testing"

	"acme-dashboard-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateThenReadRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	customer := createCustomer(t, db, "Acme Co", "billing@acme.test")

	created, err := repo.Create(customer.ID, 4999, models.StatusPending, "2024-05-01")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, int64(4999), created.Amount)

	form, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, form)
	assert.Equal(t, 49.99, form.Amount)
	assert.Equal(t, models.StatusPending, form.Status)
	assert.Equal(t, customer.ID, form.CustomerID)
}

func TestGetByIDMissingYieldsEmptyResult(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)

	form, err := repo.GetByID(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, form)
}

func TestUpdateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	customer := createCustomer(t, db, "Acme Co", "billing@acme.test")
	created, err := repo.Create(customer.ID, 4999, models.StatusPending, "2024-05-01")
	require.NoError(t, err)

	require.NoError(t, repo.Update(created.ID, customer.ID, 4999, models.StatusPaid))
	require.NoError(t, repo.Update(created.ID, customer.ID, 4999, models.StatusPaid))

	form, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, form)
	assert.Equal(t, models.StatusPaid, form.Status)
	assert.Equal(t, 49.99, form.Amount)
}

func TestUpdateMissingIDIsNoOp(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	customer := createCustomer(t, db, "Acme Co", "billing@acme.test")

	require.NoError(t, repo.Update(uuid.New(), customer.ID, 100, models.StatusPaid))

	var count int64
	require.NoError(t, db.Model(&models.Invoice{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteThenFetchReturnsEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	customer := createCustomer(t, db, "Acme Co", "billing@acme.test")
	created, err := repo.Create(customer.ID, 4999, models.StatusPending, "2024-05-01")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(created.ID))

	form, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, form)
}

func TestFilteredPagePagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	customer := createCustomer(t, db, "Acme Co", "billing@acme.test")

	for i := 0; i < 8; i++ {
		createInvoice(t, db, customer, int64(100*(i+1)), models.StatusPending,
			fmt.Sprintf("2024-05-%02d", i+1))
	}

	page1, err := repo.FilteredPage("", 1)
	require.NoError(t, err)
	require.Len(t, page1, ItemsPerPage)
	// newest first
	assert.Equal(t, "2024-05-08", page1[0].Date)
	assert.Equal(t, "2024-05-03", page1[5].Date)

	page2, err := repo.FilteredPage("", 2)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	assert.Equal(t, "2024-05-02", page2[0].Date)
	assert.Equal(t, "2024-05-01", page2[1].Date)

	pages, err := repo.PageCount("")
	require.NoError(t, err)
	assert.Equal(t, 2, pages)
}

func TestFilteredPageMatchesCaseInsensitively(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	acme := createCustomer(t, db, "Acme Co", "billing@acme.test")
	other := createCustomer(t, db, "Globex", "books@globex.test")
	createInvoice(t, db, acme, 1500, models.StatusPending, "2024-05-01")
	createInvoice(t, db, other, 2500, models.StatusPaid, "2024-05-02")

	rows, err := repo.FilteredPage("acme", 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Acme Co", rows[0].Name)
	assert.Equal(t, int64(1500), rows[0].Amount)
}

func TestFilteredPageMatchesStatusAndAmountText(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	customer := createCustomer(t, db, "Acme Co", "billing@acme.test")
	createInvoice(t, db, customer, 1500, models.StatusPending, "2024-05-01")
	createInvoice(t, db, customer, 2500, models.StatusPaid, "2024-05-02")

	paid, err := repo.FilteredPage("paid", 1)
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.Equal(t, models.StatusPaid, paid[0].Status)

	byAmount, err := repo.FilteredPage("2500", 1)
	require.NoError(t, err)
	require.Len(t, byAmount, 1)
	assert.Equal(t, int64(2500), byAmount[0].Amount)

	byDate, err := repo.FilteredPage("2024-05-01", 1)
	require.NoError(t, err)
	require.Len(t, byDate, 1)
	assert.Equal(t, int64(1500), byDate[0].Amount)
}

func TestLatestReturnsFiveNewest(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	customer := createCustomer(t, db, "Acme Co", "billing@acme.test")

	for i := 0; i < 7; i++ {
		createInvoice(t, db, customer, int64(100*(i+1)), models.StatusPaid,
			fmt.Sprintf("2024-05-%02d", i+1))
	}

	rows, err := repo.Latest()
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, int64(700), rows[0].Amount)
	assert.Equal(t, int64(300), rows[4].Amount)
	assert.Equal(t, "Acme Co", rows[0].Name)
	assert.Equal(t, "billing@acme.test", rows[0].Email)
}
