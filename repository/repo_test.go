package repository

import (
	"fmt"
	"testing"

	"acme-dashboard-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Invoice{},
		&models.Revenue{},
	))
	return db
}

func createCustomer(t *testing.T, db *gorm.DB, name, email string) models.Customer {
	t.Helper()
	customer := models.Customer{Name: name, Email: email, ImageURL: "/customers/" + name + ".png"}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func createInvoice(t *testing.T, db *gorm.DB, customer models.Customer, amount int64, status, date string) models.Invoice {
	t.Helper()
	invoice := models.Invoice{CustomerID: customer.ID, Amount: amount, Status: status, Date: date}
	require.NoError(t, db.Create(&invoice).Error)
	return invoice
}
