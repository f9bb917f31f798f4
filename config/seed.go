package config

import (
	"acme-dashboard-backend/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SeedDatabase loads placeholder customers, invoices, revenue months and a
// demo user so a fresh environment has something to render. It is a no-op
// when customers already exist.
func SeedDatabase(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Customer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info().Msg("database already seeded, skipping")
		return nil
	}

	customers := []models.Customer{
		{Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
		{Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
		{Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
		{Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
		{Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
		{Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&customers).Error; err != nil {
			return err
		}

		invoices := []models.Invoice{
			{CustomerID: customers[0].ID, Amount: 15795, Status: models.StatusPending, Date: "2022-12-06"},
			{CustomerID: customers[1].ID, Amount: 20348, Status: models.StatusPending, Date: "2022-11-14"},
			{CustomerID: customers[4].ID, Amount: 3040, Status: models.StatusPaid, Date: "2022-10-29"},
			{CustomerID: customers[3].ID, Amount: 44800, Status: models.StatusPaid, Date: "2023-09-10"},
			{CustomerID: customers[5].ID, Amount: 34577, Status: models.StatusPending, Date: "2023-08-05"},
			{CustomerID: customers[2].ID, Amount: 54246, Status: models.StatusPending, Date: "2023-07-16"},
			{CustomerID: customers[0].ID, Amount: 666, Status: models.StatusPending, Date: "2023-06-27"},
			{CustomerID: customers[3].ID, Amount: 32545, Status: models.StatusPaid, Date: "2023-06-09"},
			{CustomerID: customers[4].ID, Amount: 1250, Status: models.StatusPaid, Date: "2023-06-17"},
			{CustomerID: customers[5].ID, Amount: 8546, Status: models.StatusPaid, Date: "2023-06-07"},
			{CustomerID: customers[1].ID, Amount: 500, Status: models.StatusPaid, Date: "2023-08-19"},
			{CustomerID: customers[5].ID, Amount: 8945, Status: models.StatusPaid, Date: "2023-06-03"},
			{CustomerID: customers[2].ID, Amount: 1000, Status: models.StatusPaid, Date: "2022-06-05"},
		}
		if err := tx.Create(&invoices).Error; err != nil {
			return err
		}

		revenue := []models.Revenue{
			{Month: "Jan", Revenue: 2000}, {Month: "Feb", Revenue: 1800},
			{Month: "Mar", Revenue: 2200}, {Month: "Apr", Revenue: 2500},
			{Month: "May", Revenue: 2300}, {Month: "Jun", Revenue: 3200},
			{Month: "Jul", Revenue: 3500}, {Month: "Aug", Revenue: 3700},
			{Month: "Sep", Revenue: 2500}, {Month: "Oct", Revenue: 2800},
			{Month: "Nov", Revenue: 3000}, {Month: "Dec", Revenue: 4800},
		}
		if err := tx.Create(&revenue).Error; err != nil {
			return err
		}

		user := models.User{
			Name:     "User",
			Email:    "user@nextmail.com",
			Password: "123456", // hashed in BeforeCreate
		}
		return tx.Create(&user).Error
	})
}
