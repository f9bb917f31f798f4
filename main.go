package main

import (
	"os"

	"acme-dashboard-backend/config"
	"acme-dashboard-backend/models"
	"acme-dashboard-backend/routes"
	"acme-dashboard-backend/services"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found")
	}
	config.SetupLogger()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Invoice{},
		&models.Revenue{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	if os.Getenv("SEED_DB") == "true" {
		if err := config.SeedDatabase(db); err != nil {
			log.Fatal().Err(err).Msg("failed to seed database")
		}
	}

	revenueService := services.NewRevenueService(db)
	revenueService.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(db)

	log.Info().Str("port", port).Msg("starting server")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
