package routes

import (
	"os"
	"strings"

	"acme-dashboard-backend/config"
	"acme-dashboard-backend/controllers"
	"acme-dashboard-backend/repository"
	"acme-dashboard-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	origins := allowedOrigins()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Location"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	invoiceRepo := repository.NewInvoiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)
	userRepo := repository.NewUserRepository(db)

	invoiceController := controllers.NewInvoiceController(invoiceRepo)
	customerController := controllers.NewCustomerController(customerRepo)
	dashboardController := controllers.NewDashboardController(dashboardRepo)
	authController := controllers.NewAuthController(userRepo)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", authController.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.GET("", customerController.GetCustomers)
			customers.GET("/pages", customerController.GetCustomerPages)
			customers.GET("/names", customerController.GetCustomerNames)
		}

		// Invoice routes
		invoices := api.Group("/invoices")
		{
			invoices.GET("", invoiceController.GetInvoices)
			invoices.GET("/pages", invoiceController.GetInvoicePages)
			invoices.GET("/latest", invoiceController.GetLatestInvoices)
			invoices.GET("/:id", invoiceController.GetInvoice)
			invoices.POST("", invoiceController.CreateInvoice)
			invoices.PUT("/:id", invoiceController.UpdateInvoice)
			invoices.DELETE("/:id", invoiceController.DeleteInvoice)
		}

		// Dashboard routes
		api.GET("/dashboard", dashboardController.GetDashboardOverview)
		api.GET("/revenue", dashboardController.GetRevenue)
	}

	return r
}

func allowedOrigins() []string {
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		return strings.Split(env, ",")
	}
	return []string{"http://localhost:3000"}
}
