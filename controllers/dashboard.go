package controllers

import (
	"net/http"

	"acme-dashboard-backend/models"
	"acme-dashboard-backend/repository"
	"acme-dashboard-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// CardDataResponse is the dashboard overview: two raw counts and two sums
// formatted to display currency.
type CardDataResponse struct {
	NumberOfInvoices     int64  `json:"numberOfInvoices"`
	NumberOfCustomers    int64  `json:"numberOfCustomers"`
	TotalPaidInvoices    string `json:"totalPaidInvoices"`
	TotalPendingInvoices string `json:"totalPendingInvoices"`
}

type DashboardController struct {
	dashboard *repository.DashboardRepository
}

func NewDashboardController(dashboard *repository.DashboardRepository) *DashboardController {
	return &DashboardController{dashboard: dashboard}
}

// GetDashboardOverview returns the four summary card counters.
func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	data, err := dc.dashboard.CardData()
	if err != nil {
		log.Error().Err(err).Msg("fetch card data")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch card data")
		return
	}

	c.JSON(http.StatusOK, CardDataResponse{
		NumberOfInvoices:     data.NumberOfInvoices,
		NumberOfCustomers:    data.NumberOfCustomers,
		TotalPaidInvoices:    utils.FormatCurrency(data.TotalPaid),
		TotalPendingInvoices: utils.FormatCurrency(data.TotalPending),
	})
}

// GetRevenue returns the per-month revenue series.
func (dc *DashboardController) GetRevenue(c *gin.Context) {
	revenues, err := dc.dashboard.Revenue()
	if err != nil {
		log.Error().Err(err).Msg("fetch revenue")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch revenue data")
		return
	}
	if revenues == nil {
		revenues = []models.Revenue{}
	}

	c.JSON(http.StatusOK, revenues)
}
