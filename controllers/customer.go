// controllers/customer.go
package controllers

import (
	"net/http"

	"acme-dashboard-backend/repository"
	"acme-dashboard-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CustomerTableResponse carries the per-customer aggregates with the sums
// formatted to display currency.
type CustomerTableResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	TotalInvoices int64     `json:"total_invoices"`
	TotalPending  string    `json:"total_pending"`
	TotalPaid     string    `json:"total_paid"`
}

type CustomerController struct {
	customers *repository.CustomerRepository
}

func NewCustomerController(customers *repository.CustomerRepository) *CustomerController {
	return &CustomerController{customers: customers}
}

// GetCustomerNames returns every customer's id and name for selection inputs.
func (cc *CustomerController) GetCustomerNames(c *gin.Context) {
	names, err := cc.customers.ListNames()
	if err != nil {
		log.Error().Err(err).Msg("fetch customers")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch customers")
		return
	}
	if names == nil {
		names = []repository.CustomerName{}
	}

	c.JSON(http.StatusOK, names)
}

// GetCustomers returns one page of the filtered customers table with the
// pending and paid sums formatted after aggregation.
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	query := c.Query("query")
	page := parsePage(c)

	rows, err := cc.customers.FilteredPage(query, page)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("fetch filtered customers")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch filtered customers")
		return
	}

	table := make([]CustomerTableResponse, 0, len(rows))
	for _, row := range rows {
		table = append(table, CustomerTableResponse{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			ImageURL:      row.ImageURL,
			TotalInvoices: row.TotalInvoices,
			TotalPending:  utils.FormatCurrency(row.TotalPending),
			TotalPaid:     utils.FormatCurrency(row.TotalPaid),
		})
	}

	c.JSON(http.StatusOK, table)
}

// GetCustomerPages returns the number of pages for the current filter.
func (cc *CustomerController) GetCustomerPages(c *gin.Context) {
	total, err := cc.customers.PageCount(c.Query("query"))
	if err != nil {
		log.Error().Err(err).Msg("count customer pages")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch the number of customer pages")
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalPages": total})
}
