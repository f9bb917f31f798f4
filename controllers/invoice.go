// controllers/invoice.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"acme-dashboard-backend/repository"
	"acme-dashboard-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// InvoiceFormInput carries the raw form fields as strings; coercion and
// validation happen in utils.ValidateInvoiceForm, the only place user-facing
// input errors are produced.
type InvoiceFormInput struct {
	CustomerID string `json:"customerId"`
	Amount     string `json:"amount"`
	Status     string `json:"status"`
}

// LatestInvoiceResponse carries display-formatted amounts.
type LatestInvoiceResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ImageURL string    `json:"image_url"`
	Email    string    `json:"email"`
	Amount   string    `json:"amount"`
}

type InvoiceController struct {
	invoices *repository.InvoiceRepository
}

func NewInvoiceController(invoices *repository.InvoiceRepository) *InvoiceController {
	return &InvoiceController{invoices: invoices}
}

// GetInvoices returns one page of the filtered invoice table.
func (ic *InvoiceController) GetInvoices(c *gin.Context) {
	query := c.Query("query")
	page := parsePage(c)

	rows, err := ic.invoices.FilteredPage(query, page)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("fetch filtered invoices")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch invoices")
		return
	}
	if rows == nil {
		rows = []repository.InvoiceTableRow{}
	}

	c.JSON(http.StatusOK, rows)
}

// GetInvoicePages returns the number of pages for the current filter.
func (ic *InvoiceController) GetInvoicePages(c *gin.Context) {
	total, err := ic.invoices.PageCount(c.Query("query"))
	if err != nil {
		log.Error().Err(err).Msg("count invoice pages")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch the number of invoice pages")
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalPages": total})
}

// GetLatestInvoices returns the five most recent invoices with the amount
// already formatted for display.
func (ic *InvoiceController) GetLatestInvoices(c *gin.Context) {
	rows, err := ic.invoices.Latest()
	if err != nil {
		log.Error().Err(err).Msg("fetch latest invoices")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch the latest invoices")
		return
	}

	latest := make([]LatestInvoiceResponse, 0, len(rows))
	for _, row := range rows {
		latest = append(latest, LatestInvoiceResponse{
			ID:       row.ID,
			Name:     row.Name,
			ImageURL: row.ImageURL,
			Email:    row.Email,
			Amount:   utils.FormatCurrency(row.Amount),
		})
	}

	c.JSON(http.StatusOK, latest)
}

// GetInvoice returns a single invoice for the edit form. An unknown id yields
// an empty body, not an error.
func (ic *InvoiceController) GetInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	invoice, err := ic.invoices.GetByID(id)
	if err != nil {
		log.Error().Err(err).Str("invoice", id.String()).Msg("fetch invoice")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch the invoice data")
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// CreateInvoice validates the form, stores the amount in cents, stamps the
// current date and inserts the row.
func (ic *InvoiceController) CreateInvoice(c *gin.Context) {
	var input InvoiceFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	values, fieldErrs := utils.ValidateInvoiceForm(input.CustomerID, input.Amount, input.Status)
	if fieldErrs != nil {
		utils.RespondWithFieldErrors(c, http.StatusUnprocessableEntity, fieldErrs,
			"Missing fields. Failed to create invoice.")
		return
	}

	date := utils.ISODate(time.Now())
	invoice, err := ic.invoices.Create(values.CustomerID, values.AmountCents, values.Status, date)
	if err != nil {
		log.Error().Err(err).Msg("create invoice")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create invoice")
		return
	}

	c.Header("Location", "/dashboard/invoices")
	c.JSON(http.StatusCreated, invoice)
}

// UpdateInvoice applies the same validation and amount conversion as create,
// then rewrites the row matching the given id. An unknown id is a no-op.
func (ic *InvoiceController) UpdateInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var input InvoiceFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	values, fieldErrs := utils.ValidateInvoiceForm(input.CustomerID, input.Amount, input.Status)
	if fieldErrs != nil {
		utils.RespondWithFieldErrors(c, http.StatusUnprocessableEntity, fieldErrs,
			"Missing fields. Failed to update invoice.")
		return
	}

	if err := ic.invoices.Update(id, values.CustomerID, values.AmountCents, values.Status); err != nil {
		log.Error().Err(err).Str("invoice", id.String()).Msg("update invoice")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice")
		return
	}

	c.Header("Location", "/dashboard/invoices")
	c.JSON(http.StatusOK, gin.H{"message": "Invoice updated successfully"})
}

// DeleteInvoice removes the invoice. The caller stays on the current view, so
// no Location header is set.
func (ic *InvoiceController) DeleteInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	if err := ic.invoices.Delete(id); err != nil {
		log.Error().Err(err).Str("invoice", id.String()).Msg("delete invoice")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete invoice")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}

func parsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
