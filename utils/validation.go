// utils/validation.go
package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// FieldErrors maps a form field to its human-readable messages. Validation
// failures are returned as data, never as Go errors.
type FieldErrors map[string][]string

// InvoiceFormValues is the typed, normalized result of a valid invoice form.
type InvoiceFormValues struct {
	CustomerID  uuid.UUID
	AmountCents int64
	Status      string
}

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail checks a basic address shape; full verification is left to
// the identity flow.
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// ValidateInvoiceForm coerces and validates the raw invoice form fields.
// On failure the returned map carries every offending field.
func ValidateInvoiceForm(customerID, amount, status string) (InvoiceFormValues, FieldErrors) {
	errs := FieldErrors{}
	var values InvoiceFormValues

	id, err := uuid.Parse(strings.TrimSpace(customerID))
	if strings.TrimSpace(customerID) == "" || err != nil {
		errs["customerId"] = append(errs["customerId"], "Please select a customer.")
	} else {
		values.CustomerID = id
	}

	parsed, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil || parsed <= 0 {
		errs["amount"] = append(errs["amount"], "Please enter an amount greater than $0.")
	} else {
		// store the monetary amount in cents (avoid floats)
		values.AmountCents = int64(math.Round(parsed * 100))
	}

	switch status {
	case "pending", "paid":
		values.Status = status
	default:
		errs["status"] = append(errs["status"], "Please select an invoice status.")
	}

	if len(errs) > 0 {
		return InvoiceFormValues{}, errs
	}
	return values, nil
}

// ValidateLoginForm validates the login form fields.
func ValidateLoginForm(email, password string) FieldErrors {
	errs := FieldErrors{}

	email = strings.TrimSpace(email)
	if email == "" {
		errs["email"] = append(errs["email"], "Email is required.")
	} else if !ValidateEmail(email) {
		errs["email"] = append(errs["email"], "Please enter a valid email.")
	}

	if password == "" {
		errs["password"] = append(errs["password"], "Password is required.")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
