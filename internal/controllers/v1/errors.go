package v1

import (
	"errors"
	"net/http"

	"github.com/fundledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrPermissionDenied) {
		return http.StatusForbidden
	}

	// Business rule rejections of the budget tracker
	if errors.Is(err, models.ErrOverAllocation) || errors.Is(err, models.ErrInsufficientBudget) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

// available returns the available amount of a budget rejection, nil for
// all other errors.
func available(err error) *decimal.Decimal {
	var budgetErr *models.BudgetError
	if errors.As(err, &budgetErr) {
		a := budgetErr.Available
		return &a
	}

	return nil
}
