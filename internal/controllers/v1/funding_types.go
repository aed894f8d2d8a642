package v1

import (
	"fmt"

	"github.com/fundledger/backend/internal/budget"
	"github.com/fundledger/backend/internal/models"
	"github.com/fundledger/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FundingEditable struct {
	DonorName       string          `json:"donorName" example:"Global Water Fund"`                                                               // Name of the donor
	DonorType       string          `json:"donorType" example:"Foundation"`                                                                      // Kind of donor
	Amount          decimal.Decimal `json:"amount" example:"10000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount received, must be positive
	DateReceived    types.Date      `json:"dateReceived" swaggertype:"string" format:"date" example:"2024-01-15"`                                // Date the funding was received, defaults to today
	AccountID       uuid.UUID       `json:"accountId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`                                            // Asset account receiving the funding
	IncomeAccountID *uuid.UUID      `json:"incomeAccountId" example:"2b1c8d3e-4f5a-4b6c-8d7e-9f0a1b2c3d4e"`                                      // Income account credited. Defaults to the configured funding income account
	TaxDeductible   bool            `json:"taxDeductible" example:"true"`                                                                        // Is the donation tax deductible for the donor?
	Notes           string          `json:"notes" example:"Restricted to water projects"`                                                        // Notes about the funding
}

// input returns the tracker input for the editable fields
func (editable FundingEditable) input() budget.FundingInput {
	return budget.FundingInput{
		DonorName:       editable.DonorName,
		DonorType:       editable.DonorType,
		Amount:          editable.Amount,
		DateReceived:    editable.DateReceived,
		AccountID:       editable.AccountID,
		IncomeAccountID: editable.IncomeAccountID,
		TaxDeductible:   editable.TaxDeductible,
		Notes:           editable.Notes,
	}
}

type FundingLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/fundings/7c6b1d9a-8b45-4c89-8f0a-0d8a2c1f5e3b"`                   // The funding itself
	Allocations string `json:"allocations" example:"https://example.com/api/v1/allocations?funding=7c6b1d9a-8b45-4c89-8f0a-0d8a2c1f5e3b"` // Allocations against the funding
	Transaction string `json:"transaction" example:"https://example.com/api/v1/transactions/d2a5d9f8-0dfc-4c3e-a0b4-9c0e3c3b8f25"`        // The ledger transaction mirroring the funding
}

// Funding is the API v1 representation of a funding.
type Funding struct {
	budget.FundingSummary
	Links FundingLinks `json:"links"`
}

func newFunding(c *gin.Context, summary budget.FundingSummary) Funding {
	url := c.GetString(string(models.DBContextURL))

	links := FundingLinks{
		Self:        fmt.Sprintf("%s/v1/fundings/%s", url, summary.ID),
		Allocations: fmt.Sprintf("%s/v1/allocations?funding=%s", url, summary.ID),
	}

	if summary.TransactionID != nil {
		links.Transaction = fmt.Sprintf("%s/v1/transactions/%s", url, summary.TransactionID)
	}

	return Funding{
		FundingSummary: summary,
		Links:          links,
	}
}

type FundingListResponse struct {
	Data  []Funding `json:"data"`                                                          // List of fundings
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type FundingCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []FundingResponse `json:"data"`                                                          // List of created fundings
}

func (f *FundingCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	f.Data = append(f.Data, FundingResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type FundingResponse struct {
	Data  *Funding `json:"data"`                                                // Data for the funding
	Error *string  `json:"error" example:"the funding amount must be positive"` // The error, if any occurred for this funding
}
