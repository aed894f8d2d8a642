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

type AllocationEditable struct {
	FundingID       uuid.UUID       `json:"fundingId" example:"7c6b1d9a-8b45-4c89-8f0a-0d8a2c1f5e3b"`                                           // The funding the money comes from
	ProjectID       uuid.UUID       `json:"projectId" example:"0a5fbd1a-0b25-4f0c-9a39-39b8a6a5f7e2"`                                           // The project receiving the allocation
	SubProjectID    *uuid.UUID      `json:"subProjectId" example:"5b0d6d0f-2a7e-4d8c-9a0b-6c7e2d4f1a3b"`                                        // The sub project, must belong to the project
	Amount          decimal.Decimal `json:"amount" example:"6000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount allocated, must be positive
	Date            types.Date      `json:"date" swaggertype:"string" format:"date" example:"2024-01-20"`                                       // Date of the allocation, defaults to today
	DebitAccountID  *uuid.UUID      `json:"debitAccountId" example:"4c3b2a19-0f8e-4d7c-b6a5-948372615a0b"`                                      // Equity account debited. Defaults to the configured unrestricted funds account
	CreditAccountID *uuid.UUID      `json:"creditAccountId" example:"8e7d6c5b-4a39-4281-9f0e-1d2c3b4a5968"`                                     // Equity account credited. Defaults to the configured restricted funds account
}

// input returns the tracker input for the editable fields
func (editable AllocationEditable) input(createdBy string) budget.AllocationInput {
	return budget.AllocationInput{
		FundingID:       editable.FundingID,
		ProjectID:       editable.ProjectID,
		SubProjectID:    editable.SubProjectID,
		Amount:          editable.Amount,
		Date:            editable.Date,
		DebitAccountID:  editable.DebitAccountID,
		CreditAccountID: editable.CreditAccountID,
		CreatedBy:       createdBy,
	}
}

type AllocationLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/allocations/3f2a6c1e-9d0b-4b7a-8e5c-2d1f0a9b8c7d"`             // The allocation itself
	Funding     string `json:"funding" example:"https://example.com/api/v1/fundings/7c6b1d9a-8b45-4c89-8f0a-0d8a2c1f5e3b"`             // The funding of the allocation
	Project     string `json:"project" example:"https://example.com/api/v1/projects/0a5fbd1a-0b25-4f0c-9a39-39b8a6a5f7e2"`             // The project of the allocation
	Expenses    string `json:"expenses" example:"https://example.com/api/v1/expenses?allocation=3f2a6c1e-9d0b-4b7a-8e5c-2d1f0a9b8c7d"` // Expenses charged to the allocation
	Transaction string `json:"transaction" example:"https://example.com/api/v1/transactions/d2a5d9f8-0dfc-4c3e-a0b4-9c0e3c3b8f25"`     // The ledger transaction mirroring the allocation
}

// Allocation is the API v1 representation of an allocation with its
// current budget.
type Allocation struct {
	models.Allocation
	SpentAmount     decimal.Decimal `json:"spentAmount" example:"4000"`     // Sum of all expenses charged to the allocation
	AvailableAmount decimal.Decimal `json:"availableAmount" example:"2000"` // Amount that can still be spent
	State           budget.State    `json:"state" example:"PartiallySpent"` // Open, PartiallySpent or Exhausted
	Links           AllocationLinks `json:"links"`
}

func newAllocation(c *gin.Context, model models.Allocation, spent decimal.Decimal) Allocation {
	url := c.GetString(string(models.DBContextURL))

	links := AllocationLinks{
		Self:     fmt.Sprintf("%s/v1/allocations/%s", url, model.ID),
		Funding:  fmt.Sprintf("%s/v1/fundings/%s", url, model.FundingID),
		Project:  fmt.Sprintf("%s/v1/projects/%s", url, model.ProjectID),
		Expenses: fmt.Sprintf("%s/v1/expenses?allocation=%s", url, model.ID),
	}

	if model.TransactionID != nil {
		links.Transaction = fmt.Sprintf("%s/v1/transactions/%s", url, model.TransactionID)
	}

	return Allocation{
		Allocation:      model,
		SpentAmount:     spent,
		AvailableAmount: model.Amount.Sub(spent),
		State:           budget.StateOf(model.Amount, spent),
		Links:           links,
	}
}

type AllocationListResponse struct {
	Data  []Allocation `json:"data"`                                                          // List of allocations
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AllocationCreateResponse struct {
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AllocationResponse `json:"data"`                                                          // List of created allocations
}

func (a *AllocationCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AllocationResponse{Error: &s, Available: available(err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AllocationResponse struct {
	Data      *Allocation      `json:"data"`                                                                                             // Data for the allocation
	Error     *string          `json:"error" example:"the allocation exceeds the unallocated amount of the funding. Available: 4000.00"` // The error, if any occurred for this allocation
	Available *decimal.Decimal `json:"available,omitempty" example:"4000"`                                                               // The unallocated amount of the funding if the allocation was rejected for exceeding it
}

type AllocationQueryFilter struct {
	Funding    string `form:"funding"`    // By ID of the funding
	Project    string `form:"project"`    // By ID of the project
	SubProject string `form:"subProject"` // By ID of the sub project
}

// query returns the allocations query for the filter
func (f AllocationQueryFilter) query() (models.Allocation, error) {
	var filter models.Allocation

	fundingID, err := optionalUUID(f.Funding)
	if err != nil {
		return filter, err
	}
	if fundingID != nil {
		filter.FundingID = *fundingID
	}

	projectID, err := optionalUUID(f.Project)
	if err != nil {
		return filter, err
	}
	if projectID != nil {
		filter.ProjectID = *projectID
	}

	filter.SubProjectID, err = optionalUUID(f.SubProject)
	if err != nil {
		return filter, err
	}

	return filter, nil
}
