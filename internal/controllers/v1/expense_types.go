package v1

import (
	"fmt"

	"github.com/fundledger/backend/internal/budget"
	"github.com/fundledger/backend/internal/models"
	"github.com/fundledger/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ExpenseEditable struct {
	AllocationID      uuid.UUID          `json:"allocationId" example:"3f2a6c1e-9d0b-4b7a-8e5c-2d1f0a9b8c7d"`                                        // The allocation the expense is charged to
	SubProjectID      *uuid.UUID         `json:"subProjectId" example:"5b0d6d0f-2a7e-4d8c-9a0b-6c7e2d4f1a3b"`                                        // The sub project. Defaults to the sub project of the allocation
	Amount            decimal.Decimal    `json:"amount" example:"4000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount spent, must be positive
	ExpenseDate       types.Date         `json:"expenseDate" swaggertype:"string" format:"date" example:"2024-02-03"`                                // Date of the expense, defaults to today
	Category          string             `json:"category" example:"Materials"`                                                                       // Free form category
	PaidFromAccountID uuid.UUID          `json:"paidFromAccountId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`                                   // Asset or liability account the expense is paid from
	AccountID         uuid.UUID          `json:"accountId" example:"9a8b7c6d-5e4f-4a3b-2c1d-0e9f8a7b6c5d"`                                           // Expense account
	Description       string             `json:"description" example:"Pipes and fittings"`                                                           // Description of the expense
	VendorName        string             `json:"vendorName" example:"Hardware Ltd."`                                                                 // Name of the vendor
	InvoiceNumber     string             `json:"invoiceNumber" example:"INV-2024-0042"`                                                              // Invoice number of the vendor
	PaymentMode       string             `json:"paymentMode" example:"Bank transfer"`                                                                // How the expense was paid
	VoucherReference  string             `json:"voucherReference" example:"PV-118"`                                                                  // Internal payment voucher
	TaxCategory       models.TaxCategory `json:"taxCategory" example:"VAT"`                                                                          // VAT, Service or None. Defaults to None
	TaxDeductible     bool               `json:"taxDeductible" example:"false"`                                                                      // Is the expense tax deductible?
}

// input returns the tracker input for the editable fields
func (editable ExpenseEditable) input(createdBy string) budget.ExpenseInput {
	return budget.ExpenseInput{
		AllocationID:      editable.AllocationID,
		SubProjectID:      editable.SubProjectID,
		Amount:            editable.Amount,
		ExpenseDate:       editable.ExpenseDate,
		Category:          editable.Category,
		PaidFromAccountID: editable.PaidFromAccountID,
		AccountID:         editable.AccountID,
		Description:       editable.Description,
		VendorName:        editable.VendorName,
		InvoiceNumber:     editable.InvoiceNumber,
		PaymentMode:       editable.PaymentMode,
		VoucherReference:  editable.VoucherReference,
		TaxCategory:       editable.TaxCategory,
		TaxDeductible:     editable.TaxDeductible,
		CreatedBy:         createdBy,
	}
}

type ExpenseLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/expenses/6e5d4c3b-2a19-4807-b6f5-e4d3c2b1a098"`            // The expense itself
	Allocation  string `json:"allocation" example:"https://example.com/api/v1/allocations/3f2a6c1e-9d0b-4b7a-8e5c-2d1f0a9b8c7d"`   // The allocation the expense is charged to
	Transaction string `json:"transaction" example:"https://example.com/api/v1/transactions/d2a5d9f8-0dfc-4c3e-a0b4-9c0e3c3b8f25"` // The ledger transaction mirroring the expense
}

// Expense is the API v1 representation of an expense.
type Expense struct {
	models.Expense
	Links ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	links := ExpenseLinks{
		Self:       fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
		Allocation: fmt.Sprintf("%s/v1/allocations/%s", url, model.AllocationID),
	}

	if model.TransactionID != nil {
		links.Transaction = fmt.Sprintf("%s/v1/transactions/%s", url, model.TransactionID)
	}

	return Expense{
		Expense: model,
		Links:   links,
	}
}

type ExpenseListResponse struct {
	Data  []Expense `json:"data"`                                                          // List of expenses
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ExpenseResponse `json:"data"`                                                          // List of created expenses
}

func (e *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, ExpenseResponse{Error: &s, Available: available(err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Data      *Expense         `json:"data"`                                                                                           // Data for the expense
	Error     *string          `json:"error" example:"the expense exceeds the available budget of the allocation. Available: 2000.00"` // The error, if any occurred for this expense
	Available *decimal.Decimal `json:"available,omitempty" example:"2000"`                                                             // The available budget of the allocation if the expense was rejected for exceeding it
}

type ExpenseQueryFilter struct {
	Allocation string     `form:"allocation"` // By ID of the allocation
	Project    string     `form:"project"`    // By ID of the project of the allocation
	SubProject string     `form:"subProject"` // By ID of the sub project
	From       types.Date `form:"from"`       // Expenses on or after this date
	Until      types.Date `form:"until"`      // Expenses on or before this date
}

// apply adds the conditions of the filter to the query
func (f ExpenseQueryFilter) apply(db *gorm.DB) (*gorm.DB, error) {
	allocationID, err := optionalUUID(f.Allocation)
	if err != nil {
		return nil, err
	}

	projectID, err := optionalUUID(f.Project)
	if err != nil {
		return nil, err
	}

	subProjectID, err := optionalUUID(f.SubProject)
	if err != nil {
		return nil, err
	}

	query := db
	if allocationID != nil {
		query = query.Where(&models.Expense{AllocationID: *allocationID})
	}

	if projectID != nil {
		query = query.Where("allocation_id IN (?)", db.Model(&models.Allocation{}).Select("id").Where(&models.Allocation{ProjectID: *projectID}))
	}

	if subProjectID != nil {
		query = query.Where(&models.Expense{SubProjectID: subProjectID})
	}

	if !f.From.IsZero() {
		query = query.Where("date(expense_date) >= date(?)", f.From)
	}

	if !f.Until.IsZero() {
		query = query.Where("date(expense_date) <= date(?)", f.Until)
	}

	return query, nil
}
