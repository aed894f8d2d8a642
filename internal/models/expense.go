package models

import (
	"strings"

	"github.com/fundledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TaxCategory classifies the tax on an expense.
type TaxCategory string

const (
	TaxCategoryNone    TaxCategory = "None"
	TaxCategoryVAT     TaxCategory = "VAT"
	TaxCategoryService TaxCategory = "Service"
)

// Valid reports whether c is a known tax category.
func (c TaxCategory) Valid() bool {
	return c == TaxCategoryNone || c == TaxCategoryVAT || c == TaxCategoryService
}

// Expense is money spent against an allocation.
//
// Expenses are immutable, corrections are made by reversing the mirrored
// ledger transaction.
type Expense struct {
	DefaultModel
	AllocationID      uuid.UUID       `json:"allocationId" gorm:"index" example:"3f2a6c1e-9d0b-4b7a-8e5c-2d1f0a9b8c7d"` // The allocation the expense is charged to
	Allocation        Allocation      `json:"-"`                                                                        //
	SubProjectID      *uuid.UUID      `json:"subProjectId" example:"5b0d6d0f-2a7e-4d8c-9a0b-6c7e2d4f1a3b"`              // The sub project, if any
	SubProject        *SubProject     `json:"-"`                                                                        //
	Amount            decimal.Decimal `json:"amount" gorm:"type:TEXT" example:"4000"`                                   // Amount spent
	ExpenseDate       types.Date      `json:"expenseDate" example:"2024-02-03"`                                         // Date of the expense
	Category          string          `json:"category" example:"Materials"`                                             // Free form category
	PaidFromAccountID uuid.UUID       `json:"paidFromAccountId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`         // Asset or liability account the expense is paid from
	PaidFromAccount   Account         `json:"-"`                                                                        //
	AccountID         uuid.UUID       `json:"accountId" example:"9a8b7c6d-5e4f-4a3b-2c1d-0e9f8a7b6c5d"`                 // Expense account
	Account           Account         `json:"-"`                                                                        //
	Description       string          `json:"description" example:"Pipes and fittings"`                                 // Description of the expense
	VendorName        string          `json:"vendorName" example:"Hardware Ltd."`                                       // Name of the vendor
	InvoiceNumber     string          `json:"invoiceNumber" example:"INV-2024-0042"`                                    // Invoice number of the vendor
	PaymentMode       string          `json:"paymentMode" example:"Bank transfer"`                                      // How the expense was paid
	VoucherReference  string          `json:"voucherReference" example:"PV-118"`                                        // Internal payment voucher
	TaxCategory       TaxCategory     `json:"taxCategory" example:"VAT"`                                                // Tax category
	TaxDeductible     bool            `json:"taxDeductible" example:"false"`                                            // Is the expense tax deductible?
	CreatedBy         string          `json:"createdBy" example:"jane@example.org"`                                     // Subject of the user who recorded the expense
	TransactionID     *uuid.UUID      `json:"transactionId" example:"d2a5d9f8-0dfc-4c3e-a0b4-9c0e3c3b8f25"`             // Ledger transaction mirroring the expense
	Transaction       *Transaction    `json:"-"`                                                                        //
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Category = strings.TrimSpace(e.Category)
	e.Description = strings.TrimSpace(e.Description)
	e.VendorName = strings.TrimSpace(e.VendorName)
	e.InvoiceNumber = strings.TrimSpace(e.InvoiceNumber)
	e.PaymentMode = strings.TrimSpace(e.PaymentMode)
	e.VoucherReference = strings.TrimSpace(e.VoucherReference)

	if e.TaxCategory == "" {
		e.TaxCategory = TaxCategoryNone
	}

	if !e.TaxCategory.Valid() {
		return Validationf("the tax category must be one of VAT, Service, None")
	}

	return nil
}

// BeforeUpdate rejects updates.
func (e *Expense) BeforeUpdate(_ *gorm.DB) error {
	return ErrImmutable
}

// BeforeDelete rejects deletions.
func (e *Expense) BeforeDelete(_ *gorm.DB) error {
	return ErrImmutable
}
