package models

import (
	"strings"

	"github.com/fundledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Funding is a donor contribution received into an asset account.
type Funding struct {
	DefaultModel
	DonorName     string          `json:"donorName" example:"Global Water Fund"`                        // Name of the donor
	DonorType     string          `json:"donorType" example:"Foundation"`                               // Kind of donor, e.g. Individual, Foundation, Government
	Amount        decimal.Decimal `json:"amount" gorm:"type:TEXT" example:"10000"`                      // Amount received
	DateReceived  types.Date      `json:"dateReceived" example:"2024-01-15"`                            // Date the funding was received
	AccountID     uuid.UUID       `json:"accountId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`     // Asset account receiving the funding
	Account       Account         `json:"-"`                                                            //
	TaxDeductible bool            `json:"taxDeductible" example:"true"`                                 // Is the donation tax deductible for the donor?
	Notes         string          `json:"notes" example:"Restricted to water projects"`                 // Notes about the funding
	TransactionID *uuid.UUID      `json:"transactionId" example:"d2a5d9f8-0dfc-4c3e-a0b4-9c0e3c3b8f25"` // Ledger transaction mirroring the receipt
	Transaction   *Transaction    `json:"-"`                                                            //
}

func (f *Funding) BeforeSave(_ *gorm.DB) error {
	f.DonorName = strings.TrimSpace(f.DonorName)
	f.DonorType = strings.TrimSpace(f.DonorType)
	f.Notes = strings.TrimSpace(f.Notes)

	return nil
}

// BeforeDelete rejects deletions, the funding is mirrored in the ledger.
func (f *Funding) BeforeDelete(_ *gorm.DB) error {
	return ErrImmutable
}

// Allocated returns the sum of all allocations against the funding.
// Reversed allocations do not count.
func (f Funding) Allocated(db *gorm.DB) (decimal.Decimal, error) {
	var allocations []Allocation
	err := db.Scopes(NotReversed("allocations")).Where(&Allocation{FundingID: f.ID}).Find(&allocations).Error
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, a := range allocations {
		total = total.Add(a.Amount)
	}

	return total, nil
}

// Unallocated returns the amount that can still be allocated. Nothing is
// left once the funding is reversed.
func (f Funding) Unallocated(db *gorm.DB) (decimal.Decimal, error) {
	reversed, err := Reversed(db, f.TransactionID)
	if err != nil || reversed {
		return decimal.Zero, err
	}

	allocated, err := f.Allocated(db)
	if err != nil {
		return decimal.Zero, err
	}

	return f.Amount.Sub(allocated), nil
}
