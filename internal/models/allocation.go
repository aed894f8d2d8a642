package models

import (
	"github.com/fundledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Allocation assigns a slice of a funding to a project.
type Allocation struct {
	DefaultModel
	FundingID     uuid.UUID       `json:"fundingId" gorm:"index" example:"7c6b1d9a-8b45-4c89-8f0a-0d8a2c1f5e3b"` // The funding the money comes from
	Funding       Funding         `json:"-"`                                                                     //
	ProjectID     uuid.UUID       `json:"projectId" gorm:"index" example:"0a5fbd1a-0b25-4f0c-9a39-39b8a6a5f7e2"` // The project receiving the allocation
	Project       Project         `json:"-"`                                                                     //
	SubProjectID  *uuid.UUID      `json:"subProjectId" example:"5b0d6d0f-2a7e-4d8c-9a0b-6c7e2d4f1a3b"`           // The sub project, if any
	SubProject    *SubProject     `json:"-"`                                                                     //
	Amount        decimal.Decimal `json:"amount" gorm:"type:TEXT" example:"6000"`                                // Amount allocated
	Date          types.Date      `json:"date" example:"2024-01-20"`                                             // Date of the allocation
	CreatedBy     string          `json:"createdBy" example:"jane@example.org"`                                  // Subject of the user who created the allocation
	TransactionID *uuid.UUID      `json:"transactionId" example:"d2a5d9f8-0dfc-4c3e-a0b4-9c0e3c3b8f25"`          // Ledger transaction mirroring the allocation
	Transaction   *Transaction    `json:"-"`                                                                     //
}

// BeforeUpdate rejects updates, allocations cap spending and are mirrored in the ledger.
func (a *Allocation) BeforeUpdate(_ *gorm.DB) error {
	return ErrImmutable
}

// BeforeDelete rejects deletions.
func (a *Allocation) BeforeDelete(_ *gorm.DB) error {
	return ErrImmutable
}

// Spent returns the sum of all expenses against the allocation. Reversed
// expenses do not count.
func (a Allocation) Spent(db *gorm.DB) (decimal.Decimal, error) {
	var expenses []Expense
	err := db.Scopes(NotReversed("expenses")).Where(&Expense{AllocationID: a.ID}).Find(&expenses).Error
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	return total, nil
}

// Available returns the amount that can still be spent. Nothing is
// available once the allocation is reversed.
func (a Allocation) Available(db *gorm.DB) (decimal.Decimal, error) {
	reversed, err := Reversed(db, a.TransactionID)
	if err != nil || reversed {
		return decimal.Zero, err
	}

	spent, err := a.Spent(db)
	if err != nil {
		return decimal.Zero, err
	}

	return a.Amount.Sub(spent), nil
}
