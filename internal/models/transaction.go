package models

import (
	"strings"

	"github.com/fundledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EntryType is the side of a transaction entry.
type EntryType string

const (
	EntryTypeDebit  EntryType = "debit"
	EntryTypeCredit EntryType = "credit"
)

// Valid reports whether e is debit or credit.
func (e EntryType) Valid() bool {
	return e == EntryTypeDebit || e == EntryTypeCredit
}

// Opposite returns the other side of the entry.
func (e EntryType) Opposite() EntryType {
	if e == EntryTypeDebit {
		return EntryTypeCredit
	}
	return EntryTypeDebit
}

// Transaction is the atomic unit of posting to the ledger.
//
// Transactions are append only. They are numbered in the order they are
// posted, the number orders transactions that share a date.
type Transaction struct {
	DefaultModel
	Number        uint64             `json:"number" gorm:"uniqueIndex" example:"42"`                        // Sequence number, assigned when posting
	Date          types.Date         `json:"date" gorm:"index" example:"2024-03-01"`                        // Date of the transaction
	Description   string             `json:"description" example:"Grant received"`                          // Description of the transaction
	ReferenceType ReferenceType      `json:"-"`                                                             // Kind of the referenced resource
	ReferenceID   *uuid.UUID         `json:"-" gorm:"index"`                                                // ID of the referenced resource
	ReversalOfID  *uuid.UUID         `json:"reversalOfId" example:"d2a5d9f8-0dfc-4c3e-a0b4-9c0e3c3b8f25"`   // The transaction this transaction reverses
	Entries       []TransactionEntry `json:"entries" gorm:"constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"` // The entries of the transaction
}

// BeforeSave trims whitespace.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)

	if t.ReferenceType == "" {
		t.ReferenceType = ReferenceTypeNone
	}

	return nil
}

// BeforeUpdate rejects all updates, transactions are immutable once posted.
func (t *Transaction) BeforeUpdate(_ *gorm.DB) error {
	return ErrImmutable
}

// BeforeDelete rejects all deletions, transactions are immutable once posted.
func (t *Transaction) BeforeDelete(_ *gorm.DB) error {
	return ErrImmutable
}

// Reference returns the resource the transaction mirrors, nil if it is
// a manual journal entry.
func (t Transaction) Reference() Reference {
	if t.ReferenceID == nil {
		return nil
	}

	switch t.ReferenceType {
	case ReferenceTypeFunding:
		return FundingRef{ID: *t.ReferenceID}
	case ReferenceTypeAllocation:
		return AllocationRef{ID: *t.ReferenceID}
	case ReferenceTypeExpense:
		return ExpenseRef{ID: *t.ReferenceID}
	}

	return nil
}

// SetReference stores the reference in the transaction's columns.
func (t *Transaction) SetReference(r Reference) {
	if r == nil {
		t.ReferenceType = ReferenceTypeNone
		t.ReferenceID = nil
		return
	}

	id := r.ResourceID()
	t.ReferenceType = r.Kind()
	t.ReferenceID = &id
}

// Debits returns the sum of all debit entries.
func (t Transaction) Debits() decimal.Decimal {
	return t.sum(EntryTypeDebit)
}

// Credits returns the sum of all credit entries.
func (t Transaction) Credits() decimal.Decimal {
	return t.sum(EntryTypeCredit)
}

func (t Transaction) sum(e EntryType) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range t.Entries {
		if entry.EntryType == e {
			total = total.Add(entry.Amount)
		}
	}
	return total
}

// TransactionEntry is one side of a transaction against a single account.
type TransactionEntry struct {
	DefaultModel
	TransactionID uuid.UUID       `json:"transactionId" gorm:"index" example:"d2a5d9f8-0dfc-4c3e-a0b4-9c0e3c3b8f25"` // The transaction the entry belongs to
	Position      int             `json:"position" example:"0"`                                                      // Insertion order within the transaction
	AccountID     uuid.UUID       `json:"accountId" gorm:"index" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`     // The account the entry is posted to
	Account       Account         `json:"-" gorm:"constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`                   //
	EntryType     EntryType       `json:"type" example:"debit"`                                                      // debit or credit
	Amount        decimal.Decimal `json:"amount" gorm:"type:TEXT" example:"150.25"`                                  // Amount, always positive
	Notes         string          `json:"notes" example:"Invoice 2024-17"`                                           // Notes for this entry
}

// BeforeCreate verifies the entry type and the amount.
func (e *TransactionEntry) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	if !e.EntryType.Valid() {
		return ErrInvalidEntry
	}

	if !e.Amount.IsPositive() || !e.Amount.Equal(e.Amount.Truncate(AmountScale)) {
		return ErrInvalidEntry
	}

	e.Notes = strings.TrimSpace(e.Notes)
	return nil
}

// BeforeUpdate rejects all updates, entries are immutable once posted.
func (e *TransactionEntry) BeforeUpdate(_ *gorm.DB) error {
	return ErrImmutable
}

// BeforeDelete rejects all deletions, entries are immutable once posted.
func (e *TransactionEntry) BeforeDelete(_ *gorm.DB) error {
	return ErrImmutable
}
