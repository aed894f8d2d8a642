// Package ledger posts balanced transactions and reads ledger entries in
// their deterministic order.
//
// All writes to transactions and transaction entries go through Post or
// PostTx. A transaction is persisted with all of its entries or not at all.
package ledger

import (
	"fmt"

	"github.com/fundledger/backend/internal/models"
	"github.com/fundledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Line is one entry of a posting.
type Line struct {
	AccountID uuid.UUID
	Type      models.EntryType
	Amount    decimal.Decimal
	Notes     string
}

// Posting is a transaction to be posted to the ledger.
type Posting struct {
	Date        types.Date
	Description string
	Lines       []Line
	Reference   models.Reference
	ReversalOf  *uuid.UUID
}

// Validate verifies the posting without touching storage.
//
// Debits and credits must balance exactly.
func (p Posting) Validate() error {
	if p.Date.IsZero() {
		return models.Validationf("the transaction date must be set")
	}

	if len(p.Lines) < 2 {
		return fmt.Errorf("%w: a transaction needs at least two entries", models.ErrInvalidEntry)
	}

	debits, credits := decimal.Zero, decimal.Zero
	for i, l := range p.Lines {
		if l.AccountID == uuid.Nil {
			return fmt.Errorf("%w: entry %d has no account", models.ErrInvalidEntry, i+1)
		}

		if !l.Amount.IsPositive() {
			return fmt.Errorf("%w: the amount of entry %d must be greater than zero", models.ErrInvalidEntry, i+1)
		}

		if !l.Amount.Equal(l.Amount.Truncate(models.AmountScale)) {
			return fmt.Errorf("%w: the amount of entry %d has more than %d decimal places", models.ErrInvalidEntry, i+1, models.AmountScale)
		}

		switch l.Type {
		case models.EntryTypeDebit:
			debits = debits.Add(l.Amount)
		case models.EntryTypeCredit:
			credits = credits.Add(l.Amount)
		default:
			return fmt.Errorf("%w: the type of entry %d must be debit or credit", models.ErrInvalidEntry, i+1)
		}
	}

	if !debits.Equal(credits) {
		return fmt.Errorf("%w: debits are %s, credits are %s", models.ErrUnbalancedTransaction, debits, credits)
	}

	return nil
}

// Post validates and posts the transaction in its own database transaction.
func Post(db *gorm.DB, p Posting) (models.Transaction, error) {
	if err := p.Validate(); err != nil {
		return models.Transaction{}, err
	}

	var transaction models.Transaction
	err := models.RunInTransaction(db, func(tx *gorm.DB) error {
		var err error
		transaction, err = PostTx(tx, p)
		return err
	})
	if err != nil {
		return models.Transaction{}, err
	}

	return transaction, nil
}

// PostTx validates and posts the transaction using tx.
//
// The caller owns tx and must roll it back if an error is returned.
func PostTx(tx *gorm.DB, p Posting) (models.Transaction, error) {
	if err := p.Validate(); err != nil {
		return models.Transaction{}, err
	}

	ids := make([]string, 0, len(p.Lines))
	seen := make(map[uuid.UUID]bool)
	for _, l := range p.Lines {
		if !seen[l.AccountID] {
			seen[l.AccountID] = true
			ids = append(ids, l.AccountID.String())
		}
	}

	var found int64
	err := tx.Model(&models.Account{}).Where("id IN ?", ids).Count(&found).Error
	if err != nil {
		return models.Transaction{}, err
	}

	if int(found) != len(ids) {
		return models.Transaction{}, fmt.Errorf("%w account for an ID used in the entries", models.ErrResourceNotFound)
	}

	var last uint64
	err = tx.Model(&models.Transaction{}).Select("COALESCE(MAX(number), 0)").Scan(&last).Error
	if err != nil {
		return models.Transaction{}, err
	}

	transaction := models.Transaction{
		Number:       last + 1,
		Date:         p.Date,
		Description:  p.Description,
		ReversalOfID: p.ReversalOf,
	}
	transaction.SetReference(p.Reference)

	for i, l := range p.Lines {
		transaction.Entries = append(transaction.Entries, models.TransactionEntry{
			Position:  i,
			AccountID: l.AccountID,
			EntryType: l.Type,
			Amount:    l.Amount,
			Notes:     l.Notes,
		})
	}

	err = tx.Create(&transaction).Error
	if err != nil {
		return models.Transaction{}, err
	}

	return transaction, nil
}

// Get returns the transaction with its entries in insertion order.
func Get(db *gorm.DB, id uuid.UUID) (models.Transaction, error) {
	var transaction models.Transaction
	err := db.
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&transaction, id).Error

	return transaction, err
}

// TransactionFilter restricts the transactions returned by List.
type TransactionFilter struct {
	From          types.Date
	Until         types.Date
	AccountID     *uuid.UUID
	ReferenceType models.ReferenceType
	ReferenceID   *uuid.UUID
}

// List returns the transactions matching the filter in ledger order.
func List(db *gorm.DB, f TransactionFilter) ([]models.Transaction, error) {
	q := db.
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("date(transactions.date) ASC, transactions.number ASC")

	if !f.From.IsZero() {
		q = q.Where("date(transactions.date) >= date(?)", f.From)
	}

	if !f.Until.IsZero() {
		q = q.Where("date(transactions.date) <= date(?)", f.Until)
	}

	if f.AccountID != nil {
		q = q.Where("transactions.id IN (?)", db.Model(&models.TransactionEntry{}).Select("transaction_id").Where("account_id = ?", *f.AccountID))
	}

	if f.ReferenceType != "" {
		q = q.Where("transactions.reference_type = ?", f.ReferenceType)
	}

	if f.ReferenceID != nil {
		q = q.Where("transactions.reference_id = ?", *f.ReferenceID)
	}

	var transactions []models.Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// Reverse posts a new transaction that reverses all entries of the
// transaction with the given id.
//
// The reversal keeps the reference of the original. A transaction can only
// be reversed once and reversals are final. If date is zero, the reversal
// is dated today.
//
// Reversing the posting of an expense releases its amount to the
// allocation, reversing an allocation releases it to the funding. A funding
// or an allocation can only be reversed once nothing depends on it.
func Reverse(db *gorm.DB, id uuid.UUID, date types.Date, description string) (models.Transaction, error) {
	var reversal models.Transaction
	err := models.RunInTransaction(db, func(tx *gorm.DB) error {
		original, err := Get(tx, id)
		if err != nil {
			return err
		}

		reversed, err := models.Reversed(tx, &original.ID)
		if err != nil {
			return err
		}

		if reversed {
			return models.Validationf("transaction %d has already been reversed", original.Number)
		}

		if original.ReversalOfID != nil {
			return models.Validationf("transaction %d is a reversal and cannot be reversed", original.Number)
		}

		err = checkDependents(tx, original)
		if err != nil {
			return err
		}

		if date.IsZero() {
			date = types.Today()
		}

		if description == "" {
			description = fmt.Sprintf("Reversal of transaction %d", original.Number)
			if original.Description != "" {
				description = fmt.Sprintf("%s: %s", description, original.Description)
			}
		}

		posting := Posting{
			Date:        date,
			Description: description,
			Reference:   original.Reference(),
			ReversalOf:  &original.ID,
		}

		for _, e := range original.Entries {
			posting.Lines = append(posting.Lines, Line{
				AccountID: e.AccountID,
				Type:      e.EntryType.Opposite(),
				Amount:    e.Amount,
				Notes:     e.Notes,
			})
		}

		reversal, err = PostTx(tx, posting)
		return err
	})
	if err != nil {
		return models.Transaction{}, err
	}

	return reversal, nil
}

// checkDependents rejects reversing the posting of a funding with live
// allocations or of an allocation with live expenses.
func checkDependents(tx *gorm.DB, original models.Transaction) error {
	var (
		count int64
		err   error
	)

	switch ref := original.Reference().(type) {
	case models.FundingRef:
		err = tx.Model(&models.Allocation{}).Scopes(models.NotReversed("allocations")).Where(&models.Allocation{FundingID: ref.ID}).Count(&count).Error
		if err == nil && count > 0 {
			return models.Validationf("the funding has %d allocations, reverse them first", count)
		}
	case models.AllocationRef:
		err = tx.Model(&models.Expense{}).Scopes(models.NotReversed("expenses")).Where(&models.Expense{AllocationID: ref.ID}).Count(&count).Error
		if err == nil && count > 0 {
			return models.Validationf("the allocation has %d expenses, reverse them first", count)
		}
	}

	return err
}
