package ledger

import (
	"github.com/fundledger/backend/internal/models"
	"github.com/fundledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Filter restricts the entries returned by Entries.
//
// Zero values do not filter. From and Until are inclusive.
type Filter struct {
	AccountID    *uuid.UUID
	AccountTypes []models.AccountType
	From         types.Date
	Until        types.Date
	ProjectID    *uuid.UUID
	SubProjectID *uuid.UUID
}

// Row is a transaction entry joined with its transaction and account.
type Row struct {
	EntryID       uuid.UUID
	TransactionID uuid.UUID
	Number        uint64
	Date          types.Date
	Description   string
	ReferenceType models.ReferenceType
	ReferenceID   *uuid.UUID
	AccountID     uuid.UUID
	AccountCode   string
	AccountName   string
	AccountType   models.AccountType
	Position      int
	EntryType     models.EntryType
	Amount        decimal.Decimal
	Notes         string
}

// Entries returns all entries matching the filter.
//
// Rows are ordered by transaction date, transaction number and the
// position of the entry within its transaction. Running balances depend
// on this order.
func Entries(db *gorm.DB, f Filter) ([]Row, error) {
	q := db.
		Table("transaction_entries").
		Select(`transaction_entries.id AS entry_id,
			transactions.id AS transaction_id,
			transactions.number AS number,
			transactions.date AS date,
			transactions.description AS description,
			transactions.reference_type AS reference_type,
			transactions.reference_id AS reference_id,
			accounts.id AS account_id,
			accounts.code AS account_code,
			accounts.name AS account_name,
			accounts.type AS account_type,
			transaction_entries.position AS position,
			transaction_entries.entry_type AS entry_type,
			transaction_entries.amount AS amount,
			transaction_entries.notes AS notes`).
		Joins("JOIN transactions ON transactions.id = transaction_entries.transaction_id").
		Joins("JOIN accounts ON accounts.id = transaction_entries.account_id").
		Order("date(transactions.date) ASC, transactions.number ASC, transaction_entries.position ASC")

	if f.AccountID != nil {
		q = q.Where("transaction_entries.account_id = ?", *f.AccountID)
	}

	if len(f.AccountTypes) > 0 {
		accountTypes := make([]string, 0, len(f.AccountTypes))
		for _, t := range f.AccountTypes {
			accountTypes = append(accountTypes, string(t))
		}
		q = q.Where("accounts.type IN ?", accountTypes)
	}

	if !f.From.IsZero() {
		q = q.Where("date(transactions.date) >= date(?)", f.From)
	}

	if !f.Until.IsZero() {
		q = q.Where("date(transactions.date) <= date(?)", f.Until)
	}

	// Project filters match the transactions mirroring allocations and
	// expenses of the project, including their reversals
	if f.ProjectID != nil {
		q = q.Where(`((transactions.reference_type = ? AND transactions.reference_id IN (SELECT id FROM allocations WHERE project_id = ?))
			OR (transactions.reference_type = ? AND transactions.reference_id IN (SELECT expenses.id FROM expenses JOIN allocations ON allocations.id = expenses.allocation_id WHERE allocations.project_id = ?)))`,
			models.ReferenceTypeAllocation, *f.ProjectID, models.ReferenceTypeExpense, *f.ProjectID)
	}

	if f.SubProjectID != nil {
		q = q.Where(`((transactions.reference_type = ? AND transactions.reference_id IN (SELECT id FROM allocations WHERE sub_project_id = ?))
			OR (transactions.reference_type = ? AND transactions.reference_id IN (SELECT id FROM expenses WHERE sub_project_id = ?)))`,
			models.ReferenceTypeAllocation, *f.SubProjectID, models.ReferenceTypeExpense, *f.SubProjectID)
	}

	var rows []Row
	err := q.Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// Totals returns the sums of all debits and all credits ever posted. They
// are equal as long as every transaction balances.
func Totals(db *gorm.DB) (debits, credits decimal.Decimal, err error) {
	var entries []models.TransactionEntry
	err = db.Select("entry_type", "amount").Find(&entries).Error
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	debits, credits = decimal.Zero, decimal.Zero
	for _, e := range entries {
		if e.EntryType == models.EntryTypeDebit {
			debits = debits.Add(e.Amount)
		} else {
			credits = credits.Add(e.Amount)
		}
	}

	return debits, credits, nil
}
