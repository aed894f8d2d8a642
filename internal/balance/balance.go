// Package balance derives account balances from ledger entries.
//
// Nothing in here reads from or writes to the database. All functions take
// the entries in ledger order as returned by ledger.Entries.
package balance

import (
	"strings"

	"github.com/fundledger/backend/internal/ledger"
	"github.com/fundledger/backend/internal/models"
	"github.com/fundledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Signed returns the change an entry makes to the balance of an account of
// type t.
//
// Debits increase Asset and Expense accounts, credits increase Liability,
// Equity and Income accounts.
func Signed(t models.AccountType, e models.EntryType, amount decimal.Decimal) decimal.Decimal {
	if t.DebitNormal() == (e == models.EntryTypeDebit) {
		return amount
	}

	return amount.Neg()
}

// LedgerLine is one entry in the running ledger of an account.
type LedgerLine struct {
	Date           types.Date              `json:"date" example:"2024-03-01"`
	TransactionID  uuid.UUID               `json:"transactionId" example:"3d3d2a91-2b4d-4e4b-9e44-1c8a4a5a1b0f"`
	Number         uint64                  `json:"number" example:"17"`
	Description    string                  `json:"description" example:"Office rent March"`
	Reference      *models.ReferenceObject `json:"reference"`
	DebitAmount    decimal.Decimal         `json:"debitAmount" example:"0"`
	CreditAmount   decimal.Decimal         `json:"creditAmount" example:"800"`
	RunningBalance decimal.Decimal         `json:"runningBalance" example:"4200"`
	Notes          string                  `json:"notes" example:""`
}

// AccountLedger is the running ledger of a single account.
type AccountLedger struct {
	AccountID   uuid.UUID          `json:"accountId"`
	AccountCode string             `json:"accountCode" example:"1000"`
	AccountName string             `json:"accountName" example:"Cash"`
	AccountType models.AccountType `json:"accountType" example:"Asset"`
	Lines       []LedgerLine       `json:"lines"`
	Balance     decimal.Decimal    `json:"balance" example:"4200"` // Balance after the last line
}

// RunningLedger partitions the rows by account and folds each partition in
// order, accumulating the balance with the sign convention of the account.
//
// Balances start at zero, entries before the first row are not taken into
// account.
func RunningLedger(rows []ledger.Row) map[uuid.UUID]AccountLedger {
	ledgers := make(map[uuid.UUID]AccountLedger)

	for _, r := range rows {
		l, ok := ledgers[r.AccountID]
		if !ok {
			l = AccountLedger{
				AccountID:   r.AccountID,
				AccountCode: r.AccountCode,
				AccountName: r.AccountName,
				AccountType: r.AccountType,
				Lines:       []LedgerLine{},
			}
		}

		line := LedgerLine{
			Date:          r.Date,
			TransactionID: r.TransactionID,
			Number:        r.Number,
			Description:   r.Description,
			Reference:     models.NewReferenceObject(reference(r)),
			Notes:         r.Notes,
		}

		if r.EntryType == models.EntryTypeDebit {
			line.DebitAmount = r.Amount
		} else {
			line.CreditAmount = r.Amount
		}

		l.Balance = l.Balance.Add(Signed(r.AccountType, r.EntryType, r.Amount))
		line.RunningBalance = l.Balance
		l.Lines = append(l.Lines, line)

		ledgers[r.AccountID] = l
	}

	return ledgers
}

func reference(r ledger.Row) models.Reference {
	t := models.Transaction{ReferenceType: r.ReferenceType, ReferenceID: r.ReferenceID}
	return t.Reference()
}

// Line is the final balance of one account in a statement.
type Line struct {
	AccountID   uuid.UUID          `json:"accountId"`
	AccountCode string             `json:"accountCode" example:"1000"`
	AccountName string             `json:"accountName" example:"Cash"`
	AccountType models.AccountType `json:"accountType" example:"Asset"`
	ParentID    *uuid.UUID         `json:"parentId"`
	Balance     decimal.Decimal    `json:"balance" example:"4200"`
}

// balances sums the signed entries per account for all rows within
// [start, end]. A zero start or end leaves that side open.
func balances(rows []ledger.Row, start, end types.Date) map[uuid.UUID]decimal.Decimal {
	sums := make(map[uuid.UUID]decimal.Decimal)
	for _, r := range rows {
		if !r.Date.Within(start, end) {
			continue
		}

		sums[r.AccountID] = sums[r.AccountID].Add(Signed(r.AccountType, r.EntryType, r.Amount))
	}

	return sums
}

// lines returns one line per account of type t, accounts without entries
// included, ordered by code, and the exact sum of their balances.
func lines(t models.AccountType, accounts []models.Account, sums map[uuid.UUID]decimal.Decimal) ([]Line, decimal.Decimal) {
	result := []Line{}
	total := decimal.Zero

	for _, a := range accounts {
		if a.Type != t {
			continue
		}

		l := Line{
			AccountID:   a.ID,
			AccountCode: a.Code,
			AccountName: a.Name,
			AccountType: a.Type,
			ParentID:    a.ParentID,
			Balance:     sums[a.ID],
		}

		total = total.Add(l.Balance)
		result = append(result, l)
	}

	slices.SortFunc(result, func(a, b Line) int {
		return strings.Compare(a.AccountCode, b.AccountCode)
	})

	return result, total
}

// BalanceSheet lists the cumulative balances of all asset, liability and
// equity accounts up to and including a date.
type BalanceSheet struct {
	AsOfDate         types.Date      `json:"asOfDate" example:"2024-12-31"`
	Assets           []Line          `json:"assets"`
	Liabilities      []Line          `json:"liabilities"`
	Equity           []Line          `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets" example:"10000"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities" example:"0"`
	TotalEquity      decimal.Decimal `json:"totalEquity" example:"0"`
}

// NewBalanceSheet computes the balance sheet as of asOf.
//
// Rows dated after asOf are ignored. Each total is the sum of its lines.
// The accounting equation is not enforced.
func NewBalanceSheet(asOf types.Date, accounts []models.Account, rows []ledger.Row) BalanceSheet {
	sums := balances(rows, types.Date{}, asOf)

	sheet := BalanceSheet{AsOfDate: asOf}
	sheet.Assets, sheet.TotalAssets = lines(models.AccountTypeAsset, accounts, sums)
	sheet.Liabilities, sheet.TotalLiabilities = lines(models.AccountTypeLiability, accounts, sums)
	sheet.Equity, sheet.TotalEquity = lines(models.AccountTypeEquity, accounts, sums)

	return sheet
}

// IncomeStatement lists income and expenses for a period.
type IncomeStatement struct {
	StartDate     types.Date      `json:"startDate" example:"2024-01-01"`
	EndDate       types.Date      `json:"endDate" example:"2024-12-31"`
	Income        []Line          `json:"income"`
	Expenses      []Line          `json:"expenses"`
	TotalIncome   decimal.Decimal `json:"totalIncome" example:"10000"`
	TotalExpenses decimal.Decimal `json:"totalExpenses" example:"4000"`
	NetIncome     decimal.Decimal `json:"netIncome" example:"6000"`
}

// NewIncomeStatement computes the income statement for [start, end].
//
// Only rows within the window count, the statement is not cumulative.
func NewIncomeStatement(start, end types.Date, accounts []models.Account, rows []ledger.Row) IncomeStatement {
	sums := balances(rows, start, end)

	statement := IncomeStatement{StartDate: start, EndDate: end}
	statement.Income, statement.TotalIncome = lines(models.AccountTypeIncome, accounts, sums)
	statement.Expenses, statement.TotalExpenses = lines(models.AccountTypeExpense, accounts, sums)
	statement.NetIncome = statement.TotalIncome.Sub(statement.TotalExpenses)

	return statement
}
