// Package reports resolves report parameters and runs the ledger, balance
// sheet and income statement queries.
//
// Reports only read. The accounts and the entries a report needs are loaded
// concurrently, the statements themselves are computed by package balance.
package reports

import (
	"context"

	"github.com/fundledger/backend/internal/balance"
	"github.com/fundledger/backend/internal/ledger"
	"github.com/fundledger/backend/internal/models"
	"github.com/fundledger/backend/internal/types"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Query are the parameters of a report.
//
// If ReportingPeriodID is set, the dates of the period take precedence over
// StartDate, EndDate and AsOfDate.
type Query struct {
	AccountID         *uuid.UUID
	ProjectID         *uuid.UUID
	SubProjectID      *uuid.UUID
	ReportingPeriodID *uuid.UUID
	StartDate         types.Date
	EndDate           types.Date
	AsOfDate          types.Date
}

// window returns the date range of the query. A period overrides the
// explicit dates. Zero dates stay zero.
func (q Query) window(db *gorm.DB) (types.Date, types.Date, error) {
	if q.ReportingPeriodID == nil {
		return q.StartDate, q.EndDate, nil
	}

	var period models.ReportingPeriod
	err := db.First(&period, *q.ReportingPeriodID).Error
	if err != nil {
		return types.Date{}, types.Date{}, err
	}

	return period.StartDate, period.EndDate, nil
}

// LedgerReport is the running ledger of every account with entries in the
// window, keyed by account ID.
type LedgerReport struct {
	StartDate types.Date                          `json:"startDate" example:"2024-01-01"`
	EndDate   types.Date                          `json:"endDate" example:"2024-12-31"`
	Accounts  map[uuid.UUID]balance.AccountLedger `json:"accounts"`
}

// Ledger returns the running ledgers for the query.
//
// Without a period or dates, the ledger spans all entries. Running balances
// start at zero at the beginning of the window.
func Ledger(ctx context.Context, db *gorm.DB, q Query) (LedgerReport, error) {
	db = db.WithContext(ctx)

	start, end, err := q.window(db)
	if err != nil {
		return LedgerReport{}, err
	}

	if !start.IsZero() && !end.IsZero() && start.After(end) {
		return LedgerReport{}, models.Validationf("the start date must not be after the end date")
	}

	if q.AccountID != nil {
		var account models.Account
		err := db.First(&account, *q.AccountID).Error
		if err != nil {
			return LedgerReport{}, err
		}
	}

	rows, err := ledger.Entries(db, ledger.Filter{
		AccountID:    q.AccountID,
		From:         start,
		Until:        end,
		ProjectID:    q.ProjectID,
		SubProjectID: q.SubProjectID,
	})
	if err != nil {
		return LedgerReport{}, err
	}

	return LedgerReport{
		StartDate: start,
		EndDate:   end,
		Accounts:  balance.RunningLedger(rows),
	}, nil
}

// BalanceSheet returns the balance sheet for the query.
//
// The sheet is computed as of the end of the reporting period if one is
// given, as of AsOfDate otherwise. Without both, it is computed as of today.
func BalanceSheet(ctx context.Context, db *gorm.DB, q Query) (balance.BalanceSheet, error) {
	db = db.WithContext(ctx)

	asOf := q.AsOfDate
	if q.ReportingPeriodID != nil {
		_, end, err := q.window(db)
		if err != nil {
			return balance.BalanceSheet{}, err
		}
		asOf = end
	}

	if asOf.IsZero() {
		asOf = types.Today()
	}

	accounts, rows, err := load(ctx, db, ledger.Filter{
		AccountTypes: []models.AccountType{models.AccountTypeAsset, models.AccountTypeLiability, models.AccountTypeEquity},
		Until:        asOf,
	})
	if err != nil {
		return balance.BalanceSheet{}, err
	}

	return balance.NewBalanceSheet(asOf, accounts, rows), nil
}

// IncomeStatement returns the income statement for the query.
//
// Without a period or dates, the statement covers the current calendar year.
// A missing start or end date defaults to the start or end of the year of
// the other date.
func IncomeStatement(ctx context.Context, db *gorm.DB, q Query) (balance.IncomeStatement, error) {
	db = db.WithContext(ctx)

	start, end, err := q.window(db)
	if err != nil {
		return balance.IncomeStatement{}, err
	}

	switch {
	case start.IsZero() && end.IsZero():
		start, end = types.Today().YearBounds()
	case start.IsZero():
		start, _ = end.YearBounds()
	case end.IsZero():
		_, end = start.YearBounds()
	}

	if start.After(end) {
		return balance.IncomeStatement{}, models.Validationf("the start date must not be after the end date")
	}

	accounts, rows, err := load(ctx, db, ledger.Filter{
		AccountTypes: []models.AccountType{models.AccountTypeIncome, models.AccountTypeExpense},
		From:         start,
		Until:        end,
	})
	if err != nil {
		return balance.IncomeStatement{}, err
	}

	return balance.NewIncomeStatement(start, end, accounts, rows), nil
}

// load reads the chart of accounts and the entries matching the filter
// concurrently.
func load(ctx context.Context, db *gorm.DB, f ledger.Filter) ([]models.Account, []ledger.Row, error) {
	g, ctx := errgroup.WithContext(ctx)

	var accounts []models.Account
	g.Go(func() error {
		return db.WithContext(ctx).Order("code ASC").Find(&accounts).Error
	})

	var rows []ledger.Row
	g.Go(func() error {
		var err error
		rows, err = ledger.Entries(db.WithContext(ctx), f)
		return err
	})

	err := g.Wait()
	if err != nil {
		return nil, nil, err
	}

	return accounts, rows, nil
}
