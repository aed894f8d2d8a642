// Package budget records fundings, allocations and expenses and mirrors each
// of them into the ledger.
//
// A write either commits the domain row together with its balanced ledger
// transaction or changes nothing. Budget checks and the writes they guard
// are serialized per funding (allocations) and per allocation (expenses).
package budget

import (
	"context"
	"fmt"

	"github.com/fundledger/backend/internal/events"
	"github.com/fundledger/backend/internal/ledger"
	"github.com/fundledger/backend/internal/models"
	"github.com/fundledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Defaults are the codes of the accounts used for mirrored postings when a
// request does not name the accounts itself.
type Defaults struct {
	FundingIncomeAccount    string
	AllocationDebitAccount  string
	AllocationCreditAccount string
}

// Tracker records budget writes.
type Tracker struct {
	publisher events.Publisher
	defaults  Defaults

	fundingLocks    *keyedMutex
	allocationLocks *keyedMutex
}

// NewTracker returns a Tracker that publishes to publisher after each
// committed write.
func NewTracker(publisher events.Publisher, defaults Defaults) *Tracker {
	if publisher == nil {
		publisher = events.Noop{}
	}

	return &Tracker{
		publisher:       publisher,
		defaults:        defaults,
		fundingLocks:    newKeyedMutex(),
		allocationLocks: newKeyedMutex(),
	}
}

// FundingInput is a donor receipt to record.
type FundingInput struct {
	DonorName       string
	DonorType       string
	Amount          decimal.Decimal
	DateReceived    types.Date // Defaults to today
	AccountID       uuid.UUID  // Asset account receiving the money
	IncomeAccountID *uuid.UUID // Income account credited, defaults to FundingIncomeAccount
	TaxDeductible   bool
	Notes           string
}

// RecordFunding records a donor receipt.
//
// The receiving asset account is debited and the income account credited.
func (t *Tracker) RecordFunding(ctx context.Context, db *gorm.DB, in FundingInput) (models.Funding, error) {
	err := models.ValidateAmount("funding amount", in.Amount)
	if err != nil {
		return models.Funding{}, err
	}

	if in.DateReceived.IsZero() {
		in.DateReceived = types.Today()
	}

	funding := models.Funding{
		DefaultModel:  models.DefaultModel{ID: uuid.New()},
		DonorName:     in.DonorName,
		DonorType:     in.DonorType,
		Amount:        in.Amount,
		DateReceived:  in.DateReceived,
		AccountID:     in.AccountID,
		TaxDeductible: in.TaxDeductible,
		Notes:         in.Notes,
	}

	var transaction models.Transaction
	err = models.RunInTransaction(db, func(tx *gorm.DB) error {
		asset, err := account(tx, in.AccountID, "funding account", models.AccountTypeAsset)
		if err != nil {
			return err
		}

		income, err := t.resolve(tx, in.IncomeAccountID, t.defaults.FundingIncomeAccount, "income account", models.AccountTypeIncome)
		if err != nil {
			return err
		}

		transaction, err = ledger.PostTx(tx, ledger.Posting{
			Date:        in.DateReceived,
			Description: fmt.Sprintf("Funding from %s", in.DonorName),
			Reference:   models.FundingRef{ID: funding.ID},
			Lines: []ledger.Line{
				{AccountID: asset.ID, Type: models.EntryTypeDebit, Amount: in.Amount},
				{AccountID: income.ID, Type: models.EntryTypeCredit, Amount: in.Amount},
			},
		})
		if err != nil {
			return err
		}

		funding.TransactionID = &transaction.ID
		return tx.Omit(clause.Associations).Create(&funding).Error
	})
	if err != nil {
		return models.Funding{}, err
	}

	recordCount.WithLabelValues("funding").Inc()
	t.publish(ctx, events.TypeFundingRecorded, funding, transaction)

	return funding, nil
}

// AllocationInput is an allocation of funding to a project.
type AllocationInput struct {
	FundingID       uuid.UUID
	ProjectID       uuid.UUID
	SubProjectID    *uuid.UUID
	Amount          decimal.Decimal
	Date            types.Date // Defaults to today
	DebitAccountID  *uuid.UUID // Defaults to AllocationDebitAccount
	CreditAccountID *uuid.UUID // Defaults to AllocationCreditAccount
	CreatedBy       string
}

// AllocateToProject allocates part of a funding to a project.
//
// The sum of all allocations of a funding never exceeds its amount, the
// allocation is rejected with an ErrOverAllocation BudgetError otherwise.
func (t *Tracker) AllocateToProject(ctx context.Context, db *gorm.DB, in AllocationInput) (models.Allocation, error) {
	err := models.ValidateAmount("allocation amount", in.Amount)
	if err != nil {
		return models.Allocation{}, err
	}

	if in.Date.IsZero() {
		in.Date = types.Today()
	}

	allocation := models.Allocation{
		DefaultModel: models.DefaultModel{ID: uuid.New()},
		FundingID:    in.FundingID,
		ProjectID:    in.ProjectID,
		SubProjectID: in.SubProjectID,
		Amount:       in.Amount,
		Date:         in.Date,
		CreatedBy:    in.CreatedBy,
	}

	unlock := t.fundingLocks.Lock(in.FundingID)
	defer unlock()

	var transaction models.Transaction
	err = models.RunInTransaction(db, func(tx *gorm.DB) error {
		var funding models.Funding
		err := tx.First(&funding, in.FundingID).Error
		if err != nil {
			return err
		}

		project, err := projectOf(tx, in.ProjectID, in.SubProjectID)
		if err != nil {
			return err
		}

		available, err := funding.Unallocated(tx)
		if err != nil {
			return err
		}

		if in.Amount.GreaterThan(available) {
			rejectionCount.WithLabelValues("over_allocation").Inc()
			return &models.BudgetError{Err: models.ErrOverAllocation, Available: available}
		}

		debit, err := t.resolve(tx, in.DebitAccountID, t.defaults.AllocationDebitAccount, "allocation debit account", "")
		if err != nil {
			return err
		}

		credit, err := t.resolve(tx, in.CreditAccountID, t.defaults.AllocationCreditAccount, "allocation credit account", "")
		if err != nil {
			return err
		}

		if debit.ID == credit.ID {
			return models.Validationf("the allocation debit and credit accounts must differ")
		}

		transaction, err = ledger.PostTx(tx, ledger.Posting{
			Date:        in.Date,
			Description: fmt.Sprintf("Allocation of funding from %s to %s", funding.DonorName, project.Name),
			Reference:   models.AllocationRef{ID: allocation.ID},
			Lines: []ledger.Line{
				{AccountID: debit.ID, Type: models.EntryTypeDebit, Amount: in.Amount},
				{AccountID: credit.ID, Type: models.EntryTypeCredit, Amount: in.Amount},
			},
		})
		if err != nil {
			return err
		}

		allocation.TransactionID = &transaction.ID
		return tx.Omit(clause.Associations).Create(&allocation).Error
	})
	if err != nil {
		return models.Allocation{}, err
	}

	recordCount.WithLabelValues("allocation").Inc()
	t.publish(ctx, events.TypeAllocationCreated, allocation, transaction)

	return allocation, nil
}

// ExpenseInput is an expense to record against an allocation.
type ExpenseInput struct {
	AllocationID      uuid.UUID
	SubProjectID      *uuid.UUID // Defaults to the sub project of the allocation
	Amount            decimal.Decimal
	ExpenseDate       types.Date // Defaults to today
	Category          string
	PaidFromAccountID uuid.UUID // Asset or liability account
	AccountID         uuid.UUID // Expense account
	Description       string
	VendorName        string
	InvoiceNumber     string
	PaymentMode       string
	VoucherReference  string
	TaxCategory       models.TaxCategory
	TaxDeductible     bool
	CreatedBy         string
}

// RecordExpense records an expense against an allocation.
//
// The available amount of the allocation is computed while holding the
// allocation's lock and inside the database transaction that stores the
// expense. If the expense exceeds it, an ErrInsufficientBudget BudgetError
// is returned and nothing is written.
func (t *Tracker) RecordExpense(ctx context.Context, db *gorm.DB, in ExpenseInput) (models.Expense, error) {
	err := models.ValidateAmount("expense amount", in.Amount)
	if err != nil {
		return models.Expense{}, err
	}

	if in.ExpenseDate.IsZero() {
		in.ExpenseDate = types.Today()
	}

	expense := models.Expense{
		DefaultModel:      models.DefaultModel{ID: uuid.New()},
		AllocationID:      in.AllocationID,
		SubProjectID:      in.SubProjectID,
		Amount:            in.Amount,
		ExpenseDate:       in.ExpenseDate,
		Category:          in.Category,
		PaidFromAccountID: in.PaidFromAccountID,
		AccountID:         in.AccountID,
		Description:       in.Description,
		VendorName:        in.VendorName,
		InvoiceNumber:     in.InvoiceNumber,
		PaymentMode:       in.PaymentMode,
		VoucherReference:  in.VoucherReference,
		TaxCategory:       in.TaxCategory,
		TaxDeductible:     in.TaxDeductible,
		CreatedBy:         in.CreatedBy,
	}

	unlock := t.allocationLocks.Lock(in.AllocationID)
	defer unlock()

	var transaction models.Transaction
	err = models.RunInTransaction(db, func(tx *gorm.DB) error {
		var allocation models.Allocation
		err := tx.First(&allocation, in.AllocationID).Error
		if err != nil {
			return err
		}

		if expense.SubProjectID == nil {
			expense.SubProjectID = allocation.SubProjectID
		}

		_, err = projectOf(tx, allocation.ProjectID, expense.SubProjectID)
		if err != nil {
			return err
		}

		available, err := allocation.Available(tx)
		if err != nil {
			return err
		}

		if in.Amount.GreaterThan(available) {
			rejectionCount.WithLabelValues("insufficient_budget").Inc()
			return &models.BudgetError{Err: models.ErrInsufficientBudget, Available: available}
		}

		expenseAccount, err := account(tx, in.AccountID, "expense account", models.AccountTypeExpense)
		if err != nil {
			return err
		}

		paidFrom, err := account(tx, in.PaidFromAccountID, "paid from account", "")
		if err != nil {
			return err
		}

		if paidFrom.Type != models.AccountTypeAsset && paidFrom.Type != models.AccountTypeLiability {
			return models.Validationf("the paid from account must be an asset or liability account, %s is of type %s", paidFrom.Code, paidFrom.Type)
		}

		description := in.Description
		if description == "" {
			description = fmt.Sprintf("Expense %s", in.Category)
		}

		transaction, err = ledger.PostTx(tx, ledger.Posting{
			Date:        in.ExpenseDate,
			Description: description,
			Reference:   models.ExpenseRef{ID: expense.ID},
			Lines: []ledger.Line{
				{AccountID: expenseAccount.ID, Type: models.EntryTypeDebit, Amount: in.Amount},
				{AccountID: paidFrom.ID, Type: models.EntryTypeCredit, Amount: in.Amount},
			},
		})
		if err != nil {
			return err
		}

		expense.TransactionID = &transaction.ID
		return tx.Omit(clause.Associations).Create(&expense).Error
	})
	if err != nil {
		return models.Expense{}, err
	}

	recordCount.WithLabelValues("expense").Inc()
	t.publish(ctx, events.TypeExpenseRecorded, expense, transaction)

	return expense, nil
}

// publish sends the event for the domain row and the transaction mirroring
// it. Failures are logged only, the write has already been committed.
func (t *Tracker) publish(ctx context.Context, eventType events.Type, payload any, transaction models.Transaction) {
	for _, e := range []events.Event{
		events.New(eventType, payload),
		events.New(events.TypeTransactionPosted, transaction),
	} {
		err := t.publisher.Publish(ctx, e)
		if err != nil {
			log.Warn().Err(err).Str("type", string(e.Type)).Str("event", e.ID.String()).Msg("Budget")
		}
	}
}

// account loads the account with the given id. If accountType is set,
// the account must have that type.
func account(tx *gorm.DB, id uuid.UUID, role string, accountType models.AccountType) (models.Account, error) {
	if id == uuid.Nil {
		return models.Account{}, models.Validationf("the %s must be set", role)
	}

	var a models.Account
	err := tx.First(&a, id).Error
	if err != nil {
		return models.Account{}, err
	}

	if accountType != "" && a.Type != accountType {
		return models.Account{}, models.Validationf("the %s must be of type %s, %s is of type %s", role, accountType, a.Code, a.Type)
	}

	return a, nil
}

// resolve loads the account with the given id or, if id is nil, the account
// with the default code.
func (t *Tracker) resolve(tx *gorm.DB, id *uuid.UUID, code, role string, accountType models.AccountType) (models.Account, error) {
	if id != nil {
		return account(tx, *id, role, accountType)
	}

	if code == "" {
		return models.Account{}, models.Validationf("no %s was given and no default is configured", role)
	}

	var a models.Account
	err := tx.Where(&models.Account{Code: code}).First(&a).Error
	if err != nil {
		return models.Account{}, fmt.Errorf("%w (default %s with code %s)", err, role, code)
	}

	return account(tx, a.ID, role, accountType)
}

// projectOf loads the project and verifies that the sub project, if any,
// belongs to it.
func projectOf(tx *gorm.DB, projectID uuid.UUID, subProjectID *uuid.UUID) (models.Project, error) {
	var project models.Project
	err := tx.First(&project, projectID).Error
	if err != nil {
		return models.Project{}, err
	}

	if subProjectID == nil {
		return project, nil
	}

	var subProject models.SubProject
	err = tx.First(&subProject, *subProjectID).Error
	if err != nil {
		return models.Project{}, err
	}

	if subProject.ProjectID != project.ID {
		return models.Project{}, models.ErrSubProjectMismatch
	}

	return project, nil
}
