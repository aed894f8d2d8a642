package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrPermissionDenied = errors.New("you do not have permission to perform this operation")
	ErrValidation       = errors.New("the request is invalid")
	ErrImmutable        = errors.New("ledger records cannot be changed, post a reversing transaction instead")
)

// Chart of accounts errors
var (
	ErrDuplicateCode        = errors.New("an account with this code already exists")
	ErrAccountTypeInvalid   = errors.New("the account type must be one of Asset, Liability, Equity, Income, Expense")
	ErrAccountTypeImmutable = errors.New("the type and code of an account cannot change once entries are posted against it")
	ErrAccountInUse         = errors.New("the account cannot be deleted because entries reference it or it has child accounts")
	ErrAccountParent        = errors.New("the parent account must exist, have the same type and must not be the account itself or one of its descendants")
)

// Ledger errors
var (
	ErrInvalidEntry          = errors.New("the transaction entry is invalid")
	ErrUnbalancedTransaction = errors.New("the debits and credits of the transaction do not balance")
)

// Budget errors
var (
	ErrOverAllocation     = errors.New("the allocation exceeds the unallocated amount of the funding")
	ErrInsufficientBudget = errors.New("the expense exceeds the available budget of the allocation")
)

// BudgetError is a business rule rejection of the budget tracker.
//
// It carries the available amount computed during the check so that callers
// can show it to the user.
type BudgetError struct {
	Err       error
	Available decimal.Decimal
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("%s. Available: %s", e.Err.Error(), e.Available.StringFixed(2))
}

func (e *BudgetError) Unwrap() error {
	return e.Err
}

// Validationf returns an ErrValidation with a message for the user.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
