package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountType is the classification of an account in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "Asset"
	AccountTypeLiability AccountType = "Liability"
	AccountTypeEquity    AccountType = "Equity"
	AccountTypeIncome    AccountType = "Income"
	AccountTypeExpense   AccountType = "Expense"
)

// AccountTypes lists all account types in reporting order.
var AccountTypes = []AccountType{
	AccountTypeAsset,
	AccountTypeLiability,
	AccountTypeEquity,
	AccountTypeIncome,
	AccountTypeExpense,
}

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeIncome, AccountTypeExpense:
		return true
	}
	return false
}

// DebitNormal reports whether debits increase the balance of accounts of this type.
//
// Asset and Expense accounts are debit normal, all others are credit normal.
func (t AccountType) DebitNormal() bool {
	return t == AccountTypeAsset || t == AccountTypeExpense
}

// Account is an entry in the chart of accounts.
type Account struct {
	DefaultModel
	Code        string      `json:"code" gorm:"uniqueIndex" example:"1000"`       // Unique, lexicographically sortable code
	Name        string      `json:"name" example:"Cash at bank"`                  // Name of the account
	Description string      `json:"description" example:"Main operating account"` // Description of the account
	Type        AccountType `json:"type" example:"Asset"`                         // Type of the account
	ParentID    *uuid.UUID  `json:"parentId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	Parent      *Account    `json:"-"`
}

// BeforeSave trims whitespace and verifies the required fields.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Code = strings.TrimSpace(a.Code)
	a.Name = strings.TrimSpace(a.Name)
	a.Description = strings.TrimSpace(a.Description)

	if a.Code == "" {
		return Validationf("the account code must not be empty")
	}

	if a.Name == "" {
		return Validationf("the account name must not be empty")
	}

	if !a.Type.Valid() {
		return ErrAccountTypeInvalid
	}

	if a.ParentID != nil && *a.ParentID == a.ID {
		return ErrAccountParent
	}

	return nil
}

// HasEntries reports whether any ledger entry references the account.
func (a Account) HasEntries(db *gorm.DB) (bool, error) {
	var count int64
	err := db.Model(&TransactionEntry{}).Where(&TransactionEntry{AccountID: a.ID}).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// HasChildren reports whether any account has this account as its parent.
func (a Account) HasChildren(db *gorm.DB) (bool, error) {
	var count int64
	err := db.Model(&Account{}).Where("parent_id = ?", a.ID).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
