package models_test

import (
	"testing"

	"github.com/fundledger/backend/internal/models"
	"github.com/fundledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAccountTypeDebitNormal() {
	tests := []struct {
		t    models.AccountType
		want bool
	}{
		{models.AccountTypeAsset, true},
		{models.AccountTypeExpense, true},
		{models.AccountTypeLiability, false},
		{models.AccountTypeEquity, false},
		{models.AccountTypeIncome, false},
	}

	for _, tt := range tests {
		suite.T().Run(string(tt.t), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.t.DebitNormal())
			assert.True(t, tt.t.Valid())
		})
	}

	suite.Assert().False(models.AccountType("Revenue").Valid())
}

func (suite *TestSuiteStandard) TestAccountBeforeSave() {
	tests := []struct {
		name    string
		account models.Account
		err     error
	}{
		{"Empty code", models.Account{Name: "Cash", Type: models.AccountTypeAsset}, models.ErrValidation},
		{"Empty name", models.Account{Code: "1000", Type: models.AccountTypeAsset}, models.ErrValidation},
		{"Invalid type", models.Account{Code: "1000", Name: "Cash", Type: "Revenue"}, models.ErrAccountTypeInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.account).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountTrimWhitespace() {
	account := suite.createTestAccount(models.Account{
		Code:        "  1000 ",
		Name:        "\tCash at bank ",
		Description: " Main account  ",
	})

	suite.Assert().Equal("1000", account.Code)
	suite.Assert().Equal("Cash at bank", account.Name)
	suite.Assert().Equal("Main account", account.Description)
}

func (suite *TestSuiteStandard) TestAccountDuplicateCode() {
	_ = suite.createTestAccount(models.Account{Code: "1000"})

	err := models.DB.Create(&models.Account{Code: "1000", Name: "Other", Type: models.AccountTypeAsset}).Error
	suite.Assert().ErrorIs(err, models.ErrDuplicateCode)
}

func (suite *TestSuiteStandard) TestAccountNotFound() {
	err := models.DB.First(&models.Account{}, uuid.New()).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "there is no account matching your query")
}

func (suite *TestSuiteStandard) TestAccountHasEntriesAndChildren() {
	parent := suite.createTestAccount(models.Account{Code: "1000"})
	child := suite.createTestAccount(models.Account{Code: "1100", ParentID: &parent.ID})
	income := suite.createTestAccount(models.Account{Code: "4000", Type: models.AccountTypeIncome})

	hasEntries, err := child.HasEntries(models.DB)
	suite.Require().Nil(err)
	suite.Assert().False(hasEntries)

	hasChildren, err := parent.HasChildren(models.DB)
	suite.Require().Nil(err)
	suite.Assert().True(hasChildren)

	transaction := models.Transaction{
		Number: 1,
		Date:   types.NewDate(2024, 1, 1),
		Entries: []models.TransactionEntry{
			{AccountID: child.ID, EntryType: models.EntryTypeDebit, Amount: decimal.NewFromInt(10)},
			{AccountID: income.ID, EntryType: models.EntryTypeCredit, Amount: decimal.NewFromInt(10), Position: 1},
		},
	}
	suite.Require().Nil(models.DB.Create(&transaction).Error)

	hasEntries, err = child.HasEntries(models.DB)
	suite.Require().Nil(err)
	suite.Assert().True(hasEntries)
}

func (suite *TestSuiteStandard) TestAccountSelfParent() {
	id := uuid.New()
	err := models.DB.Create(&models.Account{
		DefaultModel: models.DefaultModel{ID: id},
		Code:         "1000",
		Name:         "Cash",
		Type:         models.AccountTypeAsset,
		ParentID:     &id,
	}).Error

	suite.Assert().ErrorIs(err, models.ErrAccountParent)
}

func (suite *TestSuiteStandard) TestAccountDBClosed() {
	suite.CloseDB()

	err := models.DB.Create(&models.Account{Code: "1000", Name: "Cash", Type: models.AccountTypeAsset}).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
