package chart_test

import (
	"testing"

	"github.com/fundledger/backend/internal/chart"
	"github.com/fundledger/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func (suite *TestSuiteStandard) TestCreateDuplicateCode() {
	_ = suite.createTestAccount(models.Account{Code: "1000"})

	_, err := chart.Create(models.DB, models.Account{Code: "1000", Name: "Other", Type: models.AccountTypeIncome})
	suite.Assert().ErrorIs(err, models.ErrDuplicateCode)

	// Surrounding whitespace does not make a code unique
	_, err = chart.Create(models.DB, models.Account{Code: " 1000 ", Name: "Other", Type: models.AccountTypeIncome})
	suite.Assert().ErrorIs(err, models.ErrDuplicateCode)
}

func (suite *TestSuiteStandard) TestCreateParent() {
	assets := suite.createTestAccount(models.Account{Code: "1"})
	income := suite.createTestAccount(models.Account{Code: "4", Type: models.AccountTypeIncome})

	tests := []struct {
		name     string
		parentID uuid.UUID
		err      error
	}{
		{"Same type", assets.ID, nil},
		{"Different type", income.ID, models.ErrAccountParent},
		{"Parent does not exist", uuid.New(), models.ErrAccountParent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := chart.Create(models.DB, models.Account{Code: uuid.NewString(), Name: "Child", Type: models.AccountTypeAsset, ParentID: &tt.parentID})
			if tt.err == nil {
				assert.Nil(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestGet() {
	a := suite.createTestAccount(models.Account{Code: "1000", Name: "Cash"})

	loaded, err := chart.Get(models.DB, a.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("Cash", loaded.Name)

	_, err = chart.Get(models.DB, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestListSortedByCode() {
	for _, code := range []string{"5000", "1000", "10", "4100", "2000"} {
		_ = suite.createTestAccount(models.Account{Code: code})
	}

	accounts, err := chart.List(models.DB, chart.Filter{})
	suite.Require().Nil(err)

	codes := make([]string, 0, len(accounts))
	for _, a := range accounts {
		codes = append(codes, a.Code)
	}

	// Lexicographic, not numeric
	suite.Assert().Equal([]string{"10", "1000", "2000", "4100", "5000"}, codes)
}

func (suite *TestSuiteStandard) TestListFilter() {
	cash := suite.createTestAccount(models.Account{Code: "1000", Name: "Cash"})
	_ = suite.createTestAccount(models.Account{Code: "1100", Name: "Bank", ParentID: &cash.ID})
	_ = suite.createTestAccount(models.Account{Code: "4000", Name: "Grants", Type: models.AccountTypeIncome})
	_ = suite.createTestAccount(models.Account{Code: "4100", Name: "Donations", Type: models.AccountTypeIncome})
	_ = suite.createTestAccount(models.Account{Code: "5000", Name: "Rent", Type: models.AccountTypeExpense})

	tests := []struct {
		name   string
		filter chart.Filter
		codes  []string
	}{
		{"Type", chart.Filter{Type: models.AccountTypeIncome}, []string{"4000", "4100"}},
		{"Code glob", chart.Filter{Code: "1*"}, []string{"1000", "1100"}},
		{"Code glob in the middle", chart.Filter{Code: "4*00"}, []string{"4000", "4100"}},
		{"Exact code", chart.Filter{Code: "5000"}, []string{"5000"}},
		{"Name", chart.Filter{Name: "ant"}, []string{"4000"}},
		{"Parent", chart.Filter{ParentID: &cash.ID}, []string{"1100"}},
		{"No match", chart.Filter{Type: models.AccountTypeLiability}, []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			accounts, err := chart.List(models.DB, tt.filter)
			assert.Nil(t, err)

			codes := make([]string, 0, len(accounts))
			for _, a := range accounts {
				codes = append(codes, a.Code)
			}
			assert.Equal(t, tt.codes, codes)
		})
	}

	_, err := chart.List(models.DB, chart.Filter{Type: "Revenue"})
	suite.Assert().ErrorIs(err, models.ErrAccountTypeInvalid)
}

func (suite *TestSuiteStandard) TestUpdate() {
	a := suite.createTestAccount(models.Account{Code: "1000", Name: "Cash"})

	updated, err := chart.Update(models.DB, a.ID, chart.Patch{
		Code:        ptr("1001"),
		Name:        ptr("Petty cash"),
		Description: ptr("Office drawer"),
		Type:        ptr(models.AccountTypeExpense),
	})
	suite.Require().Nil(err)
	suite.Assert().Equal("1001", updated.Code)
	suite.Assert().Equal("Petty cash", updated.Name)
	suite.Assert().Equal("Office drawer", updated.Description)
	suite.Assert().Equal(models.AccountTypeExpense, updated.Type)

	_, err = chart.Update(models.DB, uuid.New(), chart.Patch{Name: ptr("x")})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = chart.Update(models.DB, a.ID, chart.Patch{Name: ptr("")})
	suite.Assert().ErrorIs(err, models.ErrValidation)

	_, err = chart.Update(models.DB, a.ID, chart.Patch{Type: ptr(models.AccountType("Revenue"))})
	suite.Assert().ErrorIs(err, models.ErrAccountTypeInvalid)
}

func (suite *TestSuiteStandard) TestUpdateAfterPosting() {
	a := suite.createTestAccount(models.Account{Code: "1000", Name: "Cash"})
	suite.postTo(a)

	tests := []struct {
		name  string
		patch chart.Patch
		err   error
	}{
		{"Type change", chart.Patch{Type: ptr(models.AccountTypeLiability)}, models.ErrAccountTypeImmutable},
		{"Code change", chart.Patch{Code: ptr("1001")}, models.ErrAccountTypeImmutable},
		{"Same type and code", chart.Patch{Code: ptr("1000"), Type: ptr(models.AccountTypeAsset)}, nil},
		{"Name change", chart.Patch{Name: ptr("Cash at hand")}, nil},
		{"Description change", chart.Patch{Description: ptr("Drawer")}, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := chart.Update(models.DB, a.ID, tt.patch)
			if tt.err == nil {
				assert.Nil(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}

	loaded, err := chart.Get(models.DB, a.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(models.AccountTypeAsset, loaded.Type)
	suite.Assert().Equal("1000", loaded.Code)
	suite.Assert().Equal("Cash at hand", loaded.Name)
}

func (suite *TestSuiteStandard) TestUpdateParent() {
	root := suite.createTestAccount(models.Account{Code: "1"})
	child := suite.createTestAccount(models.Account{Code: "10", ParentID: &root.ID})
	grandchild := suite.createTestAccount(models.Account{Code: "100", ParentID: &child.ID})
	other := suite.createTestAccount(models.Account{Code: "2"})
	income := suite.createTestAccount(models.Account{Code: "4", Type: models.AccountTypeIncome})

	tests := []struct {
		name     string
		id       uuid.UUID
		parentID *uuid.UUID
		err      error
	}{
		{"Self", root.ID, &root.ID, models.ErrAccountParent},
		{"Cycle through child", root.ID, &child.ID, models.ErrAccountParent},
		{"Cycle through grandchild", root.ID, &grandchild.ID, models.ErrAccountParent},
		{"Different type", other.ID, &income.ID, models.ErrAccountParent},
		{"Move subtree", child.ID, &other.ID, nil},
		{"Make root", child.ID, nil, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := chart.Update(models.DB, tt.id, chart.Patch{ParentSet: true, ParentID: tt.parentID})
			if tt.err == nil {
				assert.Nil(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}

	loaded, err := chart.Get(models.DB, child.ID)
	suite.Require().Nil(err)
	suite.Assert().Nil(loaded.ParentID)

	// Changing the type of a parent would leave children with another type
	_, err = chart.Update(models.DB, child.ID, chart.Patch{Type: ptr(models.AccountTypeExpense)})
	suite.Assert().ErrorIs(err, models.ErrAccountParent)
}

func (suite *TestSuiteStandard) TestDelete() {
	unused := suite.createTestAccount(models.Account{})
	posted := suite.createTestAccount(models.Account{})
	suite.postTo(posted)
	parent := suite.createTestAccount(models.Account{})
	_ = suite.createTestAccount(models.Account{ParentID: &parent.ID})

	suite.Assert().Nil(chart.Delete(models.DB, unused.ID))
	_, err := chart.Get(models.DB, unused.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	suite.Assert().ErrorIs(chart.Delete(models.DB, posted.ID), models.ErrAccountInUse)
	suite.Assert().ErrorIs(chart.Delete(models.DB, parent.ID), models.ErrAccountInUse)
	suite.Assert().ErrorIs(chart.Delete(models.DB, uuid.New()), models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDBClosed() {
	suite.CloseDB()

	_, err := chart.List(models.DB, chart.Filter{})
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, err = chart.Create(models.DB, models.Account{Code: "1", Name: "Cash", Type: models.AccountTypeAsset})
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestLoadTree() {
	assets := suite.createTestAccount(models.Account{Code: "1"})
	bank := suite.createTestAccount(models.Account{Code: "11", ParentID: &assets.ID})
	cash := suite.createTestAccount(models.Account{Code: "10", ParentID: &assets.ID})
	petty := suite.createTestAccount(models.Account{Code: "100", ParentID: &cash.ID})
	income := suite.createTestAccount(models.Account{Code: "4", Type: models.AccountTypeIncome})

	tree, err := chart.LoadTree(models.DB)
	suite.Require().Nil(err)

	suite.Assert().Equal([]uuid.UUID{assets.ID, income.ID}, tree.Roots)
	suite.Assert().Equal([]uuid.UUID{cash.ID, bank.ID}, tree.Nodes[assets.ID].Children)
	suite.Assert().Equal([]uuid.UUID{cash.ID, assets.ID}, tree.Ancestors(petty.ID))
	suite.Assert().True(tree.IsAncestor(assets.ID, petty.ID))
	suite.Assert().False(tree.IsAncestor(bank.ID, petty.ID))
	suite.Assert().Equal(2, tree.Nodes[petty.ID].Depth)

	flat := tree.Flatten()
	ids := make([]uuid.UUID, 0, len(flat))
	for _, n := range flat {
		ids = append(ids, n.Account.ID)
	}
	suite.Assert().Equal([]uuid.UUID{assets.ID, cash.ID, petty.ID, bank.ID, income.ID}, ids)
}
