package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/fundledger/backend/internal/controllers/v1"
	"github.com/fundledger/backend/internal/models"
	"github.com/fundledger/backend/internal/types"
	"github.com/fundledger/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestFunding(t *testing.T, chart testChart, f v1.FundingEditable, expectedStatus ...int) v1.FundingResponse {
	if f.DonorName == "" {
		f.DonorName = "Global Water Fund"
	}

	if f.Amount.IsZero() {
		f.Amount = decimal.NewFromInt(10000)
	}

	if f.DateReceived.IsZero() {
		f.DateReceived = types.NewDate(2024, 1, 15)
	}

	if f.AccountID == uuid.Nil {
		f.AccountID = chart.Bank.ID
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.FundingEditable{f}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/fundings", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var funding v1.FundingCreateResponse
	test.DecodeResponse(t, &r, &funding)

	if r.Code == http.StatusCreated {
		return funding.Data[0]
	}

	return v1.FundingResponse{}
}

// TestFundingsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestFundingsDBClosed() {
	chart := createTestChart(suite.T())

	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestFunding(t, chart, v1.FundingEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/fundings", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.FundingListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestFundingsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestFundingsOptions() {
	chart := createTestChart(suite.T())

	tests := []struct {
		name   string
		id     string // path at the Fundings endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Funding with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Funding exists", createTestFunding(suite.T(), chart, v1.FundingEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/fundings", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
			}
		})
	}
}

// TestFundingsCreate verifies that a funding is mirrored by a balanced
// transaction debiting the receiving account and crediting the income account.
func (suite *TestSuiteStandard) TestFundingsCreate() {
	chart := createTestChart(suite.T())

	f := createTestFunding(suite.T(), chart, v1.FundingEditable{
		DonorName:     "Global Water Fund",
		DonorType:     "Foundation",
		Amount:        decimal.NewFromInt(10000),
		TaxDeductible: true,
	})
	suite.Assert().True(f.Data.Amount.Equal(decimal.NewFromInt(10000)))
	suite.Assert().True(f.Data.UnallocatedAmount.Equal(decimal.NewFromInt(10000)))
	suite.Assert().True(f.Data.AllocatedAmount.IsZero())
	suite.Require().NotNil(f.Data.TransactionID)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/transactions/%s", f.Data.TransactionID), f.Data.Links.Transaction)

	r := test.Request(suite.T(), http.MethodGet, f.Data.Links.Transaction, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var tr v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &tr)
	suite.Assert().Equal("Funding from Global Water Fund", tr.Data.Description)
	suite.Assert().Equal("2024-01-15", tr.Data.Date.String())
	suite.Require().NotNil(tr.Data.Reference)
	suite.Assert().Equal(models.ReferenceTypeFunding, tr.Data.Reference.Type)
	suite.Assert().Equal(f.Data.ID, tr.Data.Reference.ID)

	suite.Require().Len(tr.Data.Entries, 2)
	suite.Assert().Equal(chart.Bank.ID, tr.Data.Entries[0].AccountID)
	suite.Assert().Equal(models.EntryTypeDebit, tr.Data.Entries[0].EntryType)
	suite.Assert().Equal(chart.Grants.ID, tr.Data.Entries[1].AccountID)
	suite.Assert().Equal(models.EntryTypeCredit, tr.Data.Entries[1].EntryType)
}

func (suite *TestSuiteStandard) TestFundingsCreateIncomeAccount() {
	chart := createTestChart(suite.T())
	donations := createTestAccount(suite.T(), v1.AccountEditable{Code: "4100", Name: "Donations", Type: models.AccountTypeIncome})

	f := createTestFunding(suite.T(), chart, v1.FundingEditable{IncomeAccountID: &donations.Data.ID})

	r := test.Request(suite.T(), http.MethodGet, f.Data.Links.Transaction, "")
	var tr v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &tr)
	suite.Assert().Equal(donations.Data.ID, tr.Data.Entries[1].AccountID)
}

func (suite *TestSuiteStandard) TestFundingsCreateFails() {
	chart := createTestChart(suite.T())

	tests := []struct {
		name     string
		editable v1.FundingEditable
		status   int
	}{
		{"Negative amount", v1.FundingEditable{Amount: decimal.NewFromInt(-5)}, http.StatusBadRequest},
		{"Receiving account is not an asset", v1.FundingEditable{AccountID: chart.Supplies.ID}, http.StatusBadRequest},
		{"Unknown receiving account", v1.FundingEditable{AccountID: uuid.New()}, http.StatusNotFound},
		{"Income account is not income", v1.FundingEditable{IncomeAccountID: &chart.Restricted.ID}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestFunding(t, chart, tt.editable, tt.status)
		})
	}

	// No funding and no transaction were recorded
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/fundings", "")
	var fundings v1.FundingListResponse
	test.DecodeResponse(suite.T(), &r, &fundings)
	suite.Assert().Len(fundings.Data, 0)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &transactions)
	suite.Assert().Len(transactions.Data, 0)
}

// TestFundingsNoDefaultIncomeAccount verifies that a funding is rejected
// when the configured income account does not exist.
func (suite *TestSuiteStandard) TestFundingsNoDefaultIncomeAccount() {
	bank := createTestAccount(suite.T(), v1.AccountEditable{Code: "1000", Type: models.AccountTypeAsset})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/fundings", []v1.FundingEditable{{
		DonorName:    "Global Water Fund",
		Amount:       decimal.NewFromInt(100),
		DateReceived: types.NewDate(2024, 1, 1),
		AccountID:    bank.Data.ID,
	}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Contains(r.Body.String(), "default income account with code 4000")
}

func (suite *TestSuiteStandard) TestFundingsGet() {
	chart := createTestChart(suite.T())
	older := createTestFunding(suite.T(), chart, v1.FundingEditable{DonorName: "Older", DateReceived: types.NewDate(2024, 1, 1)})
	newer := createTestFunding(suite.T(), chart, v1.FundingEditable{DonorName: "Newer", DateReceived: types.NewDate(2024, 6, 1)})

	project := createTestProject(suite.T(), v1.ProjectEditable{})
	createTestAllocation(suite.T(), v1.AllocationEditable{FundingID: older.Data.ID, ProjectID: project.Data.ID, Amount: decimal.NewFromInt(2500)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/fundings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.FundingListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	require.Len(suite.T(), list.Data, 2)
	suite.Assert().Equal(newer.Data.ID, list.Data[0].ID, "the most recent funding is first")
	suite.Assert().True(list.Data[1].AllocatedAmount.Equal(decimal.NewFromInt(2500)))
	suite.Assert().True(list.Data[1].UnallocatedAmount.Equal(decimal.NewFromInt(7500)))

	r = test.Request(suite.T(), http.MethodGet, older.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var single v1.FundingResponse
	test.DecodeResponse(suite.T(), &r, &single)
	suite.Assert().Equal("Older", single.Data.DonorName)
	suite.Assert().True(single.Data.UnallocatedAmount.Equal(decimal.NewFromInt(7500)))

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/fundings/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
