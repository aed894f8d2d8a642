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

func createTestTransaction(t *testing.T, tr v1.TransactionEditable, expectedStatus ...int) v1.TransactionResponse {
	if tr.Date.IsZero() {
		tr.Date = types.NewDate(2024, 3, 1)
	}

	if tr.Description == "" {
		tr.Description = "Journal entry"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.TransactionEditable{tr}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var transaction v1.TransactionCreateResponse
	test.DecodeResponse(t, &r, &transaction)

	if r.Code == http.StatusCreated {
		return transaction.Data[0]
	}

	return v1.TransactionResponse{}
}

// transfer returns a balanced transaction moving amount from credit to debit.
func transfer(date types.Date, debit, credit uuid.UUID, amount string) v1.TransactionEditable {
	return v1.TransactionEditable{
		Date: date,
		Entries: []v1.EntryEditable{
			{AccountID: debit, Type: models.EntryTypeDebit, Amount: decimal.RequireFromString(amount)},
			{AccountID: credit, Type: models.EntryTypeCredit, Amount: decimal.RequireFromString(amount)},
		},
	}
}

// TestTransactionsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestTransactionsDBClosed() {
	chart := createTestChart(suite.T())

	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestTransaction(t, transfer(types.NewDate(2024, 1, 1), chart.Bank.ID, chart.Grants.ID, "10"), http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/transactions", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.TransactionListResponse
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

// TestTransactionsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestTransactionsOptions() {
	chart := createTestChart(suite.T())
	tr := createTestTransaction(suite.T(), transfer(types.NewDate(2024, 1, 1), chart.Bank.ID, chart.Grants.ID, "10"))

	tests := []struct {
		name   string
		path   string // path at the Transactions endpoint to test
		status int    // Expected HTTP status code
		allow  string
	}{
		{"No Transaction with this ID", uuid.New().String(), http.StatusNotFound, ""},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest, ""},
		{"Transaction exists", tr.Data.ID.String(), http.StatusNoContent, "OPTIONS, GET"},
		{"Reverse", fmt.Sprintf("%s/reverse", tr.Data.ID), http.StatusNoContent, "OPTIONS, POST"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/transactions", tt.path)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, tt.allow, r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	chart := createTestChart(suite.T())

	tr := createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:        types.NewDate(2024, 3, 1),
		Description: "Grant with matching contribution",
		Entries: []v1.EntryEditable{
			{AccountID: chart.Bank.ID, Type: models.EntryTypeDebit, Amount: decimal.RequireFromString("1500.50")},
			{AccountID: chart.Grants.ID, Type: models.EntryTypeCredit, Amount: decimal.NewFromInt(1000), Notes: "Grant"},
			{AccountID: chart.Unrestricted.ID, Type: models.EntryTypeCredit, Amount: decimal.RequireFromString("500.50")},
		},
	})

	suite.Assert().Equal(uint64(1), tr.Data.Number)
	suite.Assert().Nil(tr.Data.Reference, "manual journal entries have no reference")
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/transactions/%s/reverse", tr.Data.ID), tr.Data.Links.Reverse)
	suite.Require().Len(tr.Data.Entries, 3)
	suite.Assert().Equal(chart.Bank.ID, tr.Data.Entries[0].AccountID)
	suite.Assert().Equal("Grant", tr.Data.Entries[1].Notes)
	suite.Assert().Equal(2, tr.Data.Entries[2].Position)

	next := createTestTransaction(suite.T(), transfer(types.NewDate(2024, 2, 1), chart.Supplies.ID, chart.Bank.ID, "20"))
	suite.Assert().Equal(uint64(2), next.Data.Number, "numbers follow the posting order, not the date")

	r := test.Request(suite.T(), http.MethodGet, tr.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Grant with matching contribution", response.Data.Description)
	suite.Assert().True(response.Data.Entries[0].Amount.Equal(decimal.RequireFromString("1500.50")))
}

func (suite *TestSuiteStandard) TestTransactionsCreateFails() {
	chart := createTestChart(suite.T())
	date := types.NewDate(2024, 1, 1)

	unbalanced := transfer(date, chart.Bank.ID, chart.Grants.ID, "10")
	unbalanced.Entries[1].Amount = decimal.RequireFromString("9.99")

	negative := transfer(date, chart.Bank.ID, chart.Grants.ID, "-10")

	single := transfer(date, chart.Bank.ID, chart.Grants.ID, "10")
	single.Entries = single.Entries[:1]

	noType := transfer(date, chart.Bank.ID, chart.Grants.ID, "10")
	noType.Entries[0].Type = ""

	tests := []struct {
		name     string
		editable v1.TransactionEditable
		status   int
		err      error
	}{
		{"Unbalanced", unbalanced, http.StatusBadRequest, models.ErrUnbalancedTransaction},
		{"Negative amounts", negative, http.StatusBadRequest, models.ErrInvalidEntry},
		{"Single entry", single, http.StatusBadRequest, models.ErrInvalidEntry},
		{"Entry without type", noType, http.StatusBadRequest, models.ErrInvalidEntry},
		{"Unknown account", transfer(date, uuid.New(), chart.Grants.ID, "10"), http.StatusNotFound, models.ErrResourceNotFound},
		{"No account", transfer(date, uuid.Nil, chart.Grants.ID, "10"), http.StatusBadRequest, models.ErrInvalidEntry},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{tt.editable})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.TransactionCreateResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, 1)
			assert.Contains(t, *response.Data[0].Error, tt.err.Error())
		})
	}

	// Nothing was posted
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 0)
}

func (suite *TestSuiteStandard) TestTransactionsCreateNoDate() {
	chart := createTestChart(suite.T())

	editable := transfer(types.Date{}, chart.Bank.ID, chart.Grants.ID, "10")
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{editable})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsImmutable() {
	chart := createTestChart(suite.T())
	tr := createTestTransaction(suite.T(), transfer(types.NewDate(2024, 1, 1), chart.Bank.ID, chart.Grants.ID, "10"))

	for _, method := range []string{http.MethodPatch, http.MethodDelete} {
		r := test.Request(suite.T(), method, tr.Data.Links.Self, `{ "description": "Changed" }`)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetFilter() {
	chart := createTestChart(suite.T())

	first := createTestTransaction(suite.T(), transfer(types.NewDate(2024, 1, 10), chart.Bank.ID, chart.Grants.ID, "5000"))
	second := createTestTransaction(suite.T(), transfer(types.NewDate(2024, 2, 1), chart.Supplies.ID, chart.Bank.ID, "800"))
	third := createTestTransaction(suite.T(), transfer(types.NewDate(2024, 1, 20), chart.Supplies.ID, chart.Payable.ID, "120"))

	f := createTestFunding(suite.T(), chart, v1.FundingEditable{DateReceived: types.NewDate(2024, 3, 1)})

	tests := []struct {
		name  string
		query string
		ids   []uuid.UUID
	}{
		{"All in ledger order", "", []uuid.UUID{first.Data.ID, third.Data.ID, second.Data.ID, *f.Data.TransactionID}},
		{"From", "from=2024-01-15", []uuid.UUID{third.Data.ID, second.Data.ID, *f.Data.TransactionID}},
		{"Until", "until=2024-01-20", []uuid.UUID{first.Data.ID, third.Data.ID}},
		{"Account", fmt.Sprintf("account=%s", chart.Payable.ID), []uuid.UUID{third.Data.ID}},
		{"Manual entries", "referenceType=none", []uuid.UUID{first.Data.ID, third.Data.ID, second.Data.ID}},
		{"Fundings", "referenceType=funding", []uuid.UUID{*f.Data.TransactionID}},
		{"Reference", fmt.Sprintf("reference=%s", f.Data.ID), []uuid.UUID{*f.Data.TransactionID}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)

			ids := make([]uuid.UUID, 0)
			for _, tr := range response.Data {
				ids = append(ids, tr.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}

	for _, query := range []string{"account=NotAUUID", "from=2024-13-01", "reference=12"} {
		suite.T().Run(query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsReverse() {
	chart := createTestChart(suite.T())
	tr := createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:        types.NewDate(2024, 3, 1),
		Description: "Office supplies",
		Entries: []v1.EntryEditable{
			{AccountID: chart.Supplies.ID, Type: models.EntryTypeDebit, Amount: decimal.NewFromInt(80)},
			{AccountID: chart.Bank.ID, Type: models.EntryTypeCredit, Amount: decimal.NewFromInt(80)},
		},
	})

	r := test.Request(suite.T(), http.MethodPost, tr.Data.Links.Reverse, v1.ReversalEditable{Date: types.NewDate(2024, 3, 2)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var reversal v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &reversal)
	suite.Assert().Equal(tr.Data.ID, *reversal.Data.ReversalOfID)
	suite.Assert().Equal("2024-03-02", reversal.Data.Date.String())
	suite.Assert().Equal("Reversal of transaction 1: Office supplies", reversal.Data.Description)
	suite.Require().Len(reversal.Data.Entries, 2)
	suite.Assert().Equal(models.EntryTypeCredit, reversal.Data.Entries[0].EntryType)
	suite.Assert().Equal(chart.Supplies.ID, reversal.Data.Entries[0].AccountID)
	suite.Assert().Equal(models.EntryTypeDebit, reversal.Data.Entries[1].EntryType)

	// A transaction can only be reversed once
	r = test.Request(suite.T(), http.MethodPost, tr.Data.Links.Reverse, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// The supplies account is back at zero
	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/reports/ledger?account=%s", chart.Supplies.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var ledger v1.LedgerReportResponse
	test.DecodeResponse(suite.T(), &r, &ledger)
	suite.Assert().True(ledger.Data.Accounts[chart.Supplies.ID].Balance.IsZero())
}

func (suite *TestSuiteStandard) TestTransactionsReverseDefaults() {
	chart := createTestChart(suite.T())
	tr := createTestTransaction(suite.T(), transfer(types.NewDate(2024, 3, 1), chart.Bank.ID, chart.Grants.ID, "10"))

	r := test.Request(suite.T(), http.MethodPost, tr.Data.Links.Reverse, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var reversal v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &reversal)
	suite.Assert().Equal(types.Today().String(), reversal.Data.Date.String())
	suite.Assert().Equal("Reversal of transaction 1: Journal entry", reversal.Data.Description)

	r = test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/transactions/%s/reverse", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
