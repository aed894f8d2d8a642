package v1_test

import (
	"net/http"

	"github.com/fundledger/backend/internal/auth"
	v1 "github.com/fundledger/backend/internal/controllers/v1"
	"github.com/fundledger/backend/test"
)

func (suite *TestSuiteStandard) TestRoot() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(v1.Response{
		Currency: "USD",
		Links: v1.Links{
			Accounts:         "http://example.com/v1/accounts",
			AccountTree:      "http://example.com/v1/accounts/tree",
			Transactions:     "http://example.com/v1/transactions",
			Projects:         "http://example.com/v1/projects",
			ReportingPeriods: "http://example.com/v1/reporting-periods",
			Fundings:         "http://example.com/v1/fundings",
			Allocations:      "http://example.com/v1/allocations",
			Expenses:         "http://example.com/v1/expenses",
			Budgets:          "http://example.com/v1/budgets",
			Ledger:           "http://example.com/v1/reports/ledger",
			BalanceSheet:     "http://example.com/v1/reports/balance-sheet",
			IncomeStatement:  "http://example.com/v1/reports/income-statement",
		},
	}, response)
}

func (suite *TestSuiteStandard) TestRootAllRoles() {
	for _, role := range auth.Roles {
		r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "", test.As(suite.T(), role))
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	}
}
