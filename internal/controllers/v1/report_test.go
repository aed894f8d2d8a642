package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/fundledger/backend/internal/controllers/v1"
	"github.com/fundledger/backend/internal/models"
	"github.com/fundledger/backend/internal/types"
	"github.com/fundledger/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TestReportsBudgetCycle runs a funding, an allocation and an expense through
// all reports.
func (suite *TestSuiteStandard) TestReportsBudgetCycle() {
	b := createTestBudgetFixture(suite.T())
	createTestExpense(suite.T(), b.chart, v1.ExpenseEditable{
		AllocationID: b.allocation.ID,
		Amount:       decimal.NewFromInt(4000),
		ExpenseDate:  types.NewDate(2024, 2, 3),
	})

	// Balance sheet
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/balance-sheet?asOf=2024-12-31", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var sheet v1.BalanceSheetResponse
	test.DecodeResponse(suite.T(), &r, &sheet)
	suite.Assert().Equal("USD", sheet.Currency)
	suite.Assert().Equal("2024-12-31", sheet.Data.AsOfDate.String())
	suite.Assert().True(sheet.Data.TotalAssets.Equal(decimal.NewFromInt(6000)))
	suite.Assert().True(sheet.Data.TotalLiabilities.IsZero())
	suite.Assert().True(sheet.Data.TotalEquity.IsZero(), "allocations move money between equity accounts")
	suite.Require().Len(sheet.Data.Equity, 2)
	suite.Assert().True(sheet.Data.Equity[0].Balance.Equal(decimal.NewFromInt(-6000)))
	suite.Assert().True(sheet.Data.Equity[1].Balance.Equal(decimal.NewFromInt(6000)))

	// Before the expense
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/balance-sheet?asOf=2024-01-31", "")
	test.DecodeResponse(suite.T(), &r, &sheet)
	suite.Assert().True(sheet.Data.TotalAssets.Equal(decimal.NewFromInt(10000)))

	// Income statement
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/income-statement?start=2024-01-01&end=2024-12-31", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var statement v1.IncomeStatementResponse
	test.DecodeResponse(suite.T(), &r, &statement)
	suite.Assert().Equal("USD", statement.Currency)
	suite.Assert().True(statement.Data.TotalIncome.Equal(decimal.NewFromInt(10000)))
	suite.Assert().True(statement.Data.TotalExpenses.Equal(decimal.NewFromInt(4000)))
	suite.Assert().True(statement.Data.NetIncome.Equal(decimal.NewFromInt(6000)))

	// Ledger of the bank account
	r = test.Request(suite.T(), http.MethodGet, b.chart.Bank.Links.Ledger, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var ledger v1.LedgerReportResponse
	test.DecodeResponse(suite.T(), &r, &ledger)
	bank := ledger.Data.Accounts[b.chart.Bank.ID]
	suite.Require().Len(bank.Lines, 2)
	suite.Assert().True(bank.Lines[0].DebitAmount.Equal(decimal.NewFromInt(10000)))
	suite.Assert().True(bank.Lines[0].RunningBalance.Equal(decimal.NewFromInt(10000)))
	suite.Assert().True(bank.Lines[1].CreditAmount.Equal(decimal.NewFromInt(4000)))
	suite.Assert().True(bank.Lines[1].RunningBalance.Equal(decimal.NewFromInt(6000)))
	suite.Assert().Equal(models.ReferenceTypeExpense, bank.Lines[1].Reference.Type)

	// Ledger of the project holds the allocation and the expense only
	r = test.Request(suite.T(), http.MethodGet, b.project.Links.Ledger, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &ledger)
	suite.Assert().Len(ledger.Data.Accounts, 4)
	_, ok := ledger.Data.Accounts[b.chart.Grants.ID]
	suite.Assert().False(ok, "the funding is not part of the project ledger")
}

func (suite *TestSuiteStandard) TestReportsPeriod() {
	chart := createTestChart(suite.T())
	createTestTransaction(suite.T(), transfer(types.NewDate(2023, 12, 31), chart.Bank.ID, chart.Grants.ID, "100"))
	createTestTransaction(suite.T(), transfer(types.NewDate(2024, 3, 1), chart.Bank.ID, chart.Grants.ID, "200"))
	createTestTransaction(suite.T(), transfer(types.NewDate(2024, 7, 1), chart.Supplies.ID, chart.Bank.ID, "50"))

	q1 := createTestReportingPeriod(suite.T(), v1.ReportingPeriodEditable{Name: "Q1 2024", StartDate: types.NewDate(2024, 1, 1), EndDate: types.NewDate(2024, 3, 31)})

	r := test.Request(suite.T(), http.MethodGet, q1.Data.Links.IncomeStatement, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var statement v1.IncomeStatementResponse
	test.DecodeResponse(suite.T(), &r, &statement)
	suite.Assert().Equal("2024-01-01", statement.Data.StartDate.String())
	suite.Assert().Equal("2024-03-31", statement.Data.EndDate.String())
	suite.Assert().True(statement.Data.TotalIncome.Equal(decimal.NewFromInt(200)))
	suite.Assert().True(statement.Data.TotalExpenses.IsZero())

	// The balance sheet is cumulative up to the end of the period
	r = test.Request(suite.T(), http.MethodGet, q1.Data.Links.BalanceSheet, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var sheet v1.BalanceSheetResponse
	test.DecodeResponse(suite.T(), &r, &sheet)
	suite.Assert().Equal("2024-03-31", sheet.Data.AsOfDate.String())
	suite.Assert().True(sheet.Data.TotalAssets.Equal(decimal.NewFromInt(300)))

	// The period takes precedence over explicit dates
	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s&start=2020-01-01&end=2030-12-31", q1.Data.Links.Ledger), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var ledger v1.LedgerReportResponse
	test.DecodeResponse(suite.T(), &r, &ledger)
	suite.Require().Len(ledger.Data.Accounts[chart.Bank.ID].Lines, 1)
	suite.Assert().True(ledger.Data.Accounts[chart.Bank.ID].Balance.Equal(decimal.NewFromInt(200)))
}

func (suite *TestSuiteStandard) TestReportsSnakeCaseParameters() {
	chart := createTestChart(suite.T())
	createTestTransaction(suite.T(), transfer(types.NewDate(2023, 12, 31), chart.Bank.ID, chart.Grants.ID, "100"))
	createTestTransaction(suite.T(), transfer(types.NewDate(2024, 3, 1), chart.Bank.ID, chart.Grants.ID, "200"))

	q1 := createTestReportingPeriod(suite.T(), v1.ReportingPeriodEditable{Name: "Q1 2024", StartDate: types.NewDate(2024, 1, 1), EndDate: types.NewDate(2024, 3, 31)})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/reports/income-statement?reporting_period_id=%s", q1.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var statement v1.IncomeStatementResponse
	test.DecodeResponse(suite.T(), &r, &statement)
	suite.Assert().Equal("2024-01-01", statement.Data.StartDate.String())
	suite.Assert().True(statement.Data.TotalIncome.Equal(decimal.NewFromInt(200)))

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/balance-sheet?as_of_date=2024-01-31", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var sheet v1.BalanceSheetResponse
	test.DecodeResponse(suite.T(), &r, &sheet)
	suite.Assert().Equal("2024-01-31", sheet.Data.AsOfDate.String())
	suite.Assert().True(sheet.Data.TotalAssets.Equal(decimal.NewFromInt(100)))

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/reports/ledger?account_id=%s&start_date=2024-01-01&end_date=2024-12-31", chart.Bank.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var ledger v1.LedgerReportResponse
	test.DecodeResponse(suite.T(), &r, &ledger)
	suite.Require().Len(ledger.Data.Accounts, 1)
	suite.Require().Len(ledger.Data.Accounts[chart.Bank.ID].Lines, 1)
	suite.Assert().True(ledger.Data.Accounts[chart.Bank.ID].Balance.Equal(decimal.NewFromInt(200)))

	// Both forms with the same value are fine
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/balance-sheet?asOf=2024-01-31&as_of_date=2024-01-31", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestReportsFails() {
	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Ledger unknown period", fmt.Sprintf("ledger?period=%s", uuid.New()), http.StatusNotFound},
		{"Ledger unknown account", fmt.Sprintf("ledger?account=%s", uuid.New()), http.StatusNotFound},
		{"Ledger invalid account", "ledger?account=NotAUUID", http.StatusBadRequest},
		{"Ledger start after end", "ledger?start=2024-02-01&end=2024-01-01", http.StatusBadRequest},
		{"Balance sheet invalid date", "balance-sheet?asOf=31.12.2024", http.StatusBadRequest},
		{"Balance sheet unknown period", fmt.Sprintf("balance-sheet?period=%s", uuid.New()), http.StatusNotFound},
		{"Income statement start after end", "income-statement?start=2024-02-01&end=2024-01-01", http.StatusBadRequest},
		{"Income statement invalid period", "income-statement?period=12", http.StatusBadRequest},
		{"Income statement unknown snake case period", fmt.Sprintf("income-statement?reporting_period_id=%s", uuid.New()), http.StatusNotFound},
		{"Ledger conflicting start", "ledger?start=2024-01-01&start_date=2024-02-01", http.StatusBadRequest},
		{"Ledger conflicting period", fmt.Sprintf("ledger?period=%s&reporting_period_id=%s", uuid.New(), uuid.New()), http.StatusBadRequest},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/reports/%s", tt.path), "")
		test.AssertHTTPStatus(suite.T(), &r, tt.status)

		var response v1.LedgerReportResponse
		test.DecodeResponse(suite.T(), &r, &response)
		suite.Assert().NotNil(response.Error, tt.name)
		suite.Assert().Equal("USD", response.Currency, tt.name)
	}
}

func (suite *TestSuiteStandard) TestReportsEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/income-statement", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var statement v1.IncomeStatementResponse
	test.DecodeResponse(suite.T(), &r, &statement)

	start, end := types.Today().YearBounds()
	suite.Assert().Equal(start.String(), statement.Data.StartDate.String())
	suite.Assert().Equal(end.String(), statement.Data.EndDate.String())
	suite.Assert().True(statement.Data.NetIncome.IsZero())

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/balance-sheet", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var sheet v1.BalanceSheetResponse
	test.DecodeResponse(suite.T(), &r, &sheet)
	suite.Assert().Equal(types.Today().String(), sheet.Data.AsOfDate.String())
}

func (suite *TestSuiteStandard) TestReportsDBClosed() {
	suite.CloseDB()

	for _, path := range []string{"ledger", "balance-sheet", "income-statement"} {
		r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/reports/%s", path), "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	}
}
