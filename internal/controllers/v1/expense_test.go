package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/fundledger/backend/internal/auth"
	v1 "github.com/fundledger/backend/internal/controllers/v1"
	"github.com/fundledger/backend/internal/models"
	"github.com/fundledger/backend/internal/types"
	"github.com/fundledger/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func createTestExpense(t *testing.T, chart testChart, e v1.ExpenseEditable, expectedStatus ...int) v1.ExpenseResponse {
	if e.Amount.IsZero() {
		e.Amount = decimal.NewFromInt(100)
	}

	if e.ExpenseDate.IsZero() {
		e.ExpenseDate = types.NewDate(2024, 2, 1)
	}

	if e.Category == "" {
		e.Category = "Materials"
	}

	if e.PaidFromAccountID == uuid.Nil {
		e.PaidFromAccountID = chart.Bank.ID
	}

	if e.AccountID == uuid.Nil {
		e.AccountID = chart.Supplies.ID
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.ExpenseEditable{e}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var expense v1.ExpenseCreateResponse
	test.DecodeResponse(t, &r, &expense)

	if len(expense.Data) == 1 {
		return expense.Data[0]
	}

	return v1.ExpenseResponse{}
}

// budgetFixture is a funding of 10000 with 6000 allocated to a project.
type budgetFixture struct {
	chart      testChart
	funding    v1.Funding
	project    v1.Project
	allocation v1.Allocation
}

func createTestBudgetFixture(t *testing.T) budgetFixture {
	chart := createTestChart(t)
	funding := createTestFunding(t, chart, v1.FundingEditable{Amount: decimal.NewFromInt(10000)})
	project := createTestProject(t, v1.ProjectEditable{Name: "Clean Water"})
	allocation := createTestAllocation(t, v1.AllocationEditable{
		FundingID: funding.Data.ID,
		ProjectID: project.Data.ID,
		Amount:    decimal.NewFromInt(6000),
	})

	return budgetFixture{
		chart:      chart,
		funding:    *funding.Data,
		project:    *project.Data,
		allocation: *allocation.Data,
	}
}

// TestExpensesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestExpensesDBClosed() {
	b := createTestBudgetFixture(suite.T())

	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestExpense(t, b.chart, v1.ExpenseEditable{AllocationID: b.allocation.ID}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/expenses", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.ExpenseListResponse
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

// TestExpensesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestExpensesOptions() {
	b := createTestBudgetFixture(suite.T())
	e := createTestExpense(suite.T(), b.chart, v1.ExpenseEditable{AllocationID: b.allocation.ID})

	tests := []struct {
		name   string
		id     string // path at the Expenses endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Expense with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Expense exists", e.Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/expenses", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
			}
		})
	}
}

// TestExpensesCreate verifies that an expense debits the expense account,
// credits the account it was paid from and records the caller.
func (suite *TestSuiteStandard) TestExpensesCreate() {
	b := createTestBudgetFixture(suite.T())

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", []v1.ExpenseEditable{{
		AllocationID:      b.allocation.ID,
		Amount:            decimal.NewFromInt(4000),
		ExpenseDate:       types.NewDate(2024, 2, 3),
		Category:          " Materials ",
		PaidFromAccountID: b.chart.Bank.ID,
		AccountID:         b.chart.Supplies.ID,
		Description:       "Pipes and fittings",
		VendorName:        "Hardware Ltd.",
		InvoiceNumber:     "INV-2024-0042",
		TaxCategory:       models.TaxCategoryVAT,
	}}, test.As(suite.T(), auth.RoleStaff))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var created v1.ExpenseCreateResponse
	test.DecodeResponse(suite.T(), &r, &created)
	e := created.Data[0]
	suite.Assert().Equal("Materials", e.Data.Category)
	suite.Assert().Equal("staff@example.org", e.Data.CreatedBy)
	suite.Assert().Equal(models.TaxCategoryVAT, e.Data.TaxCategory)
	suite.Assert().Equal(b.allocation.Links.Self, e.Data.Links.Allocation)

	r = test.Request(suite.T(), http.MethodGet, e.Data.Links.Transaction, "")
	var tr v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &tr)
	suite.Assert().Equal("Pipes and fittings", tr.Data.Description)
	suite.Assert().Equal(models.ReferenceTypeExpense, tr.Data.Reference.Type)
	suite.Assert().Equal(b.chart.Supplies.ID, tr.Data.Entries[0].AccountID)
	suite.Assert().Equal(models.EntryTypeDebit, tr.Data.Entries[0].EntryType)
	suite.Assert().Equal(b.chart.Bank.ID, tr.Data.Entries[1].AccountID)
	suite.Assert().Equal(models.EntryTypeCredit, tr.Data.Entries[1].EntryType)

	r = test.Request(suite.T(), http.MethodGet, b.allocation.Links.Self, "")
	var allocation v1.AllocationResponse
	test.DecodeResponse(suite.T(), &r, &allocation)
	suite.Assert().True(allocation.Data.AvailableAmount.Equal(decimal.NewFromInt(2000)))
}

// TestExpensesInsufficientBudget verifies that an expense exceeding the
// available budget of its allocation is rejected without any write.
func (suite *TestSuiteStandard) TestExpensesInsufficientBudget() {
	b := createTestBudgetFixture(suite.T())
	createTestExpense(suite.T(), b.chart, v1.ExpenseEditable{AllocationID: b.allocation.ID, Amount: decimal.NewFromInt(4000)})

	rejected := createTestExpense(suite.T(), b.chart, v1.ExpenseEditable{AllocationID: b.allocation.ID, Amount: decimal.NewFromInt(3000)}, http.StatusConflict)
	suite.Require().NotNil(rejected.Error)
	suite.Assert().Contains(*rejected.Error, models.ErrInsufficientBudget.Error())
	suite.Assert().Contains(*rejected.Error, "Available: 2000.00")
	suite.Require().NotNil(rejected.Available)
	suite.Assert().True(rejected.Available.Equal(decimal.NewFromInt(2000)))

	// Spending the rest exhausts the allocation
	createTestExpense(suite.T(), b.chart, v1.ExpenseEditable{AllocationID: b.allocation.ID, Amount: decimal.NewFromInt(2000)})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?allocation=%s", b.allocation.ID), "")
	var list v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 2)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?referenceType=expense", "")
	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &transactions)
	suite.Assert().Len(transactions.Data, 2, "the rejected expense was not posted")
}

func (suite *TestSuiteStandard) TestExpensesCreateFails() {
	b := createTestBudgetFixture(suite.T())
	other := createTestProject(suite.T(), v1.ProjectEditable{})
	foreign := createTestSubProject(suite.T(), other.Data.ID, v1.SubProjectEditable{})

	tests := []struct {
		name     string
		editable v1.ExpenseEditable
		status   int
	}{
		{"Unknown allocation", v1.ExpenseEditable{AllocationID: uuid.New()}, http.StatusNotFound},
		{"Negative amount", v1.ExpenseEditable{AllocationID: b.allocation.ID, Amount: decimal.NewFromInt(-10)}, http.StatusBadRequest},
		{"Account is not an expense account", v1.ExpenseEditable{AllocationID: b.allocation.ID, AccountID: b.chart.Grants.ID}, http.StatusBadRequest},
		{"Paid from an expense account", v1.ExpenseEditable{AllocationID: b.allocation.ID, PaidFromAccountID: b.chart.Supplies.ID}, http.StatusBadRequest},
		{"Sub project of another project", v1.ExpenseEditable{AllocationID: b.allocation.ID, SubProjectID: &foreign.Data.ID}, http.StatusBadRequest},
		{"Invalid tax category", v1.ExpenseEditable{AllocationID: b.allocation.ID, TaxCategory: "Sales"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestExpense(t, b.chart, tt.editable, tt.status)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", "")
	var list v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 0)
}

// TestExpensesPaidFromLiability verifies that expenses can be paid on credit.
func (suite *TestSuiteStandard) TestExpensesPaidFromLiability() {
	b := createTestBudgetFixture(suite.T())
	e := createTestExpense(suite.T(), b.chart, v1.ExpenseEditable{AllocationID: b.allocation.ID, PaidFromAccountID: b.chart.Payable.ID})
	suite.Assert().Equal(b.chart.Payable.ID, e.Data.PaidFromAccountID)
	suite.Assert().Equal(models.TaxCategoryNone, e.Data.TaxCategory)
}

func (suite *TestSuiteStandard) TestExpensesGetFilter() {
	b := createTestBudgetFixture(suite.T())
	meals := createTestProject(suite.T(), v1.ProjectEditable{Name: "School Meals"})
	village := createTestSubProject(suite.T(), b.project.ID, v1.SubProjectEditable{Name: "Village A"})
	mealsAllocation := createTestAllocation(suite.T(), v1.AllocationEditable{FundingID: b.funding.ID, ProjectID: meals.Data.ID})

	jan := createTestExpense(suite.T(), b.chart, v1.ExpenseEditable{AllocationID: b.allocation.ID, ExpenseDate: types.NewDate(2024, 1, 25)})
	feb := createTestExpense(suite.T(), b.chart, v1.ExpenseEditable{AllocationID: b.allocation.ID, SubProjectID: &village.Data.ID, ExpenseDate: types.NewDate(2024, 2, 10)})
	mar := createTestExpense(suite.T(), b.chart, v1.ExpenseEditable{AllocationID: mealsAllocation.Data.ID, ExpenseDate: types.NewDate(2024, 3, 5)})

	tests := []struct {
		name  string
		query string
		ids   []uuid.UUID
	}{
		{"All, most recent first", "", []uuid.UUID{mar.Data.ID, feb.Data.ID, jan.Data.ID}},
		{"Allocation", fmt.Sprintf("allocation=%s", b.allocation.ID), []uuid.UUID{feb.Data.ID, jan.Data.ID}},
		{"Project", fmt.Sprintf("project=%s", meals.Data.ID), []uuid.UUID{mar.Data.ID}},
		{"Sub project", fmt.Sprintf("subProject=%s", village.Data.ID), []uuid.UUID{feb.Data.ID}},
		{"From", "from=2024-02-10", []uuid.UUID{mar.Data.ID, feb.Data.ID}},
		{"Until", "until=2024-02-09", []uuid.UUID{jan.Data.ID}},
		{"Project and dates", fmt.Sprintf("project=%s&from=2024-02-01&until=2024-02-28", b.project.ID), []uuid.UUID{feb.Data.ID}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &r, &response)

			ids := make([]uuid.UUID, 0)
			for _, e := range response.Data {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}

	for _, query := range []string{"allocation=NotAUUID", "until=yesterday"} {
		suite.T().Run(query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?%s", query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, jan.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var single v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &single)
	suite.Assert().Equal(jan.Data.ID, single.Data.ID)
}
