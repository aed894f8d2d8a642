package v1_test

import (
	"fmt"
	"net/http"

	"github.com/fundledger/backend/internal/budget"
	v1 "github.com/fundledger/backend/internal/controllers/v1"
	"github.com/fundledger/backend/internal/types"
	"github.com/fundledger/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBudgets() {
	b := createTestBudgetFixture(suite.T())
	meals := createTestProject(suite.T(), v1.ProjectEditable{Name: "School Meals"})
	mealsAllocation := createTestAllocation(suite.T(), v1.AllocationEditable{
		FundingID: b.funding.ID,
		ProjectID: meals.Data.ID,
		Amount:    decimal.NewFromInt(4000),
		Date:      types.NewDate(2024, 2, 1),
	})

	createTestExpense(suite.T(), b.chart, v1.ExpenseEditable{AllocationID: b.allocation.ID, Amount: decimal.NewFromInt(4000)})
	createTestExpense(suite.T(), b.chart, v1.ExpenseEditable{AllocationID: mealsAllocation.Data.ID, Amount: decimal.NewFromInt(4000)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)

	water := response.Data[0]
	suite.Assert().Equal(b.allocation.ID, water.AllocationID)
	suite.Assert().Equal("Clean Water", water.ProjectName)
	suite.Assert().Equal("Global Water Fund", water.FundingDonor)
	suite.Assert().True(water.AllocatedAmount.Equal(decimal.NewFromInt(6000)))
	suite.Assert().True(water.SpentAmount.Equal(decimal.NewFromInt(4000)))
	suite.Assert().True(water.AvailableAmount.Equal(decimal.NewFromInt(2000)))
	suite.Assert().Equal(budget.StatePartiallySpent, water.State)

	suite.Assert().Equal(mealsAllocation.Data.ID, response.Data[1].AllocationID)
	suite.Assert().Equal(budget.StateExhausted, response.Data[1].State)
	suite.Assert().True(response.Data[1].AvailableAmount.IsZero())

	r = test.Request(suite.T(), http.MethodGet, meals.Data.Links.Budgets, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("School Meals", response.Data[0].ProjectName)
}

func (suite *TestSuiteStandard) TestBudgetsOpen() {
	b := createTestBudgetFixture(suite.T())

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets?project=%s", b.project.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(budget.StateOpen, response.Data[0].State)
	suite.Assert().True(response.Data[0].SpentAmount.IsZero())
}

func (suite *TestSuiteStandard) TestBudgetsFails() {
	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"Unknown project", fmt.Sprintf("project=%s", uuid.New()), http.StatusNotFound},
		{"Invalid project ID", "project=NotAUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets?%s", tt.query), "")
		test.AssertHTTPStatus(suite.T(), &r, tt.status)
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 0)

	suite.CloseDB()
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
