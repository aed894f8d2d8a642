package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/fundledger/backend/internal/auth"
	v1 "github.com/fundledger/backend/internal/controllers/v1"
	"github.com/fundledger/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// TestPermissionsDenied verifies that callers without a permitted role
// are rejected before the request is processed.
func (suite *TestSuiteStandard) TestPermissionsDenied() {
	id := uuid.New()

	tests := []struct {
		role   auth.Role
		method string
		path   string
	}{
		{auth.RoleStaff, http.MethodGet, "/v1/accounts"},
		{auth.RoleStaff, http.MethodGet, "/v1/accounts/tree"},
		{auth.RoleProjectLead, http.MethodGet, fmt.Sprintf("/v1/accounts/%s", id)},
		{auth.RoleAccountant, http.MethodPost, "/v1/accounts"},
		{auth.RoleAccountant, http.MethodPatch, fmt.Sprintf("/v1/accounts/%s", id)},
		{auth.RoleAccountant, http.MethodDelete, fmt.Sprintf("/v1/accounts/%s", id)},
		{auth.RoleAccountant, http.MethodPost, "/v1/reporting-periods"},
		{auth.RoleStaff, http.MethodGet, "/v1/reporting-periods"},
		{auth.RoleStaff, http.MethodGet, "/v1/transactions"},
		{auth.RoleProjectLead, http.MethodPost, "/v1/transactions"},
		{auth.RoleStaff, http.MethodPost, fmt.Sprintf("/v1/transactions/%s/reverse", id)},
		{auth.RoleStaff, http.MethodPost, "/v1/fundings"},
		{auth.RoleProjectLead, http.MethodPost, "/v1/allocations"},
		{auth.RoleFinanceManager, http.MethodPost, "/v1/projects"},
		{auth.RoleStaff, http.MethodPost, fmt.Sprintf("/v1/projects/%s/sub-projects", id)},
		{auth.RoleAccountant, http.MethodGet, "/v1/reports/ledger"},
		{auth.RoleProjectLead, http.MethodGet, "/v1/reports/balance-sheet"},
		{auth.RoleStaff, http.MethodGet, "/v1/reports/income-statement"},
	}

	for _, tt := range tests {
		suite.T().Run(fmt.Sprintf("%s %s %s", tt.role, tt.method, tt.path), func(t *testing.T) {
			r := test.Request(t, tt.method, "http://example.com"+tt.path, "", test.As(t, tt.role))
			test.AssertHTTPStatus(t, &r, http.StatusForbidden)
		})
	}
}

// TestPermissionsAllowed verifies that every permitted role passes the
// role check.
func (suite *TestSuiteStandard) TestPermissionsAllowed() {
	tests := []struct {
		path  string
		roles []auth.Role
	}{
		{"/v1/accounts", auth.ChartReadRoles},
		{"/v1/reporting-periods", auth.ChartReadRoles},
		{"/v1/transactions", auth.ChartReadRoles},
		{"/v1/projects", auth.ReadRoles},
		{"/v1/fundings", auth.ReadRoles},
		{"/v1/allocations", auth.ReadRoles},
		{"/v1/expenses", auth.ReadRoles},
		{"/v1/budgets", auth.ReadRoles},
		{"/v1/reports/income-statement", auth.ReportRoles},
	}

	for _, tt := range tests {
		for _, role := range tt.roles {
			suite.T().Run(fmt.Sprintf("%s %s", role, tt.path), func(t *testing.T) {
				r := test.Request(t, http.MethodGet, "http://example.com"+tt.path, "", test.As(t, role))
				test.AssertHTTPStatus(t, &r, http.StatusOK)
			})
		}
	}
}

// TestPermissionsProjectLead verifies that project leads manage projects
// and record expenses.
func (suite *TestSuiteStandard) TestPermissionsProjectLead() {
	b := createTestBudgetFixture(suite.T())
	lead := test.As(suite.T(), auth.RoleProjectLead)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/projects", []v1.ProjectEditable{{Name: "School Meals"}}, lead)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", []v1.ExpenseEditable{{
		AllocationID:      b.allocation.ID,
		Amount:            b.allocation.Amount,
		Category:          "Materials",
		PaidFromAccountID: b.chart.Bank.ID,
		AccountID:         b.chart.Supplies.ID,
	}}, lead)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ExpenseCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	assert.Equal(suite.T(), "project_lead@example.org", response.Data[0].Data.CreatedBy)
}
