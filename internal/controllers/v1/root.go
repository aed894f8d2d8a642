// Package v1 implements the HTTP handlers of the fundledger API.
package v1

import (
	"net/http"

	"github.com/fundledger/backend/internal/auth"
	"github.com/fundledger/backend/internal/budget"
	"github.com/fundledger/backend/internal/events"
	"github.com/fundledger/backend/internal/httputil"
	"github.com/fundledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// Controller carries the dependencies of the handlers that write through
// the budget tracker.
type Controller struct {
	Tracker   *budget.Tracker
	Publisher events.Publisher // Announces manual postings, may be nil
	Currency  string           // ISO 4217 code all amounts are denominated in
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
//
// The group must authenticate the caller, the routes check the caller's role.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", auth.RequireRole(auth.ReadRoles...), co.Get)
	r.OPTIONS("", Options)

	RegisterAccountRoutes(r.Group("/accounts"))
	co.RegisterTransactionRoutes(r.Group("/transactions"))
	RegisterProjectRoutes(r.Group("/projects"))
	RegisterReportingPeriodRoutes(r.Group("/reporting-periods"))
	co.RegisterFundingRoutes(r.Group("/fundings"))
	co.RegisterAllocationRoutes(r.Group("/allocations"))
	co.RegisterExpenseRoutes(r.Group("/expenses"))
	RegisterBudgetRoutes(r.Group("/budgets"))
	co.RegisterReportRoutes(r.Group("/reports"))
}

type Response struct {
	Links    Links  `json:"links"`                  // Links for the v1 API
	Currency string `json:"currency" example:"USD"` // Currency of all amounts
}

type Links struct {
	Accounts         string `json:"accounts" example:"https://example.com/api/v1/accounts"`                        // URL of Account collection endpoint
	AccountTree      string `json:"accountTree" example:"https://example.com/api/v1/accounts/tree"`                // URL of the chart of accounts tree
	Transactions     string `json:"transactions" example:"https://example.com/api/v1/transactions"`                // URL of Transaction collection endpoint
	Projects         string `json:"projects" example:"https://example.com/api/v1/projects"`                        // URL of Project collection endpoint
	ReportingPeriods string `json:"reportingPeriods" example:"https://example.com/api/v1/reporting-periods"`       // URL of Reporting Period collection endpoint
	Fundings         string `json:"fundings" example:"https://example.com/api/v1/fundings"`                        // URL of Funding collection endpoint
	Allocations      string `json:"allocations" example:"https://example.com/api/v1/allocations"`                  // URL of Allocation collection endpoint
	Expenses         string `json:"expenses" example:"https://example.com/api/v1/expenses"`                        // URL of Expense collection endpoint
	Budgets          string `json:"budgets" example:"https://example.com/api/v1/budgets"`                          // URL of the allocation budgets
	Ledger           string `json:"ledger" example:"https://example.com/api/v1/reports/ledger"`                    // URL of the ledger report
	BalanceSheet     string `json:"balanceSheet" example:"https://example.com/api/v1/reports/balance-sheet"`       // URL of the balance sheet report
	IncomeStatement  string `json:"incomeStatement" example:"https://example.com/api/v1/reports/income-statement"` // URL of the income statement report
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Security		Bearer
//	@Router			/v1 [get]
func (co Controller) Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Currency: co.Currency,
		Links: Links{
			Accounts:         url + "/v1/accounts",
			AccountTree:      url + "/v1/accounts/tree",
			Transactions:     url + "/v1/transactions",
			Projects:         url + "/v1/projects",
			ReportingPeriods: url + "/v1/reporting-periods",
			Fundings:         url + "/v1/fundings",
			Allocations:      url + "/v1/allocations",
			Expenses:         url + "/v1/expenses",
			Budgets:          url + "/v1/budgets",
			Ledger:           url + "/v1/reports/ledger",
			BalanceSheet:     url + "/v1/reports/balance-sheet",
			IncomeStatement:  url + "/v1/reports/income-statement",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
