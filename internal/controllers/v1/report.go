package v1

import (
	"net/http"

	"github.com/fundledger/backend/internal/auth"
	"github.com/fundledger/backend/internal/balance"
	"github.com/fundledger/backend/internal/httputil"
	"github.com/fundledger/backend/internal/models"
	"github.com/fundledger/backend/internal/reports"
	"github.com/fundledger/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// ReportQueryFilter are the query parameters of the reports.
//
// Every parameter is also accepted in its snake case form, e.g. period
// as reporting_period_id.
type ReportQueryFilter struct {
	Account    string     `form:"account"`    // Ledger of a single account
	Project    string     `form:"project"`    // Ledger of the transactions mirroring allocations and expenses of a project
	SubProject string     `form:"subProject"` // Ledger of the transactions mirroring allocations and expenses of a sub project
	Period     string     `form:"period"`     // Reporting period. Its dates take precedence over start, end and asOf
	Start      types.Date `form:"start"`      // First day of the report
	End        types.Date `form:"end"`        // Last day of the report
	AsOf       types.Date `form:"asOf"`       // Date of the balance sheet

	AccountID         string     `form:"account_id"`
	ProjectID         string     `form:"project_id"`
	SubProjectID      string     `form:"sub_project_id"`
	ReportingPeriodID string     `form:"reporting_period_id"`
	StartDate         types.Date `form:"start_date"`
	EndDate           types.Date `form:"end_date"`
	AsOfDate          types.Date `form:"as_of_date"`
}

// pick returns the value that is set. Setting both to different values is
// an error.
func pick(name, alias, v, a string) (string, error) {
	if a == "" {
		return v, nil
	}

	if v != "" && v != a {
		return "", models.Validationf("%s and %s must not differ", name, alias)
	}

	return a, nil
}

// merge folds the snake case parameters into the short ones.
func (f ReportQueryFilter) merge() (ReportQueryFilter, error) {
	var err error
	for _, s := range []struct {
		name, alias string
		v           *string
		a           string
	}{
		{"account", "account_id", &f.Account, f.AccountID},
		{"project", "project_id", &f.Project, f.ProjectID},
		{"subProject", "sub_project_id", &f.SubProject, f.SubProjectID},
		{"period", "reporting_period_id", &f.Period, f.ReportingPeriodID},
	} {
		if *s.v, err = pick(s.name, s.alias, *s.v, s.a); err != nil {
			return ReportQueryFilter{}, err
		}
	}

	for _, d := range []struct {
		name, alias string
		v           *types.Date
		a           types.Date
	}{
		{"start", "start_date", &f.Start, f.StartDate},
		{"end", "end_date", &f.End, f.EndDate},
		{"asOf", "as_of_date", &f.AsOf, f.AsOfDate},
	} {
		if d.a.IsZero() {
			continue
		}

		if !d.v.IsZero() && !d.v.Equal(d.a) {
			return ReportQueryFilter{}, models.Validationf("%s and %s must not differ", d.name, d.alias)
		}
		*d.v = d.a
	}

	return f, nil
}

// query returns the report query for the filter
func (f ReportQueryFilter) query() (reports.Query, error) {
	f, err := f.merge()
	if err != nil {
		return reports.Query{}, err
	}

	q := reports.Query{
		StartDate: f.Start,
		EndDate:   f.End,
		AsOfDate:  f.AsOf,
	}

	if q.AccountID, err = optionalUUID(f.Account); err != nil {
		return reports.Query{}, err
	}

	if q.ProjectID, err = optionalUUID(f.Project); err != nil {
		return reports.Query{}, err
	}

	if q.SubProjectID, err = optionalUUID(f.SubProject); err != nil {
		return reports.Query{}, err
	}

	if q.ReportingPeriodID, err = optionalUUID(f.Period); err != nil {
		return reports.Query{}, err
	}

	return q, nil
}

type LedgerReportResponse struct {
	Data     *reports.LedgerReport `json:"data"`                                                          // The ledger
	Currency string                `json:"currency" example:"USD"`                                        // Currency of all amounts
	Error    *string               `json:"error" example:"the start date must not be after the end date"` // The error, if any occurred
}

type BalanceSheetResponse struct {
	Data     *balance.BalanceSheet `json:"data"`                                                             // The balance sheet
	Currency string                `json:"currency" example:"USD"`                                           // Currency of all amounts
	Error    *string               `json:"error" example:"there is no reporting period matching your query"` // The error, if any occurred
}

type IncomeStatementResponse struct {
	Data     *balance.IncomeStatement `json:"data"`                                                          // The income statement
	Currency string                   `json:"currency" example:"USD"`                                        // Currency of all amounts
	Error    *string                  `json:"error" example:"the start date must not be after the end date"` // The error, if any occurred
}

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func (co Controller) RegisterReportRoutes(r *gin.RouterGroup) {
	read := auth.RequireRole(auth.ReportRoles...)

	r.OPTIONS("/ledger", OptionsReport)
	r.GET("/ledger", read, co.GetLedger)
	r.OPTIONS("/balance-sheet", OptionsReport)
	r.GET("/balance-sheet", read, co.GetBalanceSheet)
	r.OPTIONS("/income-statement", OptionsReport)
	r.GET("/income-statement", read, co.GetIncomeStatement)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/ledger [options]
// @Router			/v1/reports/balance-sheet [options]
// @Router			/v1/reports/income-statement [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Ledger
// @Description	Returns the running ledger of every account with entries in the date range. Running balances start at zero at the beginning of the range. Parameters are also accepted in snake case, e.g. reporting_period_id or as_of_date.
// @Tags			Reports
// @Produce		json
// @Success		200			{object}	LedgerReportResponse
// @Failure		400			{object}	LedgerReportResponse
// @Failure		403			{object}	httpError
// @Failure		404			{object}	LedgerReportResponse
// @Failure		500			{object}	LedgerReportResponse
// @Param			account		query		string	false	"Account ID"
// @Param			project		query		string	false	"Project ID"
// @Param			subProject	query		string	false	"Sub project ID"
// @Param			period		query		string	false	"Reporting period ID"
// @Param			start		query		string	false	"First day, YYYY-MM-DD"
// @Param			end			query		string	false	"Last day, YYYY-MM-DD"
// @Security		Bearer
// @Router			/v1/reports/ledger [get]
func (co Controller) GetLedger(c *gin.Context) {
	q, err := bindReportQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LedgerReportResponse{Currency: co.Currency, Error: &s})
		return
	}

	report, err := reports.Ledger(c.Request.Context(), models.DB, q)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LedgerReportResponse{Currency: co.Currency, Error: &s})
		return
	}

	c.JSON(http.StatusOK, LedgerReportResponse{Data: &report, Currency: co.Currency})
}

// @Summary		Balance sheet
// @Description	Returns the balances of all asset, liability and equity accounts at the end of the period, at asOf or today. Parameters are also accepted in snake case, e.g. reporting_period_id or as_of_date.
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	BalanceSheetResponse
// @Failure		400		{object}	BalanceSheetResponse
// @Failure		403		{object}	httpError
// @Failure		404		{object}	BalanceSheetResponse
// @Failure		500		{object}	BalanceSheetResponse
// @Param			period	query		string	false	"Reporting period ID"
// @Param			asOf	query		string	false	"Date of the balance sheet, YYYY-MM-DD"
// @Security		Bearer
// @Router			/v1/reports/balance-sheet [get]
func (co Controller) GetBalanceSheet(c *gin.Context) {
	q, err := bindReportQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BalanceSheetResponse{Currency: co.Currency, Error: &s})
		return
	}

	sheet, err := reports.BalanceSheet(c.Request.Context(), models.DB, q)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BalanceSheetResponse{Currency: co.Currency, Error: &s})
		return
	}

	c.JSON(http.StatusOK, BalanceSheetResponse{Data: &sheet, Currency: co.Currency})
}

// @Summary		Income statement
// @Description	Returns income, expenses and net income for the period or date range. Defaults to the current calendar year. Parameters are also accepted in snake case, e.g. reporting_period_id or as_of_date.
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	IncomeStatementResponse
// @Failure		400		{object}	IncomeStatementResponse
// @Failure		403		{object}	httpError
// @Failure		404		{object}	IncomeStatementResponse
// @Failure		500		{object}	IncomeStatementResponse
// @Param			period	query		string	false	"Reporting period ID"
// @Param			start	query		string	false	"First day, YYYY-MM-DD"
// @Param			end		query		string	false	"Last day, YYYY-MM-DD"
// @Security		Bearer
// @Router			/v1/reports/income-statement [get]
func (co Controller) GetIncomeStatement(c *gin.Context) {
	q, err := bindReportQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeStatementResponse{Currency: co.Currency, Error: &s})
		return
	}

	statement, err := reports.IncomeStatement(c.Request.Context(), models.DB, q)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeStatementResponse{Currency: co.Currency, Error: &s})
		return
	}

	c.JSON(http.StatusOK, IncomeStatementResponse{Data: &statement, Currency: co.Currency})
}

func bindReportQuery(c *gin.Context) (reports.Query, error) {
	var filter ReportQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		return reports.Query{}, err
	}

	return filter.query()
}
