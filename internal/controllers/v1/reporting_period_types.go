package v1

import (
	"fmt"

	"github.com/fundledger/backend/internal/models"
	"github.com/fundledger/backend/internal/types"
	"github.com/gin-gonic/gin"
)

type ReportingPeriodEditable struct {
	Name      string     `json:"name" example:"FY 2024"`                                            // Name of the period, must be unique
	StartDate types.Date `json:"startDate" swaggertype:"string" format:"date" example:"2024-01-01"` // First day of the period
	EndDate   types.Date `json:"endDate" swaggertype:"string" format:"date" example:"2024-12-31"`   // Last day of the period
	IsActive  bool       `json:"isActive" example:"true"`                                           // Is this the period currently reported on?
}

// model returns the database resource for the editable fields
func (editable ReportingPeriodEditable) model() models.ReportingPeriod {
	return models.ReportingPeriod{
		Name:      editable.Name,
		StartDate: editable.StartDate,
		EndDate:   editable.EndDate,
		IsActive:  editable.IsActive,
	}
}

type ReportingPeriodLinks struct {
	Self            string `json:"self" example:"https://example.com/api/v1/reporting-periods/c1d2e3f4-a5b6-4c7d-8e9f-0a1b2c3d4e5f"`                          // The reporting period itself
	Ledger          string `json:"ledger" example:"https://example.com/api/v1/reports/ledger?period=c1d2e3f4-a5b6-4c7d-8e9f-0a1b2c3d4e5f"`                    // Ledger for the period
	BalanceSheet    string `json:"balanceSheet" example:"https://example.com/api/v1/reports/balance-sheet?period=c1d2e3f4-a5b6-4c7d-8e9f-0a1b2c3d4e5f"`       // Balance sheet at the end of the period
	IncomeStatement string `json:"incomeStatement" example:"https://example.com/api/v1/reports/income-statement?period=c1d2e3f4-a5b6-4c7d-8e9f-0a1b2c3d4e5f"` // Income statement for the period
}

// ReportingPeriod is the API v1 representation of a reporting period.
type ReportingPeriod struct {
	models.DefaultModel
	ReportingPeriodEditable
	Links ReportingPeriodLinks `json:"links"`
}

func newReportingPeriod(c *gin.Context, model models.ReportingPeriod) ReportingPeriod {
	url := c.GetString(string(models.DBContextURL))

	return ReportingPeriod{
		DefaultModel: model.DefaultModel,
		ReportingPeriodEditable: ReportingPeriodEditable{
			Name:      model.Name,
			StartDate: model.StartDate,
			EndDate:   model.EndDate,
			IsActive:  model.IsActive,
		},
		Links: ReportingPeriodLinks{
			Self:            fmt.Sprintf("%s/v1/reporting-periods/%s", url, model.ID),
			Ledger:          fmt.Sprintf("%s/v1/reports/ledger?period=%s", url, model.ID),
			BalanceSheet:    fmt.Sprintf("%s/v1/reports/balance-sheet?period=%s", url, model.ID),
			IncomeStatement: fmt.Sprintf("%s/v1/reports/income-statement?period=%s", url, model.ID),
		},
	}
}

type ReportingPeriodListResponse struct {
	Data  []ReportingPeriod `json:"data"`                                                          // List of reporting periods
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ReportingPeriodCreateResponse struct {
	Error *string                   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ReportingPeriodResponse `json:"data"`                                                          // List of created reporting periods
}

func (p *ReportingPeriodCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	p.Data = append(p.Data, ReportingPeriodResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ReportingPeriodResponse struct {
	Data  *ReportingPeriod `json:"data"`                                                     // Data for the reporting period
	Error *string          `json:"error" example:"the reporting period name must be unique"` // The error, if any occurred for this reporting period
}
