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
	"github.com/stretchr/testify/assert"
)

func createTestReportingPeriod(t *testing.T, p v1.ReportingPeriodEditable, expectedStatus ...int) v1.ReportingPeriodResponse {
	if p.Name == "" {
		p.Name = uuid.NewString()
	}

	if p.StartDate.IsZero() {
		p.StartDate = types.NewDate(2024, 1, 1)
	}

	if p.EndDate.IsZero() {
		p.EndDate = types.NewDate(2024, 12, 31)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.ReportingPeriodEditable{p}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/reporting-periods", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var period v1.ReportingPeriodCreateResponse
	test.DecodeResponse(t, &r, &period)

	if r.Code == http.StatusCreated {
		return period.Data[0]
	}

	return v1.ReportingPeriodResponse{}
}

// TestReportingPeriodsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestReportingPeriodsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestReportingPeriod(t, v1.ReportingPeriodEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/reporting-periods", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.ReportingPeriodListResponse
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

// TestReportingPeriodsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestReportingPeriodsOptions() {
	tests := []struct {
		name   string
		id     string // path at the Reporting Periods endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Reporting Period with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Reporting Period exists", createTestReportingPeriod(suite.T(), v1.ReportingPeriodEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/reporting-periods", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestReportingPeriodsCreate() {
	p := createTestReportingPeriod(suite.T(), v1.ReportingPeriodEditable{
		Name:      "FY 2024",
		StartDate: types.NewDate(2024, 1, 1),
		EndDate:   types.NewDate(2024, 12, 31),
		IsActive:  true,
	})
	suite.Assert().True(p.Data.IsActive)
	suite.Assert().Equal("2024-12-31", p.Data.EndDate.String())
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/reports/balance-sheet?period=%s", p.Data.ID), p.Data.Links.BalanceSheet)

	tests := []struct {
		name     string
		editable v1.ReportingPeriodEditable
		err      string
	}{
		{"Duplicate name", v1.ReportingPeriodEditable{Name: "FY 2024", StartDate: types.NewDate(2025, 1, 1), EndDate: types.NewDate(2025, 12, 31)}, models.ErrReportingPeriodNameNotUnique.Error()},
		{"Start after end", v1.ReportingPeriodEditable{Name: "Backwards", StartDate: types.NewDate(2025, 1, 2), EndDate: types.NewDate(2025, 1, 1)}, models.ErrReportingPeriodDates.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/reporting-periods", []v1.ReportingPeriodEditable{tt.editable})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, r.Body.String(), tt.err)
		})
	}

	// A missing end date is rejected
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/reporting-periods", `[{ "name": "Open ended", "startDate": "2024-01-01" }]`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestReportingPeriodsGet() {
	q1 := createTestReportingPeriod(suite.T(), v1.ReportingPeriodEditable{Name: "Q1 2024", StartDate: types.NewDate(2024, 1, 1), EndDate: types.NewDate(2024, 3, 31)})
	fy := createTestReportingPeriod(suite.T(), v1.ReportingPeriodEditable{Name: "FY 2024", StartDate: types.NewDate(2024, 1, 1), EndDate: types.NewDate(2024, 12, 31)})
	q2 := createTestReportingPeriod(suite.T(), v1.ReportingPeriodEditable{Name: "Q2 2024", StartDate: types.NewDate(2024, 4, 1), EndDate: types.NewDate(2024, 6, 30)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reporting-periods", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.ReportingPeriodListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 3)
	suite.Assert().Equal(q2.Data.ID, list.Data[0].ID, "the most recent period is first")
	suite.Assert().Equal(fy.Data.ID, list.Data[1].ID, "periods with the same start are ordered by name")
	suite.Assert().Equal(q1.Data.ID, list.Data[2].ID)

	r = test.Request(suite.T(), http.MethodGet, q1.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var single v1.ReportingPeriodResponse
	test.DecodeResponse(suite.T(), &r, &single)
	suite.Assert().Equal("Q1 2024", single.Data.Name)
}
