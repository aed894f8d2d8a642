package models

import (
	"errors"
	"strings"

	"github.com/fundledger/backend/internal/types"
	"gorm.io/gorm"
)

var (
	ErrReportingPeriodNameNotUnique = errors.New("the reporting period name must be unique")
	ErrReportingPeriodDates         = errors.New("the start date of the reporting period must not be after its end date")
)

// ReportingPeriod is a named date range used to parametrize reports.
type ReportingPeriod struct {
	DefaultModel
	Name      string     `json:"name" gorm:"uniqueIndex" example:"FY 2024"` // Name of the period
	StartDate types.Date `json:"startDate" example:"2024-01-01"`            // First day of the period
	EndDate   types.Date `json:"endDate" example:"2024-12-31"`              // Last day of the period
	IsActive  bool       `json:"isActive" example:"true"`                   // Is this the period currently reported on?
}

func (p *ReportingPeriod) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)

	if p.Name == "" {
		return Validationf("the reporting period name must not be empty")
	}

	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return Validationf("the reporting period needs a start and an end date")
	}

	if p.StartDate.After(p.EndDate) {
		return ErrReportingPeriodDates
	}

	return nil
}
