package models_test

import (
	"github.com/fundledger/backend/internal/models"
	"github.com/fundledger/backend/internal/types"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestProjectNameUnique() {
	_ = suite.createTestProject(models.Project{Name: "Clean Water"})

	err := models.DB.Create(&models.Project{Name: "Clean Water"}).Error
	suite.Assert().ErrorIs(err, models.ErrProjectNameNotUnique)
}

func (suite *TestSuiteStandard) TestProjectNameEmpty() {
	err := models.DB.Create(&models.Project{Name: "  "}).Error
	suite.Assert().ErrorIs(err, models.ErrValidation)
}

func (suite *TestSuiteStandard) TestSubProject() {
	project := suite.createTestProject(models.Project{})
	other := suite.createTestProject(models.Project{})

	suite.Require().Nil(models.DB.Create(&models.SubProject{ProjectID: project.ID, Name: "Village A"}).Error)

	// Same name in another project is fine
	suite.Require().Nil(models.DB.Create(&models.SubProject{ProjectID: other.ID, Name: "Village A"}).Error)

	err := models.DB.Create(&models.SubProject{ProjectID: project.ID, Name: "Village A"}).Error
	suite.Assert().ErrorIs(err, models.ErrSubProjectNameNotUnique)

	err = models.DB.Create(&models.SubProject{ProjectID: uuid.New(), Name: "Village B"}).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestReportingPeriod() {
	period := models.ReportingPeriod{
		Name:      "FY 2024",
		StartDate: types.NewDate(2024, 1, 1),
		EndDate:   types.NewDate(2024, 12, 31),
	}
	suite.Require().Nil(models.DB.Create(&period).Error)

	var loaded models.ReportingPeriod
	suite.Require().Nil(models.DB.First(&loaded, period.ID).Error)
	suite.Assert().Equal("2024-01-01", loaded.StartDate.String())
	suite.Assert().Equal("2024-12-31", loaded.EndDate.String())

	err := models.DB.Create(&models.ReportingPeriod{Name: "FY 2024", StartDate: period.StartDate, EndDate: period.EndDate}).Error
	suite.Assert().ErrorIs(err, models.ErrReportingPeriodNameNotUnique)

	err = models.DB.Create(&models.ReportingPeriod{Name: "Backwards", StartDate: period.EndDate, EndDate: period.StartDate}).Error
	suite.Assert().ErrorIs(err, models.ErrReportingPeriodDates)

	err = models.DB.Create(&models.ReportingPeriod{Name: "Open", StartDate: period.StartDate}).Error
	suite.Assert().ErrorIs(err, models.ErrValidation)
}

func (suite *TestSuiteStandard) TestExpenseTaxCategory() {
	expense := models.Expense{}
	suite.Require().Nil(expense.BeforeSave(models.DB))
	suite.Assert().Equal(models.TaxCategoryNone, expense.TaxCategory)

	expense.TaxCategory = "Sales"
	suite.Assert().ErrorIs(expense.BeforeSave(models.DB), models.ErrValidation)
}
