package v1

import (
	"net/http"

	"github.com/fundledger/backend/internal/auth"
	"github.com/fundledger/backend/internal/httputil"
	"github.com/fundledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterReportingPeriodRoutes registers the routes for reporting periods with
// the RouterGroup that is passed.
func RegisterReportingPeriodRoutes(r *gin.RouterGroup) {
	read := auth.RequireRole(auth.ChartReadRoles...)
	write := auth.RequireRole(auth.ChartWriteRoles...)

	// Root group
	{
		r.OPTIONS("", OptionsReportingPeriodList)
		r.GET("", read, GetReportingPeriods)
		r.POST("", write, CreateReportingPeriods)
	}

	// Reporting period with ID
	{
		r.OPTIONS("/:id", OptionsReportingPeriodDetail)
		r.GET("/:id", read, GetReportingPeriod)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reporting Periods
// @Success		204
// @Router			/v1/reporting-periods [options]
func OptionsReportingPeriodList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reporting Periods
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/reporting-periods/{id} [options]
func OptionsReportingPeriodDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.ReportingPeriod{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create reporting periods
// @Description	Creates new reporting periods
// @Tags			Reporting Periods
// @Produce		json
// @Success		201					{object}	ReportingPeriodCreateResponse
// @Failure		400					{object}	ReportingPeriodCreateResponse
// @Failure		403					{object}	httpError
// @Failure		500					{object}	ReportingPeriodCreateResponse
// @Param			reportingPeriods	body		[]ReportingPeriodEditable	true	"Reporting periods"
// @Security		Bearer
// @Router			/v1/reporting-periods [post]
func CreateReportingPeriods(c *gin.Context) {
	var editables []ReportingPeriodEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReportingPeriodCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ReportingPeriodCreateResponse{}

	for _, editable := range editables {
		period := editable.model()
		err = models.DB.Create(&period).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newReportingPeriod(c, period)
		r.Data = append(r.Data, ReportingPeriodResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List reporting periods
// @Description	Returns all reporting periods, most recent first
// @Tags			Reporting Periods
// @Produce		json
// @Success		200	{object}	ReportingPeriodListResponse
// @Failure		403	{object}	httpError
// @Failure		500	{object}	ReportingPeriodListResponse
// @Security		Bearer
// @Router			/v1/reporting-periods [get]
func GetReportingPeriods(c *gin.Context) {
	var periods []models.ReportingPeriod
	err := models.DB.Order("date(start_date) DESC, name ASC").Find(&periods).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportingPeriodListResponse{
			Error: &s,
		})
		return
	}

	data := make([]ReportingPeriod, 0)
	for _, period := range periods {
		data = append(data, newReportingPeriod(c, period))
	}

	c.JSON(http.StatusOK, ReportingPeriodListResponse{Data: data})
}

// @Summary		Get reporting period
// @Description	Returns a specific reporting period
// @Tags			Reporting Periods
// @Produce		json
// @Success		200	{object}	ReportingPeriodResponse
// @Failure		400	{object}	ReportingPeriodResponse
// @Failure		403	{object}	httpError
// @Failure		404	{object}	ReportingPeriodResponse
// @Failure		500	{object}	ReportingPeriodResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		Bearer
// @Router			/v1/reporting-periods/{id} [get]
func GetReportingPeriod(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportingPeriodResponse{
			Error: &s,
		})
		return
	}

	var period models.ReportingPeriod
	err = models.DB.First(&period, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportingPeriodResponse{
			Error: &s,
		})
		return
	}

	data := newReportingPeriod(c, period)
	c.JSON(http.StatusOK, ReportingPeriodResponse{Data: &data})
}
