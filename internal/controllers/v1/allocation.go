package v1

import (
	"net/http"

	"github.com/fundledger/backend/internal/auth"
	"github.com/fundledger/backend/internal/httputil"
	"github.com/fundledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterAllocationRoutes registers the routes for allocations with
// the RouterGroup that is passed.
func (co Controller) RegisterAllocationRoutes(r *gin.RouterGroup) {
	read := auth.RequireRole(auth.ReadRoles...)
	write := auth.RequireRole(auth.PostingRoles...)

	// Root group
	{
		r.OPTIONS("", OptionsAllocationList)
		r.GET("", read, GetAllocations)
		r.POST("", write, co.CreateAllocations)
	}

	// Allocation with ID
	{
		r.OPTIONS("/:id", OptionsAllocationDetail)
		r.GET("/:id", read, GetAllocation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations [options]
func OptionsAllocationList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs. Allocations are immutable.
// @Tags			Allocations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocations/{id} [options]
func OptionsAllocationDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Allocation{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create allocations
// @Description	Allocates parts of fundings to projects. The sum of all allocations of a funding never exceeds its amount, a rejected allocation returns the unallocated amount.
// @Tags			Allocations
// @Produce		json
// @Success		201				{object}	AllocationCreateResponse
// @Failure		400				{object}	AllocationCreateResponse
// @Failure		403				{object}	httpError
// @Failure		404				{object}	AllocationCreateResponse
// @Failure		409				{object}	AllocationCreateResponse
// @Failure		500				{object}	AllocationCreateResponse
// @Param			allocations		body		[]AllocationEditable	true	"Allocations"
// @Security		Bearer
// @Router			/v1/allocations [post]
func (co Controller) CreateAllocations(c *gin.Context) {
	var editables []AllocationEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := AllocationCreateResponse{}

	for _, editable := range editables {
		allocation, err := co.Tracker.AllocateToProject(c.Request.Context(), models.DB, editable.input(auth.Subject(c)))
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newAllocation(c, allocation, decimal.Zero)
		r.Data = append(r.Data, AllocationResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List allocations
// @Description	Returns allocations with their current budget, ordered by date
// @Tags			Allocations
// @Produce		json
// @Success		200			{object}	AllocationListResponse
// @Failure		400			{object}	AllocationListResponse
// @Failure		403			{object}	httpError
// @Failure		500			{object}	AllocationListResponse
// @Param			funding		query		string	false	"Filter by funding ID"
// @Param			project		query		string	false	"Filter by project ID"
// @Param			subProject	query		string	false	"Filter by sub project ID"
// @Security		Bearer
// @Router			/v1/allocations [get]
func GetAllocations(c *gin.Context) {
	var filter AllocationQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AllocationListResponse{
			Error: &s,
		})
		return
	}

	query, err := filter.query()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationListResponse{
			Error: &s,
		})
		return
	}

	var allocations []models.Allocation
	err = models.DB.Where(&query).Order("date(date) ASC, created_at ASC").Find(&allocations).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Allocation, 0)
	for _, allocation := range allocations {
		spent, err := allocation.Spent(models.DB)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), AllocationListResponse{
				Error: &s,
			})
			return
		}

		data = append(data, newAllocation(c, allocation, spent))
	}

	c.JSON(http.StatusOK, AllocationListResponse{Data: data})
}

// @Summary		Get allocation
// @Description	Returns a specific allocation with its current budget
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationResponse
// @Failure		400	{object}	AllocationResponse
// @Failure		403	{object}	httpError
// @Failure		404	{object}	AllocationResponse
// @Failure		500	{object}	AllocationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		Bearer
// @Router			/v1/allocations/{id} [get]
func GetAllocation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	var allocation models.Allocation
	err = models.DB.First(&allocation, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	spent, err := allocation.Spent(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	data := newAllocation(c, allocation, spent)
	c.JSON(http.StatusOK, AllocationResponse{Data: &data})
}
