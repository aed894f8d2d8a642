package v1

import (
	"net/http"

	"github.com/fundledger/backend/internal/auth"
	"github.com/fundledger/backend/internal/budget"
	"github.com/fundledger/backend/internal/httputil"
	"github.com/fundledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type BudgetListResponse struct {
	Data  []budget.AllocationBudget `json:"data"`                                                          // Budgets of the allocations
	Error *string                   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	Project string `form:"project"` // By ID of the project
}

// RegisterBudgetRoutes registers the routes for allocation budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBudgetList)
	r.GET("", auth.RequireRole(auth.ReadRoles...), GetBudgets)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		List allocation budgets
// @Description	Returns the allocated, spent and available amounts of all allocations. The amounts are computed on every request.
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetListResponse
// @Failure		400		{object}	BudgetListResponse
// @Failure		403		{object}	httpError
// @Failure		404		{object}	BudgetListResponse
// @Failure		500		{object}	BudgetListResponse
// @Param			project	query		string	false	"Filter by project ID"
// @Security		Bearer
// @Router			/v1/budgets [get]
func GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetListResponse{
			Error: &s,
		})
		return
	}

	projectID, err := optionalUUID(filter.Project)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &s,
		})
		return
	}

	if projectID != nil {
		err = models.DB.First(&models.Project{}, *projectID).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), BudgetListResponse{
				Error: &s,
			})
			return
		}
	}

	budgets, err := budget.ProjectAllocationsWithBudget(models.DB, projectID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: budgets})
}
