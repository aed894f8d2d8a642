package v1

import (
	"net/http"

	"github.com/fundledger/backend/internal/auth"
	"github.com/fundledger/backend/internal/httputil"
	"github.com/fundledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	read := auth.RequireRole(auth.ReadRoles...)
	write := auth.RequireRole(auth.ExpenseRoles...)

	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", read, GetExpenses)
		r.POST("", write, co.CreateExpenses)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", read, GetExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs. Expenses are immutable.
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Expense{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Record expenses
// @Description	Records expenses against allocations. An expense that exceeds the available budget of its allocation is rejected with the available amount.
// @Tags			Expenses
// @Produce		json
// @Success		201			{object}	ExpenseCreateResponse
// @Failure		400			{object}	ExpenseCreateResponse
// @Failure		403			{object}	httpError
// @Failure		404			{object}	ExpenseCreateResponse
// @Failure		409			{object}	ExpenseCreateResponse
// @Failure		500			{object}	ExpenseCreateResponse
// @Param			expenses	body		[]ExpenseEditable	true	"Expenses"
// @Security		Bearer
// @Router			/v1/expenses [post]
func (co Controller) CreateExpenses(c *gin.Context) {
	var editables []ExpenseEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ExpenseCreateResponse{}

	for _, editable := range editables {
		expense, err := co.Tracker.RecordExpense(c.Request.Context(), models.DB, editable.input(auth.Subject(c)))
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newExpense(c, expense)
		r.Data = append(r.Data, ExpenseResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List expenses
// @Description	Returns expenses, most recent first
// @Tags			Expenses
// @Produce		json
// @Success		200			{object}	ExpenseListResponse
// @Failure		400			{object}	ExpenseListResponse
// @Failure		403			{object}	httpError
// @Failure		500			{object}	ExpenseListResponse
// @Param			allocation	query		string	false	"Filter by allocation ID"
// @Param			project		query		string	false	"Filter by project ID"
// @Param			subProject	query		string	false	"Filter by sub project ID"
// @Param			from		query		string	false	"Expenses on or after this date"
// @Param			until		query		string	false	"Expenses on or before this date"
// @Security		Bearer
// @Router			/v1/expenses [get]
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{
			Error: &s,
		})
		return
	}

	query, err := filter.apply(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	var expenses []models.Expense
	err = query.Order("date(expense_date) DESC, created_at DESC").Find(&expenses).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Expense, 0)
	for _, expense := range expenses {
		data = append(data, newExpense(c, expense))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: data})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		403	{object}	httpError
// @Failure		404	{object}	ExpenseResponse
// @Failure		500	{object}	ExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		Bearer
// @Router			/v1/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	data := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}
