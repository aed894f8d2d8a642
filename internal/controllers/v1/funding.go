package v1

import (
	"net/http"

	"github.com/fundledger/backend/internal/auth"
	"github.com/fundledger/backend/internal/budget"
	"github.com/fundledger/backend/internal/httputil"
	"github.com/fundledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterFundingRoutes registers the routes for fundings with
// the RouterGroup that is passed.
func (co Controller) RegisterFundingRoutes(r *gin.RouterGroup) {
	read := auth.RequireRole(auth.ReadRoles...)
	write := auth.RequireRole(auth.PostingRoles...)

	// Root group
	{
		r.OPTIONS("", OptionsFundingList)
		r.GET("", read, GetFundings)
		r.POST("", write, co.CreateFundings)
	}

	// Funding with ID
	{
		r.OPTIONS("/:id", OptionsFundingDetail)
		r.GET("/:id", read, GetFunding)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Fundings
// @Success		204
// @Router			/v1/fundings [options]
func OptionsFundingList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs. Fundings are immutable.
// @Tags			Fundings
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/fundings/{id} [options]
func OptionsFundingDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Funding{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Record fundings
// @Description	Records donor contributions. Each funding is mirrored by a ledger transaction debiting the receiving account and crediting the income account.
// @Tags			Fundings
// @Produce		json
// @Success		201			{object}	FundingCreateResponse
// @Failure		400			{object}	FundingCreateResponse
// @Failure		403			{object}	httpError
// @Failure		404			{object}	FundingCreateResponse
// @Failure		500			{object}	FundingCreateResponse
// @Param			fundings	body		[]FundingEditable	true	"Fundings"
// @Security		Bearer
// @Router			/v1/fundings [post]
func (co Controller) CreateFundings(c *gin.Context) {
	var editables []FundingEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FundingCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := FundingCreateResponse{}

	for _, editable := range editables {
		funding, err := co.Tracker.RecordFunding(c.Request.Context(), models.DB, editable.input())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// A new funding has nothing allocated yet
		data := newFunding(c, budget.FundingSummary{
			Funding:           funding,
			UnallocatedAmount: funding.Amount,
		})
		r.Data = append(r.Data, FundingResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List fundings
// @Description	Returns all fundings with their allocated and unallocated amounts, most recent first
// @Tags			Fundings
// @Produce		json
// @Success		200	{object}	FundingListResponse
// @Failure		403	{object}	httpError
// @Failure		500	{object}	FundingListResponse
// @Security		Bearer
// @Router			/v1/fundings [get]
func GetFundings(c *gin.Context) {
	summaries, err := budget.Summaries(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FundingListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Funding, 0)
	for _, summary := range summaries {
		data = append(data, newFunding(c, summary))
	}

	c.JSON(http.StatusOK, FundingListResponse{Data: data})
}

// @Summary		Get funding
// @Description	Returns a specific funding with its allocated and unallocated amounts
// @Tags			Fundings
// @Produce		json
// @Success		200	{object}	FundingResponse
// @Failure		400	{object}	FundingResponse
// @Failure		403	{object}	httpError
// @Failure		404	{object}	FundingResponse
// @Failure		500	{object}	FundingResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		Bearer
// @Router			/v1/fundings/{id} [get]
func GetFunding(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FundingResponse{
			Error: &s,
		})
		return
	}

	summary, err := budget.Summary(models.DB, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FundingResponse{
			Error: &s,
		})
		return
	}

	data := newFunding(c, summary)
	c.JSON(http.StatusOK, FundingResponse{Data: &data})
}
