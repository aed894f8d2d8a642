package v1

import (
	"net/http"

	"github.com/fundledger/backend/internal/auth"
	"github.com/fundledger/backend/internal/chart"
	"github.com/fundledger/backend/internal/httputil"
	"github.com/fundledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func RegisterAccountRoutes(r *gin.RouterGroup) {
	read := auth.RequireRole(auth.ChartReadRoles...)
	write := auth.RequireRole(auth.ChartWriteRoles...)

	// Root group
	{
		r.OPTIONS("", OptionsAccountList)
		r.GET("", read, GetAccounts)
		r.POST("", write, CreateAccounts)
	}

	// Tree
	{
		r.OPTIONS("/tree", OptionsAccountTree)
		r.GET("/tree", read, GetAccountTree)
	}

	// Account with ID
	{
		r.OPTIONS("/:id", OptionsAccountDetail)
		r.GET("/:id", read, GetAccount)
		r.PATCH("/:id", write, UpdateAccount)
		r.DELETE("/:id", write, DeleteAccount)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/accounts [options]
func OptionsAccountList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/accounts/tree [options]
func OptionsAccountTree(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id} [options]
func OptionsAccountDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = chart.Get(models.DB, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Creates accounts
// @Description	Creates new accounts in the chart of accounts
// @Tags			Accounts
// @Produce		json
// @Success		201			{object}	AccountCreateResponse
// @Failure		400			{object}	AccountCreateResponse
// @Failure		403			{object}	httpError
// @Failure		404			{object}	AccountCreateResponse
// @Failure		500			{object}	AccountCreateResponse
// @Param			accounts	body		[]AccountEditable	true	"Accounts"
// @Security		Bearer
// @Router			/v1/accounts [post]
func CreateAccounts(c *gin.Context) {
	var editables []AccountEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := AccountCreateResponse{}

	for _, editable := range editables {
		account, err := chart.Create(models.DB, editable.model())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newAccount(c, account)
		r.Data = append(r.Data, AccountResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List accounts
// @Description	Returns the accounts of the chart of accounts, ordered by code
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	AccountListResponse
// @Failure		400		{object}	AccountListResponse
// @Failure		403		{object}	httpError
// @Failure		500		{object}	AccountListResponse
// @Param			type	query		string	false	"Filter by type"
// @Param			code	query		string	false	"Filter by code, supports glob patterns like 4*"
// @Param			name	query		string	false	"Filter by name"
// @Param			parent	query		string	false	"Filter by parent account ID"
// @Security		Bearer
// @Router			/v1/accounts [get]
func GetAccounts(c *gin.Context) {
	var filter AccountQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AccountListResponse{
			Error: &s,
		})
		return
	}

	f, err := filter.filter()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountListResponse{
			Error: &s,
		})
		return
	}

	accounts, err := chart.List(models.DB, f)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountListResponse{
			Error: &s,
		})
		return
	}

	// When there are no resources, we want an empty list, not null
	// Therefore, we use make to create a slice with zero elements
	// which will be marshalled to an empty JSON array
	data := make([]Account, 0)
	for _, account := range accounts {
		data = append(data, newAccount(c, account))
	}

	c.JSON(http.StatusOK, AccountListResponse{Data: data})
}

// @Summary		Get account tree
// @Description	Returns the chart of accounts as a tree indexed by account ID
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountTreeResponse
// @Failure		403	{object}	httpError
// @Failure		500	{object}	AccountTreeResponse
// @Security		Bearer
// @Router			/v1/accounts/tree [get]
func GetAccountTree(c *gin.Context) {
	tree, err := chart.LoadTree(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountTreeResponse{
			Error: &s,
		})
		return
	}

	data := newAccountTree(c, tree)
	c.JSON(http.StatusOK, AccountTreeResponse{Data: &data})
}

// @Summary		Get account
// @Description	Returns a specific account
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountResponse
// @Failure		400	{object}	AccountResponse
// @Failure		403	{object}	httpError
// @Failure		404	{object}	AccountResponse
// @Failure		500	{object}	AccountResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		Bearer
// @Router			/v1/accounts/{id} [get]
func GetAccount(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &s,
		})
		return
	}

	account, err := chart.Get(models.DB, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &s,
		})
		return
	}

	data := newAccount(c, account)
	c.JSON(http.StatusOK, AccountResponse{Data: &data})
}

// @Summary		Update account
// @Description	Updates an account. Only values to be updated need to be specified. Code and type cannot change once entries are posted to the account.
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		403		{object}	httpError
// @Failure		404		{object}	AccountResponse
// @Failure		500		{object}	AccountResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			account	body		AccountEditable	true	"Account"
// @Security		Bearer
// @Router			/v1/accounts/{id} [patch]
func UpdateAccount(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.BodyFields(c, AccountEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &s,
		})
		return
	}

	var data AccountEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &s,
		})
		return
	}

	account, err := chart.Update(models.DB, uri.ID.UUID, data.patch(updateFields))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &s,
		})
		return
	}

	apiResource := newAccount(c, account)
	c.JSON(http.StatusOK, AccountResponse{Data: &apiResource})
}

// @Summary		Delete account
// @Description	Deletes an account. Accounts with entries or child accounts cannot be deleted.
// @Tags			Accounts
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		Bearer
// @Router			/v1/accounts/{id} [delete]
func DeleteAccount(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = chart.Delete(models.DB, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
