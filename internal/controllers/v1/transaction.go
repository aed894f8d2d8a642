package v1

import (
	"errors"
	"net/http"

	"github.com/fundledger/backend/internal/auth"
	"github.com/fundledger/backend/internal/events"
	"github.com/fundledger/backend/internal/httputil"
	"github.com/fundledger/backend/internal/ledger"
	"github.com/fundledger/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	read := auth.RequireRole(auth.ChartReadRoles...)
	write := auth.RequireRole(auth.PostingRoles...)

	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", read, GetTransactions)
		r.POST("", write, co.CreateTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", read, GetTransaction)
		r.OPTIONS("/:id/reverse", OptionsTransactionReverse)
		r.POST("/:id/reverse", write, co.ReverseTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs. Transactions are immutable.
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Transaction{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id}/reverse [options]
func OptionsTransactionReverse(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Post transactions
// @Description	Posts manual journal entries to the ledger. Each transaction is posted atomically, debits and credits must balance exactly.
// @Tags			Transactions
// @Produce		json
// @Success		201				{object}	TransactionCreateResponse
// @Failure		400				{object}	TransactionCreateResponse
// @Failure		403				{object}	httpError
// @Failure		404				{object}	TransactionCreateResponse
// @Failure		500				{object}	TransactionCreateResponse
// @Param			transactions	body		[]TransactionEditable	true	"Transactions"
// @Security		Bearer
// @Router			/v1/transactions [post]
func (co Controller) CreateTransactions(c *gin.Context) {
	var editables []TransactionEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TransactionCreateResponse{}

	for _, editable := range editables {
		transaction, err := ledger.Post(models.DB, editable.posting())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		co.published(c, transaction)

		data := newTransaction(c, transaction)
		r.Data = append(r.Data, TransactionResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List transactions
// @Description	Returns transactions in ledger order
// @Tags			Transactions
// @Produce		json
// @Success		200				{object}	TransactionListResponse
// @Failure		400				{object}	TransactionListResponse
// @Failure		403				{object}	httpError
// @Failure		500				{object}	TransactionListResponse
// @Param			from			query		string	false	"Transactions on or after this date"
// @Param			until			query		string	false	"Transactions on or before this date"
// @Param			account			query		string	false	"Filter by account ID"
// @Param			referenceType	query		string	false	"Filter by reference type"
// @Param			reference		query		string	false	"Filter by referenced resource ID"
// @Security		Bearer
// @Router			/v1/transactions [get]
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &s,
		})
		return
	}

	f, err := filter.filter()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &s,
		})
		return
	}

	transactions, err := ledger.List(models.DB, f)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Transaction, 0)
	for _, transaction := range transactions {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: data})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction with its entries
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		403	{object}	httpError
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		Bearer
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	transaction, err := ledger.Get(models.DB, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Reverse transaction
// @Description	Posts a new transaction that swaps debits and credits of the transaction. This is the only way to correct the ledger. The body is optional.
// @Tags			Transactions
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		403			{object}	httpError
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			reversal	body		ReversalEditable	false	"Reversal"
// @Security		Bearer
// @Router			/v1/transactions/{id}/reverse [post]
func (co Controller) ReverseTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	var editable ReversalEditable
	err = httputil.BindData(c, &editable)
	if err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	reversal, err := ledger.Reverse(models.DB, uri.ID.UUID, editable.Date, editable.Description)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	co.published(c, reversal)

	data := newTransaction(c, reversal)
	c.JSON(http.StatusCreated, TransactionResponse{Data: &data})
}

// published announces a committed manual posting. Failures are logged only.
func (co Controller) published(c *gin.Context, transaction models.Transaction) {
	if co.Publisher == nil {
		return
	}

	e := events.New(events.TypeTransactionPosted, transaction)
	err := co.Publisher.Publish(c.Request.Context(), e)
	if err != nil {
		log.Warn().Err(err).Str("request-id", requestid.Get(c)).Str("event", e.ID.String()).Msg("Publish")
	}
}
