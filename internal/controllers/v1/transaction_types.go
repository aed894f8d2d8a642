package v1

import (
	"fmt"

	"github.com/fundledger/backend/internal/httputil"
	"github.com/fundledger/backend/internal/ledger"
	"github.com/fundledger/backend/internal/models"
	"github.com/fundledger/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EntryEditable struct {
	AccountID uuid.UUID        `json:"accountId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`                                             // The account the entry is posted to
	Type      models.EntryType `json:"type" example:"debit"`                                                                                 // debit or credit
	Amount    decimal.Decimal  `json:"amount" example:"150.25" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount, must be positive
	Notes     string           `json:"notes" example:"Invoice 2024-17"`                                                                      // Notes for the entry
}

type TransactionEditable struct {
	Date        types.Date      `json:"date" swaggertype:"string" format:"date" example:"2024-03-01"` // Date of the transaction
	Description string          `json:"description" example:"Office rent March"`                      // Description of the transaction
	Entries     []EntryEditable `json:"entries"`                                                      // At least two entries, debits and credits must balance
}

// posting returns the ledger posting for the editable fields
func (editable TransactionEditable) posting() ledger.Posting {
	p := ledger.Posting{
		Date:        editable.Date,
		Description: editable.Description,
	}

	for _, e := range editable.Entries {
		p.Lines = append(p.Lines, ledger.Line{
			AccountID: e.AccountID,
			Type:      e.Type,
			Amount:    e.Amount,
			Notes:     e.Notes,
		})
	}

	return p
}

type ReversalEditable struct {
	Date        types.Date `json:"date" swaggertype:"string" format:"date" example:"2024-03-02"` // Date of the reversal, defaults to today
	Description string     `json:"description" example:"Posted to the wrong account"`            // Description of the reversal
}

type TransactionLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/transactions/3d3d2a91-2b4d-4e4b-9e44-1c8a4a5a1b0f"`            // The transaction itself
	Reverse string `json:"reverse" example:"https://example.com/api/v1/transactions/3d3d2a91-2b4d-4e4b-9e44-1c8a4a5a1b0f/reverse"` // Endpoint to reverse the transaction
}

// Transaction is the API v1 representation of a ledger transaction.
type Transaction struct {
	models.DefaultModel
	Number       uint64                    `json:"number" example:"42"`                                          // Sequence number
	Date         types.Date                `json:"date" swaggertype:"string" format:"date" example:"2024-03-01"` // Date of the transaction
	Description  string                    `json:"description" example:"Office rent March"`                      // Description of the transaction
	Reference    *models.ReferenceObject   `json:"reference"`                                                    // The funding, allocation or expense mirrored by the transaction. null for manual journal entries
	ReversalOfID *uuid.UUID                `json:"reversalOfId" example:"d2a5d9f8-0dfc-4c3e-a0b4-9c0e3c3b8f25"`  // The transaction this transaction reverses
	Entries      []models.TransactionEntry `json:"entries"`                                                      // Entries in insertion order
	Links        TransactionLinks          `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	entries := make([]models.TransactionEntry, 0, len(model.Entries))
	entries = append(entries, model.Entries...)

	return Transaction{
		DefaultModel: model.DefaultModel,
		Number:       model.Number,
		Date:         model.Date,
		Description:  model.Description,
		Reference:    models.NewReferenceObject(model.Reference()),
		ReversalOfID: model.ReversalOfID,
		Entries:      entries,
		Links: TransactionLinks{
			Self:    fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Reverse: fmt.Sprintf("%s/v1/transactions/%s/reverse", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                                          // List of transactions
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                                     // Data for the transaction
	Error *string      `json:"error" example:"the debits and credits of the transaction do not balance"` // The error, if any occurred for this transaction
}

type TransactionQueryFilter struct {
	From          types.Date `form:"from"`          // Transactions on or after this date
	Until         types.Date `form:"until"`         // Transactions on or before this date
	Account       string     `form:"account"`       // Transactions with an entry for this account
	ReferenceType string     `form:"referenceType"` // funding, allocation, expense or none
	Reference     string     `form:"reference"`     // ID of the referenced resource
}

func (f TransactionQueryFilter) filter() (ledger.TransactionFilter, error) {
	accountID, err := httputil.UUIDFromString(f.Account)
	if err != nil {
		return ledger.TransactionFilter{}, err
	}

	referenceID, err := httputil.UUIDFromString(f.Reference)
	if err != nil {
		return ledger.TransactionFilter{}, err
	}

	filter := ledger.TransactionFilter{
		From:          f.From,
		Until:         f.Until,
		ReferenceType: models.ReferenceType(f.ReferenceType),
	}

	if accountID != uuid.Nil {
		filter.AccountID = &accountID
	}

	if referenceID != uuid.Nil {
		filter.ReferenceID = &referenceID
	}

	return filter, nil
}
