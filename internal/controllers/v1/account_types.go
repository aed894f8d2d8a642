package v1

import (
	"fmt"

	"github.com/fundledger/backend/internal/chart"
	"github.com/fundledger/backend/internal/httputil"
	"github.com/fundledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

type AccountEditable struct {
	Code        string             `json:"code" example:"1000"`                                     // Unique code of the account, sorted lexicographically
	Name        string             `json:"name" example:"Cash at bank"`                             // Name of the account
	Description string             `json:"description" example:"Main operating account"`            // Description of the account
	Type        models.AccountType `json:"type" example:"Asset"`                                    // One of Asset, Liability, Equity, Income, Expense
	ParentID    *uuid.UUID         `json:"parentId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // ID of the parent account, must have the same type
}

// model returns the database resource for the editable fields
func (editable AccountEditable) model() models.Account {
	return models.Account{
		Code:        editable.Code,
		Name:        editable.Name,
		Description: editable.Description,
		Type:        editable.Type,
		ParentID:    editable.ParentID,
	}
}

// patch returns the changes for the fields set in the request body
func (editable AccountEditable) patch(fields []string) chart.Patch {
	var p chart.Patch

	if slices.Contains(fields, "Code") {
		p.Code = &editable.Code
	}

	if slices.Contains(fields, "Name") {
		p.Name = &editable.Name
	}

	if slices.Contains(fields, "Description") {
		p.Description = &editable.Description
	}

	if slices.Contains(fields, "Type") {
		p.Type = &editable.Type
	}

	if slices.Contains(fields, "ParentID") {
		p.ParentSet = true
		p.ParentID = editable.ParentID
	}

	return p
}

type AccountLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                     // The account itself
	Ledger       string `json:"ledger" example:"https://example.com/api/v1/reports/ledger?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`     // Running ledger of the account
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Transactions with entries for the account
	Children     string `json:"children" example:"https://example.com/api/v1/accounts?parent=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`          // Child accounts
}

// Account is the API v1 representation of an account in the chart of accounts.
type Account struct {
	models.DefaultModel
	AccountEditable
	Links AccountLinks `json:"links"`
}

func newAccount(c *gin.Context, model models.Account) Account {
	url := c.GetString(string(models.DBContextURL))

	return Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			Code:        model.Code,
			Name:        model.Name,
			Description: model.Description,
			Type:        model.Type,
			ParentID:    model.ParentID,
		},
		Links: AccountLinks{
			Self:         fmt.Sprintf("%s/v1/accounts/%s", url, model.ID),
			Ledger:       fmt.Sprintf("%s/v1/reports/ledger?account=%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?account=%s", url, model.ID),
			Children:     fmt.Sprintf("%s/v1/accounts?parent=%s", url, model.ID),
		},
	}
}

type AccountListResponse struct {
	Data  []Account `json:"data"`                                                          // List of accounts
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AccountCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AccountResponse `json:"data"`                                                          // List of created Accounts
}

func (a *AccountCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AccountResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AccountResponse struct {
	Data  *Account `json:"data"`                                                          // Data for the account
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this account
}

type AccountQueryFilter struct {
	Type   string `form:"type"`   // By account type
	Code   string `form:"code"`   // Glob pattern for the code, e.g. 4*
	Name   string `form:"name"`   // Fuzzy filter for the account name
	Parent string `form:"parent"` // By parent account ID
}

func (f AccountQueryFilter) filter() (chart.Filter, error) {
	parentID, err := httputil.UUIDFromString(f.Parent)
	if err != nil {
		return chart.Filter{}, err
	}

	filter := chart.Filter{
		Type: models.AccountType(f.Type),
		Code: f.Code,
		Name: f.Name,
	}

	if parentID != uuid.Nil {
		filter.ParentID = &parentID
	}

	return filter, nil
}

// AccountTreeNode is an account with its position in the chart of accounts.
type AccountTreeNode struct {
	Account  Account     `json:"account"`
	Depth    int         `json:"depth" example:"1"` // Number of ancestors
	Children []uuid.UUID `json:"children"`          // IDs of the child accounts, ordered by code
}

// AccountTree is the chart of accounts indexed by account ID.
type AccountTree struct {
	Roots []uuid.UUID                   `json:"roots"` // IDs of the accounts without a parent, ordered by code
	Order []uuid.UUID                   `json:"order"` // IDs of all accounts depth first, parents before their children
	Nodes map[uuid.UUID]AccountTreeNode `json:"nodes"` // All accounts
}

func newAccountTree(c *gin.Context, tree chart.Tree) AccountTree {
	t := AccountTree{
		Roots: make([]uuid.UUID, 0, len(tree.Roots)),
		Order: make([]uuid.UUID, 0, len(tree.Nodes)),
		Nodes: make(map[uuid.UUID]AccountTreeNode, len(tree.Nodes)),
	}

	t.Roots = append(t.Roots, tree.Roots...)

	for _, n := range tree.Flatten() {
		t.Order = append(t.Order, n.Account.ID)
	}

	for id, node := range tree.Nodes {
		children := make([]uuid.UUID, 0, len(node.Children))
		children = append(children, node.Children...)

		t.Nodes[id] = AccountTreeNode{
			Account:  newAccount(c, node.Account),
			Depth:    node.Depth,
			Children: children,
		}
	}

	return t
}

type AccountTreeResponse struct {
	Data  *AccountTree `json:"data"`                                                                // The chart of accounts
	Error *string      `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}
