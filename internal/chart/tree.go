package chart

import (
	"github.com/fundledger/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Node is an account in the tree.
//
// Parent and children are referenced by ID, the Tree owns all nodes.
type Node struct {
	Account  models.Account `json:"account"`
	Depth    int            `json:"depth" example:"1"` // Number of ancestors
	Children []uuid.UUID    `json:"children"`          // IDs of the child accounts, ordered by code
}

// Tree is the chart of accounts as an ID-indexed arena.
type Tree struct {
	Nodes map[uuid.UUID]*Node
	Roots []uuid.UUID // Accounts without a parent, ordered by code
}

// LoadTree reads all accounts and builds the tree.
func LoadTree(db *gorm.DB) (Tree, error) {
	accounts, err := List(db, Filter{})
	if err != nil {
		return Tree{}, err
	}

	return NewTree(accounts), nil
}

// NewTree builds the tree from accounts ordered by code.
//
// Accounts whose parent is not part of accounts are treated as roots.
func NewTree(accounts []models.Account) Tree {
	t := Tree{
		Nodes: make(map[uuid.UUID]*Node, len(accounts)),
		Roots: []uuid.UUID{},
	}

	for _, a := range accounts {
		t.Nodes[a.ID] = &Node{Account: a, Children: []uuid.UUID{}}
	}

	for _, a := range accounts {
		if a.ParentID != nil {
			if parent, ok := t.Nodes[*a.ParentID]; ok {
				parent.Children = append(parent.Children, a.ID)
				continue
			}
		}

		t.Roots = append(t.Roots, a.ID)
	}

	t.Walk(func(n *Node, depth int) {
		n.Depth = depth
	})

	return t
}

// Ancestors returns the IDs of all ancestors of the account, the parent
// first.
func (t Tree) Ancestors(id uuid.UUID) []uuid.UUID {
	ancestors := []uuid.UUID{}
	seen := map[uuid.UUID]bool{id: true}

	node, ok := t.Nodes[id]
	for ok && node.Account.ParentID != nil {
		parentID := *node.Account.ParentID
		if seen[parentID] {
			break
		}
		seen[parentID] = true

		node, ok = t.Nodes[parentID]
		if !ok {
			break
		}

		ancestors = append(ancestors, parentID)
	}

	return ancestors
}

// IsAncestor reports whether ancestor is an ancestor of id.
func (t Tree) IsAncestor(ancestor, id uuid.UUID) bool {
	for _, a := range t.Ancestors(id) {
		if a == ancestor {
			return true
		}
	}

	return false
}

// Children returns the direct children of the account.
func (t Tree) Children(id uuid.UUID) []models.Account {
	node, ok := t.Nodes[id]
	if !ok {
		return nil
	}

	children := make([]models.Account, 0, len(node.Children))
	for _, c := range node.Children {
		children = append(children, t.Nodes[c].Account)
	}

	return children
}

// Walk calls fn for every node, depth first, parents before their children.
func (t Tree) Walk(fn func(n *Node, depth int)) {
	var walk func(id uuid.UUID, depth int)
	walk = func(id uuid.UUID, depth int) {
		n := t.Nodes[id]
		fn(n, depth)

		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}

	for _, r := range t.Roots {
		walk(r, 0)
	}
}

// Flatten returns the nodes in the order Walk visits them.
func (t Tree) Flatten() []Node {
	nodes := make([]Node, 0, len(t.Nodes))
	t.Walk(func(n *Node, _ int) {
		nodes = append(nodes, *n)
	})

	return nodes
}
