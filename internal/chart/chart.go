// Package chart manages the chart of accounts.
package chart

import (
	"fmt"
	"strings"

	"github.com/fundledger/backend/internal/models"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// Filter restricts the accounts returned by List.
type Filter struct {
	Type     models.AccountType
	Code     string // Glob pattern, e.g. "4*"
	Name     string // Substring of the name
	ParentID *uuid.UUID
}

// Create adds an account to the chart of accounts.
func Create(db *gorm.DB, account models.Account) (models.Account, error) {
	err := models.RunInTransaction(db, func(tx *gorm.DB) error {
		if account.ParentID != nil {
			tree, err := LoadTree(tx)
			if err != nil {
				return err
			}

			err = tree.checkParent(account, *account.ParentID)
			if err != nil {
				return err
			}
		}

		return tx.Create(&account).Error
	})
	if err != nil {
		return models.Account{}, err
	}

	return account, nil
}

// Get returns the account with the given ID.
func Get(db *gorm.DB, id uuid.UUID) (models.Account, error) {
	var account models.Account
	err := db.First(&account, id).Error
	return account, err
}

// List returns all accounts matching the filter, sorted by code.
func List(db *gorm.DB, f Filter) ([]models.Account, error) {
	q := db.Order("code ASC")

	if f.Type != "" {
		if !f.Type.Valid() {
			return nil, models.ErrAccountTypeInvalid
		}
		q = q.Where(&models.Account{Type: f.Type})
	}

	if f.Name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", f.Name))
	}

	if f.ParentID != nil {
		q = q.Where("parent_id = ?", *f.ParentID)
	}

	var accounts []models.Account
	err := q.Find(&accounts).Error
	if err != nil {
		return nil, err
	}

	if f.Code == "" {
		return accounts, nil
	}

	matching := make([]models.Account, 0, len(accounts))
	for _, a := range accounts {
		if glob.Glob(f.Code, a.Code) {
			matching = append(matching, a)
		}
	}

	return matching, nil
}

// Patch contains the changes to an account. Nil fields are not changed.
type Patch struct {
	Code        *string
	Name        *string
	Description *string
	Type        *models.AccountType

	// ParentSet is true when the parent is part of the patch. A nil
	// ParentID then makes the account a root account.
	ParentSet bool
	ParentID  *uuid.UUID
}

// Update applies the patch to the account with the given id.
//
// Code and type are frozen once entries reference the account, since the
// type determines the sign of every historical entry.
func Update(db *gorm.DB, id uuid.UUID, p Patch) (models.Account, error) {
	var account models.Account
	err := models.RunInTransaction(db, func(tx *gorm.DB) error {
		err := tx.First(&account, id).Error
		if err != nil {
			return err
		}

		codeChanges := p.Code != nil && strings.TrimSpace(*p.Code) != account.Code
		typeChanges := p.Type != nil && *p.Type != account.Type

		if codeChanges || typeChanges {
			posted, err := account.HasEntries(tx)
			if err != nil {
				return err
			}

			if posted {
				return models.ErrAccountTypeImmutable
			}
		}

		if p.Code != nil {
			account.Code = *p.Code
		}

		if p.Name != nil {
			account.Name = *p.Name
		}

		if p.Description != nil {
			account.Description = *p.Description
		}

		if p.Type != nil {
			account.Type = *p.Type
		}

		if p.ParentSet {
			account.ParentID = p.ParentID
		}

		if typeChanges || p.ParentSet {
			tree, err := LoadTree(tx)
			if err != nil {
				return err
			}

			if account.ParentID != nil {
				err = tree.checkParent(account, *account.ParentID)
				if err != nil {
					return err
				}
			}

			// Children must keep the type of their parent
			for _, child := range tree.Children(account.ID) {
				if child.Type != account.Type {
					return fmt.Errorf("%w: child account %s has type %s", models.ErrAccountParent, child.Code, child.Type)
				}
			}
		}

		return tx.Save(&account).Error
	})
	if err != nil {
		return models.Account{}, err
	}

	return account, nil
}

// Delete removes an account that has neither entries nor child accounts.
func Delete(db *gorm.DB, id uuid.UUID) error {
	return models.RunInTransaction(db, func(tx *gorm.DB) error {
		var account models.Account
		err := tx.First(&account, id).Error
		if err != nil {
			return err
		}

		posted, err := account.HasEntries(tx)
		if err != nil {
			return err
		}

		parent, err := account.HasChildren(tx)
		if err != nil {
			return err
		}

		if posted || parent {
			return models.ErrAccountInUse
		}

		return tx.Delete(&account).Error
	})
}

// checkParent verifies that parentID can be the parent of the account.
func (t Tree) checkParent(account models.Account, parentID uuid.UUID) error {
	parent, ok := t.Nodes[parentID]
	if !ok {
		return fmt.Errorf("%w: there is no account with ID %s", models.ErrAccountParent, parentID)
	}

	if parent.Account.Type != account.Type {
		return fmt.Errorf("%w: the parent account %s has type %s", models.ErrAccountParent, parent.Account.Code, parent.Account.Type)
	}

	if parentID == account.ID || (account.ID != uuid.Nil && t.IsAncestor(account.ID, parentID)) {
		return models.ErrAccountParent
	}

	return nil
}
