package models

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotReversed is a query scope that skips rows of table whose mirrored
// ledger transaction has been reversed. The table needs a transaction_id
// column.
func NotReversed(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(fmt.Sprintf("NOT EXISTS (SELECT 1 FROM transactions r WHERE r.reversal_of_id = %s.transaction_id)", table))
	}
}

// Reversed reports whether a reversal of the transaction with the given
// id has been posted. A nil id is never reversed.
func Reversed(db *gorm.DB, id *uuid.UUID) (bool, error) {
	if id == nil {
		return false, nil
	}

	var count int64
	err := db.Model(&Transaction{}).Where("reversal_of_id = ?", *id).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
