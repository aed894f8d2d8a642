package test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/fundledger/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TmpFile returns the path of a fresh sqlite database file. The file is
// removed with the test's temporary directory.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), fmt.Sprintf("fundledger-%s.db", uuid.NewString()))
}

// ConnectDB connects models.DB to a fresh database for the test.
func ConnectDB(t *testing.T) {
	require.NoError(t, models.Connect(TmpFile(t)), "database connection failed")
}

// CloseDB closes models.DB. Tests call it to exercise the handling of
// database errors, closing twice is harmless.
func CloseDB(t *testing.T) {
	sqlDB, err := models.DB.DB()
	require.NoError(t, err, "database resource unavailable")
	sqlDB.Close()
}
