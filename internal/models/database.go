package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var DB *gorm.DB

type FLContext string

const (
	DBContextURL FLContext = "fl-backend-url"
)

// Connect opens the SQLite database and configures the connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		Logger: newGormLogger(log.Logger),
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	// Migration with foreign keys disabled since sqlite does not support
	// ALTER COLUMN, so tables may be copied to a temporary table, dropped
	// and recreated
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	// Close the connection
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Now, reconnect with foreign keys enabled
	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err = gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection serializes all writers and prevents SQLITE_BUSY.
	// Budget checks additionally serialize per allocation in the tracker.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = registerCallbacks(db)
	if err != nil {
		return err
	}

	// Set the exported variable
	DB = db

	return nil
}

// migrate creates or updates the schema for all models.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&Account{},
		&Project{},
		&SubProject{},
		&ReportingPeriod{},
		&Transaction{},
		&TransactionEntry{},
		&Funding{},
		&Allocation{},
		&Expense{},
	)
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}

// registerer is what gorm returns from After for every processor. Each
// registration needs its own, Register mutates it.
type registerer interface {
	Register(name string, fn func(*gorm.DB)) error
}

// registerCallbacks installs the error translating callbacks. For every
// processor, the specific callback runs before the general one. Row
// covers Scan and Pluck.
func registerCallbacks(db *gorm.DB) error {
	cb := db.Callback()

	processors := []struct {
		name     string
		after    func() registerer
		specific func(*gorm.DB)
	}{
		{"query", func() registerer { return cb.Query().After("*") }, queryCallback},
		{"row", func() registerer { return cb.Row().After("*") }, nil},
		{"create", func() registerer { return cb.Create().After("*") }, createUpdateCallback},
		{"update", func() registerer { return cb.Update().After("*") }, createUpdateCallback},
		{"delete", func() registerer { return cb.Delete().After("*") }, nil},
	}

	for _, proc := range processors {
		if proc.specific != nil {
			err := proc.after().Register("fundledger:after_"+proc.name, proc.specific)
			if err != nil {
				return err
			}
		}

		err := proc.after().Register("fundledger:after_"+proc.name+"_general", generalCallback)
		if err != nil {
			return err
		}
	}

	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, resourceName(db.Statement.Table))
	}
}

// resourceName derives a human readable resource name from a table name,
// e.g. "reporting_periods" becomes "reporting period".
func resourceName(table string) string {
	name := strings.ReplaceAll(table, "_", " ")
	if stem, ok := strings.CutSuffix(name, "ies"); ok {
		return stem + "y"
	}
	return strings.TrimSuffix(name, "s")
}

// constraintErrors maps constraint failures reported by sqlite to the
// errors returned to users. The first matching entry wins.
var constraintErrors = []struct {
	match string
	err   error
}{
	{"UNIQUE constraint failed: accounts.code", ErrDuplicateCode},
	{"UNIQUE constraint failed: projects.name", ErrProjectNameNotUnique},
	{"UNIQUE constraint failed: sub_projects.project_id, sub_projects.name", ErrSubProjectNameNotUnique},
	{"UNIQUE constraint failed: reporting_periods.name", ErrReportingPeriodNameNotUnique},
	{"FOREIGN KEY constraint failed", fmt.Errorf("%w: there is no resource for an ID you specified in the reference to another resource", ErrValidation)},
}

// createUpdateCallback replaces constraint failures on create and update
// with user friendly errors.
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()
	for _, c := range constraintErrors {
		if strings.Contains(msg, c.match) {
			db.Error = c.err
			return
		}
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	db.Error = general(db.Error)
}

// general replaces errors of the database driver with ErrGeneral.
func general(err error) error {
	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if err.Error() == "sql: database is closed" || reflect.TypeOf(err) == reflect.TypeOf(&go_sqlite.Error{}) {
		// A general error where we cannot provide more useful information to the end user
		// We log the error and provide a general error message so that server admins can debug
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrGeneral
	}

	return err
}

// RunInTransaction runs fc in a database transaction.
//
// Beginning and committing the transaction do not run any callbacks, their
// errors are translated here.
func RunInTransaction(db *gorm.DB, fc func(tx *gorm.DB) error) error {
	err := db.Transaction(fc)
	if err != nil {
		return general(err)
	}

	return nil
}
