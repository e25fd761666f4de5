package testutil

import (
	"errors"
	"os"
	"sync"
	"testing"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/mafqoodat/mafqoodat-backend/internal/platform/logger"
)

var errMissingDSN = errors.New("missing TEST_MYSQL_DSN")

var (
	dbOnce sync.Once
	db     *gorm.DB
	dbErr  error

	logOnce sync.Once
	logg    *logger.Logger
	logErr  error
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg, logErr = logger.New("test")
	})
	if logErr != nil {
		tb.Fatalf("failed to init logger: %v", logErr)
	}
	return logg
}

// DB connects to the legacy-schema test database. The schema is owned by
// the existing site, so there is no migration here; point TEST_MYSQL_DSN at
// a database seeded with the fthings/ville/catagoery/souscatg tables.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dbOnce.Do(func() {
		dsn := os.Getenv("TEST_MYSQL_DSN")
		if dsn == "" {
			dbErr = errMissingDSN
			return
		}
		db, dbErr = gorm.Open(mysql.Open(dsn), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
	})

	if errors.Is(dbErr, errMissingDSN) {
		tb.Skip("set TEST_MYSQL_DSN to run repo integration tests")
	}
	if dbErr != nil {
		tb.Fatalf("failed to init test db: %v", dbErr)
	}
	return db
}
