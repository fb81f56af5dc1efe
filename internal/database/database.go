package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

//go:embed migrations
var migrationsFS embed.FS

// connectAttempts bounds how long startup waits for the database to come up.
const connectAttempts = 5

// NewConnection opens a database for the given driver and wraps it in GORM.
// PostgreSQL goes through lib/pq; SQLite is used for local runs and tests.
func NewConnection(ctx context.Context, driver, databaseURL string, appLogger *log.Logger) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:         newGormLogger(appLogger),
		TranslateError: true,
	}

	switch driver {
	case DriverPostgres:
		sqlDB, err := sql.Open("postgres", databaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := pingWithRetry(ctx, sqlDB, appLogger); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), cfg)
		if err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("failed to open gorm: %w", err)
		}
		appLogger.Info("connected to database", "driver", driver)
		return db, nil

	case DriverSQLite:
		if err := ensureDirForSQLite(databaseURL); err != nil {
			return nil, err
		}
		db, err := gorm.Open(sqlite.Open(withForeignKeys(databaseURL)), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql handle: %w", err)
		}
		if isInMemory(databaseURL) {
			// Every new connection to :memory: is a fresh, empty database.
			sqlDB.SetMaxOpenConns(1)
		}
		appLogger.Info("connected to database", "driver", driver, "dsn", databaseURL)
		return db, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// RunMigrations applies the embedded goose migrations for the driver's dialect.
func RunMigrations(db *gorm.DB, driver string, appLogger *log.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql handle: %w", err)
	}

	dialect := "postgres"
	if driver == DriverSQLite {
		dialect = "sqlite3"
	}

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(appLogger)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(sqlDB, path.Join("migrations", driver)); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	appLogger.Info("database migrations completed", "dialect", dialect)
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func pingWithRetry(ctx context.Context, db *sql.DB, appLogger *log.Logger) error {
	backoff := retry.WithMaxRetries(connectAttempts, retry.NewExponential(500*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			appLogger.Warn("database not reachable yet", "err", err)
			return retry.RetryableError(err)
		}
		return nil
	})
}

func newGormLogger(appLogger *log.Logger) logger.Interface {
	return logger.New(appLogger, logger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func isInMemory(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// withForeignKeys turns on SQLite foreign key enforcement for every pooled connection.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=1"
	}
	return dsn + "?_foreign_keys=1"
}

// ensureDirForSQLite creates parent dir for SQLite file if needed.
func ensureDirForSQLite(dsn string) error {
	if isInMemory(dsn) {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}
