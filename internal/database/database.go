package database

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/robertromore/budget-sub015/internal/config"
	"github.com/robertromore/budget-sub015/internal/models"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func dialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite, "":
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		return sqlite.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(d, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	maxConns := cfg.MaxConnections
	if cfg.Driver != config.DriverPostgres {
		// sqlite allows a single writer
		maxConns = 1
	}
	sqlDB.SetMaxOpenConns(maxConns)
	sqlDB.SetMaxIdleConns(min(cfg.MaxIdleConns, maxConns))
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Workspace{},
		&models.Account{},
		&models.Payee{},
		&models.Category{},
		&models.Transaction{},
		&models.Schedule{},
		&models.ScheduleDate{},
		&models.DetectedPattern{},
		&models.TransferMapping{},
		&models.PayeeAlias{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateIndexes adds the partial indexes AutoMigrate cannot express. A
// failing statement is logged and the rest still run; the count of failures
// is returned.
func (db *DB) CreateIndexes() int {
	failed := 0
	for _, index := range partialIndexes {
		if err := db.DB.Exec(index).Error; err != nil {
			slog.Warn("index creation failed", "statement", index, "error", err)
			failed++
		}
	}
	return failed
}

var partialIndexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_transactions_account_date ON transactions(account_id, date)",
	"CREATE INDEX IF NOT EXISTS idx_transactions_schedule_id ON transactions(schedule_id) WHERE schedule_id IS NOT NULL",
	"CREATE INDEX IF NOT EXISTS idx_detected_patterns_workspace_status ON detected_patterns(workspace_id, status)",
	"CREATE INDEX IF NOT EXISTS idx_detected_patterns_last_occurrence ON detected_patterns(workspace_id, last_occurrence)",
	"CREATE INDEX IF NOT EXISTS idx_transfer_mappings_live ON transfer_mappings(workspace_id, normalized_string) WHERE deleted_at IS NULL",
	"CREATE INDEX IF NOT EXISTS idx_payee_aliases_live ON payee_aliases(workspace_id, normalized_string) WHERE deleted_at IS NULL",
	"CREATE INDEX IF NOT EXISTS idx_accounts_deleted_at ON accounts(deleted_at) WHERE deleted_at IS NULL",
}

// Initialize connects and brings the schema up to date. With auto_migrate on
// the SQL migrations are authoritative and GORM AutoMigrate is only the
// fallback when they fail; with it off AutoMigrate always runs.
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	useAutoMigrate := !cfg.Database.AutoMigrate
	if err := RunMigrationsIfEnabled(sqlDB, &cfg.Database); err != nil {
		slog.Warn("sql migrations failed, falling back to gorm automigrate", "error", err)
		useAutoMigrate = true
	}
	if useAutoMigrate {
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if failed := db.CreateIndexes(); failed > 0 {
		slog.Warn("some indexes were not created", "failed", failed)
	}

	slog.Info("database initialized", "driver", cfg.Database.Driver)
	return db, nil
}
