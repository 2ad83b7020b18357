package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/robertromore/budget-sub015/internal/config"
)

const (
	defaultMigrationsPath = "db/migrations"
	defaultSeedsPath      = "db/seeds"
	defaultPingAttempts   = 30
	defaultPingInterval   = 2 * time.Second
)

var ErrMigrationsNotFound = errors.New("migrations directory not found")

// MigrationRunner applies the SQL migrations under <migrationsPath>/<driver>
// and, when enabled, the seed files under seedsPath
type MigrationRunner struct {
	db             *sql.DB
	driver         string
	migrationsPath string
	seedsPath      string
	seedEnabled    bool
	pingAttempts   int
	pingInterval   time.Duration
	logger         *slog.Logger
}

func NewMigrationRunner(db *sql.DB, driver string) *MigrationRunner {
	if driver == "" {
		driver = config.DriverSQLite
	}
	return &MigrationRunner{
		db:             db,
		driver:         driver,
		migrationsPath: defaultMigrationsPath,
		seedsPath:      defaultSeedsPath,
		pingAttempts:   defaultPingAttempts,
		pingInterval:   defaultPingInterval,
		logger:         slog.Default().With("component", "migrator"),
	}
}

func newMigrationRunnerFromConfig(db *sql.DB, cfg *config.DatabaseConfig) *MigrationRunner {
	runner := NewMigrationRunner(db, cfg.Driver)
	if cfg.MigrationsPath != "" {
		runner.migrationsPath = cfg.MigrationsPath
	}
	if cfg.SeedsPath != "" {
		runner.seedsPath = cfg.SeedsPath
	}
	runner.seedEnabled = cfg.Seed
	return runner
}

// WaitForDatabase pings until the database answers or the attempts run out
func (mr *MigrationRunner) WaitForDatabase() error {
	var lastErr error
	for attempt := 1; attempt <= mr.pingAttempts; attempt++ {
		if lastErr = mr.db.Ping(); lastErr == nil {
			mr.logger.Info("database ready", "attempt", attempt)
			return nil
		}
		mr.logger.Warn("database not ready",
			"attempt", attempt,
			"max_attempts", mr.pingAttempts,
			"error", lastErr)
		if attempt < mr.pingAttempts {
			time.Sleep(mr.pingInterval)
		}
	}
	return fmt.Errorf("database not ready after %d attempts: %w", mr.pingAttempts, lastErr)
}

func (mr *MigrationRunner) driverDir() string {
	return filepath.Join(mr.migrationsPath, mr.driver)
}

func (mr *MigrationRunner) databaseInstance() (migratedb.Driver, string, error) {
	switch mr.driver {
	case config.DriverPostgres:
		driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
		if err != nil {
			return nil, "", fmt.Errorf("failed to create postgres driver: %w", err)
		}
		return driver, "postgres", nil
	case config.DriverSQLite:
		driver, err := sqlite3.WithInstance(mr.db, &sqlite3.Config{})
		if err != nil {
			return nil, "", fmt.Errorf("failed to create sqlite3 driver: %w", err)
		}
		return driver, "sqlite3", nil
	default:
		return nil, "", fmt.Errorf("unsupported migration driver %q", mr.driver)
	}
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	dir := mr.driverDir()
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrMigrationsNotFound, dir)
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve migrations path: %w", err)
	}

	driver, name, err := mr.databaseInstance()
	if err != nil {
		return nil, err
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, name, driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// RunMigrations applies pending migrations. A missing directory is skipped,
// a dirty version is forced before migrating up.
func (mr *MigrationRunner) RunMigrations() error {
	m, err := mr.newMigrate()
	if errors.Is(err, ErrMigrationsNotFound) {
		mr.logger.Warn("skipping migrations", "path", mr.driverDir())
		return nil
	}
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}
	if dirty {
		mr.logger.Warn("forcing dirty migration version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version %d: %w", version, err)
		}
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		mr.logger.Info("schema up to date", "driver", mr.driver, "version", version)
		return nil
	case err != nil:
		return fmt.Errorf("migration failed: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}
	mr.logger.Info("migrations applied", "driver", mr.driver, "from", version, "to", newVersion)
	return nil
}

// LoadSeeds executes every *.sql file of seedsPath in name order and reports
// how many succeeded. A failing file is logged and skipped; an unreadable one
// aborts.
func (mr *MigrationRunner) LoadSeeds() (int, error) {
	if !mr.seedEnabled {
		return 0, nil
	}
	if _, err := os.Stat(mr.seedsPath); os.IsNotExist(err) {
		mr.logger.Warn("seeds directory not found", "path", mr.seedsPath)
		return 0, nil
	}

	files, err := filepath.Glob(filepath.Join(mr.seedsPath, "*.sql"))
	if err != nil {
		return 0, fmt.Errorf("failed to list seed files: %w", err)
	}

	applied := 0
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return applied, fmt.Errorf("failed to read seed file %s: %w", file, err)
		}
		if _, err := mr.db.Exec(string(content)); err != nil {
			mr.logger.Warn("seed file failed", "file", filepath.Base(file), "error", err)
			continue
		}
		applied++
	}

	mr.logger.Info("seed data loaded", "applied", applied, "files", len(files))
	return applied, nil
}

func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

// RunMigrationsIfEnabled runs the migrations and seeds when
// database.auto_migrate is set
func RunMigrationsIfEnabled(db *sql.DB, cfg *config.DatabaseConfig) error {
	if !cfg.AutoMigrate {
		return nil
	}

	runner := newMigrationRunnerFromConfig(db, cfg)

	if err := runner.WaitForDatabase(); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}
	if err := runner.RunMigrations(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}
	if _, err := runner.LoadSeeds(); err != nil {
		runner.logger.Warn("seed data loading failed", "error", err)
	}
	return nil
}
