package database

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"

	"github.com/robertromore/budget-sub015/internal/config"
)

type MigratorTestSuite struct {
	suite.Suite
	mock   sqlmock.Sqlmock
	runner *MigrationRunner
	seeds  string
}

func (s *MigratorTestSuite) SetupTest() {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = db.Close() })

	s.mock = mock
	s.seeds = s.T().TempDir()
	s.runner = NewMigrationRunner(db, config.DriverSQLite)
	s.runner.seedsPath = s.seeds
	s.runner.seedEnabled = true
	s.runner.pingAttempts = 3
	s.runner.pingInterval = time.Millisecond
	s.runner.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMigratorTestSuite(t *testing.T) {
	suite.Run(t, new(MigratorTestSuite))
}

func (s *MigratorTestSuite) writeSeed(name, content string) {
	s.Require().NoError(os.WriteFile(filepath.Join(s.seeds, name), []byte(content), 0o644))
}

func (s *MigratorTestSuite) TestDefaults() {
	runner := NewMigrationRunner(nil, "")

	s.Equal(config.DriverSQLite, runner.driver)
	s.Equal(filepath.Join("db", "migrations", "sqlite"), runner.driverDir())
	s.Equal(defaultSeedsPath, runner.seedsPath)
	s.False(runner.seedEnabled)
	s.Equal(defaultPingAttempts, runner.pingAttempts)
}

func (s *MigratorTestSuite) TestFromConfig() {
	runner := newMigrationRunnerFromConfig(nil, &config.DatabaseConfig{
		Driver:         config.DriverPostgres,
		MigrationsPath: "deploy/migrations",
		Seed:           true,
	})

	s.Equal(filepath.Join("deploy", "migrations", "postgres"), runner.driverDir())
	s.Equal(defaultSeedsPath, runner.seedsPath)
	s.True(runner.seedEnabled)
}

func (s *MigratorTestSuite) TestWaitForDatabase_ReadyAfterRetry() {
	s.mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	s.mock.ExpectPing()

	s.NoError(s.runner.WaitForDatabase())
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *MigratorTestSuite) TestWaitForDatabase_GivesUp() {
	for i := 0; i < 3; i++ {
		s.mock.ExpectPing().WillReturnError(errors.New("the database system is starting up"))
	}

	err := s.runner.WaitForDatabase()

	s.Require().Error(err)
	s.Contains(err.Error(), "database not ready after 3 attempts")
	s.Contains(err.Error(), "starting up")
}

func (s *MigratorTestSuite) TestRunMigrations_MissingDirectoryIsSkipped() {
	s.runner.migrationsPath = filepath.Join(s.T().TempDir(), "absent")

	s.NoError(s.runner.RunMigrations())
}

func (s *MigratorTestSuite) TestRunMigrations_UnsupportedDriver() {
	dir := s.T().TempDir()
	s.Require().NoError(os.MkdirAll(filepath.Join(dir, "mysql"), 0o755))
	s.runner.driver = "mysql"
	s.runner.migrationsPath = dir

	err := s.runner.RunMigrations()

	s.Require().Error(err)
	s.Contains(err.Error(), "unsupported migration driver")
}

func (s *MigratorTestSuite) TestGetMigrationStatus_MissingDirectory() {
	s.runner.migrationsPath = filepath.Join(s.T().TempDir(), "absent")

	_, _, err := s.runner.GetMigrationStatus()

	s.ErrorIs(err, ErrMigrationsNotFound)
}

func (s *MigratorTestSuite) TestLoadSeeds_Disabled() {
	s.writeSeed("001_demo.sql", "INSERT INTO workspaces (id, name) VALUES ('w', 'Demo');")
	s.runner.seedEnabled = false

	applied, err := s.runner.LoadSeeds()

	s.NoError(err)
	s.Zero(applied)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *MigratorTestSuite) TestLoadSeeds_MissingDirectory() {
	s.runner.seedsPath = filepath.Join(s.seeds, "absent")

	applied, err := s.runner.LoadSeeds()

	s.NoError(err)
	s.Zero(applied)
}

func (s *MigratorTestSuite) TestLoadSeeds_RunsFilesInOrder() {
	s.writeSeed("002_transactions.sql", "INSERT INTO transactions (id) VALUES ('t');")
	s.writeSeed("001_workspace.sql", "INSERT INTO workspaces (id, name) VALUES ('w', 'Demo');")
	s.writeSeed("notes.txt", "not a seed")

	s.mock.ExpectExec("INSERT INTO workspaces").WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectExec("INSERT INTO transactions").WillReturnResult(sqlmock.NewResult(0, 1))

	applied, err := s.runner.LoadSeeds()

	s.NoError(err)
	s.Equal(2, applied)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *MigratorTestSuite) TestLoadSeeds_FailingFileIsSkipped() {
	s.writeSeed("001_bad.sql", "INSERT INTO missing_table VALUES (1);")
	s.writeSeed("002_payees.sql", "INSERT INTO payees (id, name) VALUES ('p', 'Landlord');")

	s.mock.ExpectExec("INSERT INTO missing_table").WillReturnError(errors.New("no such table: missing_table"))
	s.mock.ExpectExec("INSERT INTO payees").WillReturnResult(sqlmock.NewResult(0, 1))

	applied, err := s.runner.LoadSeeds()

	s.NoError(err)
	s.Equal(1, applied)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *MigratorTestSuite) TestLoadSeeds_UnreadableFileAborts() {
	s.Require().NoError(os.Mkdir(filepath.Join(s.seeds, "001_dir.sql"), 0o755))

	_, err := s.runner.LoadSeeds()

	s.Require().Error(err)
	s.Contains(err.Error(), "failed to read seed file")
}

func (s *MigratorTestSuite) TestRunMigrationsIfEnabled_Disabled() {
	s.NoError(RunMigrationsIfEnabled(nil, &config.DatabaseConfig{Driver: config.DriverSQLite}))
}

func TestRunMigrationsIfEnabled_SQLiteInMemory(t *testing.T) {
	db := SetupTestDB(t)
	sqlDB, err := db.DB.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}

	err = RunMigrationsIfEnabled(sqlDB, &config.DatabaseConfig{
		Driver:         config.DriverSQLite,
		AutoMigrate:    true,
		MigrationsPath: filepath.Join(t.TempDir(), "none"),
	})
	if err != nil {
		t.Fatalf("expected missing migrations to be skipped, got %v", err)
	}
}
