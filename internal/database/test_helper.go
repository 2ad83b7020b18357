package database

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/robertromore/budget-sub015/internal/config"
	"github.com/robertromore/budget-sub015/internal/models"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// every pooled connection would get its own empty :memory: database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return testDB
}

func CreateTestWorkspace(t *testing.T, db *DB, name string) *models.Workspace {
	t.Helper()

	workspace := &models.Workspace{Name: name}
	if err := db.Create(workspace).Error; err != nil {
		t.Fatalf("failed to create test workspace: %v", err)
	}

	return workspace
}

func CreateTestAccount(t *testing.T, db *DB, workspace *models.Workspace, name string) *models.Account {
	t.Helper()

	account := &models.Account{
		WorkspaceID: workspace.ID,
		Name:        name,
		AccountType: models.AccountTypeChecking,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CreateTestPayee(t *testing.T, db *DB, workspace *models.Workspace, name string) *models.Payee {
	t.Helper()

	payee := &models.Payee{
		WorkspaceID: workspace.ID,
		Name:        name,
	}
	if err := db.Create(payee).Error; err != nil {
		t.Fatalf("failed to create test payee: %v", err)
	}

	return payee
}

func CreateTestCategory(t *testing.T, db *DB, workspace *models.Workspace, name string) *models.Category {
	t.Helper()

	category := &models.Category{
		WorkspaceID: workspace.ID,
		Name:        name,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	return category
}

var cleanupTables = []string{
	"schedule_dates",
	"detected_patterns",
	"transactions",
	"schedules",
	"transfer_mappings",
	"payee_aliases",
	"categories",
	"payees",
	"accounts",
	"workspaces",
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range cleanupTables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
