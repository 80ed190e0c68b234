package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jnmnltrnz/workforce-management-api/internal/models"
)

// setupTestDB opens an in-memory sqlite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Account{},
		&models.Employee{},
		&models.ProfileImage{},
		&models.Document{},
		&models.Project{},
		&models.Task{},
		&models.TaskFile{},
		&models.TaskPost{},
		&models.TaskComment{},
		&models.Meeting{},
		&models.AuditTrail{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})
	return db
}

// countAuditEntries returns the number of ledger rows matching the message.
func countAuditEntries(t *testing.T, db *gorm.DB, message string) int64 {
	t.Helper()
	var count int64
	err := db.Model(&models.AuditTrail{}).Where("action_message = ?", message).Count(&count).Error
	require.NoError(t, err)
	return count
}
