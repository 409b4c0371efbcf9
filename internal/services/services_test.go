package services

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/larder-dev/larder/db"
	"github.com/larder-dev/larder/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// A pooled :memory: connection per goroutine would mean a
	// separate database each; pin the pool to one connection.
	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(database))

	return database
}

func createTestUser(t *testing.T, database *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{
		Email:        email,
		PasswordHash: "not-a-real-hash",
		IsActive:     true,
	}
	require.NoError(t, database.Create(&user).Error)

	return user
}

func createTestItem(t *testing.T, database *gorm.DB, ownerID uint, name string) *models.Item {
	t.Helper()

	item, err := CreateItem(database, ownerID, ItemPatch{
		Name:     name,
		Quantity: 1,
		Unit:     "pcs",
	})
	require.NoError(t, err)

	return item
}

func createTestItems(t *testing.T, database *gorm.DB, ownerID uint, count int) {
	t.Helper()

	for i := 0; i < count; i++ {
		createTestItem(t, database, ownerID, fmt.Sprintf("item-%03d", i))
	}
}
