package services

import (
	"testing"
	"time"

	"github.com/larder-dev/larder/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateItemReturnsRecord(t *testing.T) {
	database := setupTestDB(t)
	owner := createTestUser(t, database, "owner@example.com")

	barcode := "4006381333931"
	expiration := time.Now().UTC().AddDate(0, 0, 3)

	item, err := CreateItem(database, owner.ID, ItemPatch{
		Name:           "Milk",
		Barcode:        &barcode,
		Quantity:       1.5,
		Unit:           "l",
		ExpirationDate: &expiration,
	})
	require.NoError(t, err)

	assert.NotZero(t, item.ID)
	assert.Equal(t, "Milk", item.Name)
	assert.Equal(t, owner.ID, item.OwnerID)
	assert.False(t, item.CreatedAt.IsZero())
	require.NotNil(t, item.Barcode)
	assert.Equal(t, barcode, *item.Barcode)
}

func TestCreateItemDuplicateBarcode(t *testing.T) {
	database := setupTestDB(t)
	owner := createTestUser(t, database, "owner@example.com")

	barcode := "5012345678900"

	_, err := CreateItem(database, owner.ID, ItemPatch{Name: "Beans", Barcode: &barcode, Quantity: 1, Unit: "can"})
	require.NoError(t, err)

	_, err = CreateItem(database, owner.ID, ItemPatch{Name: "More beans", Barcode: &barcode, Quantity: 2, Unit: "can"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestCreateItemNilBarcodesDoNotCollide(t *testing.T) {
	database := setupTestDB(t)
	owner := createTestUser(t, database, "owner@example.com")

	_, err := CreateItem(database, owner.ID, ItemPatch{Name: "Salt", Quantity: 1, Unit: "kg"})
	require.NoError(t, err)

	_, err = CreateItem(database, owner.ID, ItemPatch{Name: "Pepper", Quantity: 1, Unit: "kg"})
	require.NoError(t, err)
}

func TestGetItemOwnerScoped(t *testing.T) {
	database := setupTestDB(t)
	alice := createTestUser(t, database, "alice@example.com")
	bob := createTestUser(t, database, "bob@example.com")

	item := createTestItem(t, database, alice.ID, "Eggs")

	got, err := GetItem(database, alice.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)

	// Cross-user access reads as not-found, never as forbidden.
	_, err = GetItem(database, bob.ID, item.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListItemsPagination(t *testing.T) {
	database := setupTestDB(t)
	owner := createTestUser(t, database, "owner@example.com")

	createTestItems(t, database, owner.ID, 150)

	firstPage, err := ListItems(database, owner.ID, 0, DefaultListLimit)
	require.NoError(t, err)
	assert.Len(t, firstPage, 100)

	secondPage, err := ListItems(database, owner.ID, 100, DefaultListLimit)
	require.NoError(t, err)
	assert.Len(t, secondPage, 50)

	// The uncapped limit is honored as supplied.
	all, err := ListItems(database, owner.ID, 0, 100000)
	require.NoError(t, err)
	assert.Len(t, all, 150)
}

func TestListItemsScopedToOwner(t *testing.T) {
	database := setupTestDB(t)
	alice := createTestUser(t, database, "alice@example.com")
	bob := createTestUser(t, database, "bob@example.com")

	createTestItem(t, database, alice.ID, "Flour")
	createTestItem(t, database, bob.ID, "Sugar")

	items, err := ListItems(database, alice.ID, 0, DefaultListLimit)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Flour", items[0].Name)
}

func TestExpiringItemsClosedInterval(t *testing.T) {
	database := setupTestDB(t)
	owner := createTestUser(t, database, "owner@example.com")

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	atNow := now
	atBoundary := now.AddDate(0, 0, 7)
	pastBoundary := now.AddDate(0, 0, 7).Add(time.Second)
	expired := now.Add(-time.Second)

	mk := func(name string, expiration *time.Time) {
		_, err := CreateItem(database, owner.ID, ItemPatch{
			Name:           name,
			Quantity:       1,
			Unit:           "pcs",
			ExpirationDate: expiration,
		})
		require.NoError(t, err)
	}

	mk("expires-now", &atNow)
	mk("expires-at-boundary", &atBoundary)
	mk("expires-past-boundary", &pastBoundary)
	mk("already-expired", &expired)
	mk("never-expires", nil)

	items, err := expiringItemsAt(database, owner.ID, 7, now)
	require.NoError(t, err)

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}

	assert.ElementsMatch(t, []string{"expires-now", "expires-at-boundary"}, names)
}

func TestExpiringItemsScopedToOwner(t *testing.T) {
	database := setupTestDB(t)
	alice := createTestUser(t, database, "alice@example.com")
	bob := createTestUser(t, database, "bob@example.com")

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	soon := now.AddDate(0, 0, 2)

	_, err := CreateItem(database, alice.ID, ItemPatch{Name: "Yogurt", Quantity: 1, Unit: "cup", ExpirationDate: &soon})
	require.NoError(t, err)
	_, err = CreateItem(database, bob.ID, ItemPatch{Name: "Cream", Quantity: 1, Unit: "cup", ExpirationDate: &soon})
	require.NoError(t, err)

	items, err := expiringItemsAt(database, alice.ID, 7, now)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Yogurt", items[0].Name)
}

func TestUpdateItemReplacesMutableFieldsOnly(t *testing.T) {
	database := setupTestDB(t)
	owner := createTestUser(t, database, "owner@example.com")

	item := createTestItem(t, database, owner.ID, "Rice")
	createdAt := item.CreatedAt

	barcode := "7613031234561"
	expiration := time.Now().UTC().AddDate(0, 1, 0)

	updated, err := UpdateItem(database, owner.ID, item.ID, ItemPatch{
		Name:           "Brown rice",
		Barcode:        &barcode,
		Quantity:       2.5,
		Unit:           "kg",
		ExpirationDate: &expiration,
	})
	require.NoError(t, err)

	assert.Equal(t, "Brown rice", updated.Name)
	assert.Equal(t, 2.5, updated.Quantity)
	assert.Equal(t, "kg", updated.Unit)

	var stored models.Item
	require.NoError(t, database.First(&stored, item.ID).Error)
	assert.Equal(t, owner.ID, stored.OwnerID)
	assert.WithinDuration(t, createdAt, stored.CreatedAt, time.Second)
}

func TestUpdateItemNotOwned(t *testing.T) {
	database := setupTestDB(t)
	alice := createTestUser(t, database, "alice@example.com")
	bob := createTestUser(t, database, "bob@example.com")

	item := createTestItem(t, database, alice.ID, "Butter")

	_, err := UpdateItem(database, bob.ID, item.ID, ItemPatch{Name: "Stolen butter", Quantity: 1, Unit: "pcs"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var stored models.Item
	require.NoError(t, database.First(&stored, item.ID).Error)
	assert.Equal(t, "Butter", stored.Name)
}

func TestDeleteItemPrunesRecipeLinks(t *testing.T) {
	database := setupTestDB(t)
	owner := createTestUser(t, database, "owner@example.com")

	egg := createTestItem(t, database, owner.ID, "Egg")

	recipe, err := CreateRecipe(database, owner.ID, RecipeParams{
		Name:          "Omelette",
		Servings:      2,
		IngredientIDs: []uint{egg.ID},
	})
	require.NoError(t, err)
	require.Len(t, recipe.Ingredients, 1)

	require.NoError(t, DeleteItem(database, owner.ID, egg.ID))

	// The recipe survives with the ingredient gone.
	got, err := GetRecipe(database, owner.ID, recipe.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Ingredients)

	var linkCount int64
	require.NoError(t, database.Model(&models.RecipeIngredient{}).Where("item_id = ?", egg.ID).Count(&linkCount).Error)
	assert.Zero(t, linkCount)
}

func TestDeleteItemNotOwned(t *testing.T) {
	database := setupTestDB(t)
	alice := createTestUser(t, database, "alice@example.com")
	bob := createTestUser(t, database, "bob@example.com")

	item := createTestItem(t, database, alice.ID, "Cheese")

	err := DeleteItem(database, bob.ID, item.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	require.NoError(t, database.Model(&models.Item{}).Where("id = ?", item.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
