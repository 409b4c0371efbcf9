package services

import (
	"time"

	"github.com/larder-dev/larder/internal/models"
	"gorm.io/gorm"
)

const (
	DefaultListLimit          = 100
	DefaultExpiringWindowDays = 7
)

// ItemPatch is the whitelist of client-mutable item fields. Updates go
// through it so owner_id and created_at can never be written from a
// request body, regardless of how the schema evolves.
type ItemPatch struct {
	Name           string
	Barcode        *string
	Quantity       float64
	Unit           string
	ExpirationDate *time.Time
}

func CreateItem(db *gorm.DB, ownerID uint, patch ItemPatch) (*models.Item, error) {
	item := models.Item{
		Name:           patch.Name,
		Barcode:        patch.Barcode,
		Quantity:       patch.Quantity,
		Unit:           patch.Unit,
		ExpirationDate: patch.ExpirationDate,
		OwnerID:        ownerID,
	}

	// Barcode uniqueness is left to the store; a collision surfaces
	// as gorm.ErrDuplicatedKey.
	if err := db.Create(&item).Error; err != nil {
		return nil, err
	}

	return &item, nil
}

// ListItems pages through the requester's items. The limit is honored
// as supplied and deliberately not capped.
func ListItems(db *gorm.DB, ownerID uint, skip, limit int) ([]models.Item, error) {
	if skip < 0 {
		skip = 0
	}

	var items []models.Item

	if err := db.Where("owner_id = ?", ownerID).Order("id").Offset(skip).Limit(limit).Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

// ExpiringItems returns items whose expiration date falls within the
// next `days` days. Items without an expiration date are excluded.
func ExpiringItems(db *gorm.DB, ownerID uint, days int) ([]models.Item, error) {
	return expiringItemsAt(db, ownerID, days, time.Now().UTC())
}

func expiringItemsAt(db *gorm.DB, ownerID uint, days int, now time.Time) ([]models.Item, error) {
	if days < 0 {
		days = DefaultExpiringWindowDays
	}

	threshold := now.AddDate(0, 0, days)

	var items []models.Item

	// Closed interval: an item expiring exactly now or exactly at the
	// threshold is included.
	err := db.Where("owner_id = ? AND expiration_date >= ? AND expiration_date <= ?", ownerID, now, threshold).
		Order("id").
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func GetItem(db *gorm.DB, ownerID, itemID uint) (*models.Item, error) {
	var item models.Item

	if err := db.Where("id = ? AND owner_id = ?", itemID, ownerID).First(&item).Error; err != nil {
		return nil, err
	}

	return &item, nil
}

// UpdateItem replaces all mutable fields of an owned item. Missing or
// foreign items fail with gorm.ErrRecordNotFound.
func UpdateItem(db *gorm.DB, ownerID, itemID uint, patch ItemPatch) (*models.Item, error) {
	var item models.Item

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND owner_id = ?", itemID, ownerID).First(&item).Error; err != nil {
			return err
		}

		item.Name = patch.Name
		item.Barcode = patch.Barcode
		item.Quantity = patch.Quantity
		item.Unit = patch.Unit
		item.ExpirationDate = patch.ExpirationDate

		return tx.Model(&item).
			Select("name", "barcode", "quantity", "unit", "expiration_date").
			Updates(&item).Error
	})

	if err != nil {
		return nil, err
	}

	return &item, nil
}

// DeleteItem removes an owned item and its recipe associations.
// Recipes that referenced the item remain, with the ingredient gone.
func DeleteItem(db *gorm.DB, ownerID, itemID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var item models.Item

		if err := tx.Where("id = ? AND owner_id = ?", itemID, ownerID).First(&item).Error; err != nil {
			return err
		}

		if err := tx.Where("item_id = ?", item.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}

		return tx.Delete(&item).Error
	})
}
