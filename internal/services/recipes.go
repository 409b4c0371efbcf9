package services

import (
	"errors"

	"github.com/larder-dev/larder/internal/models"
	"gorm.io/gorm"
)

type RecipeParams struct {
	Name         string
	Description  string
	Instructions string
	PrepTime     int
	CookTime     int
	Servings     int

	// Parallel lists, index-matched. Ids that do not resolve to an
	// item owned by the requester are skipped, not rejected.
	IngredientIDs        []uint
	IngredientQuantities []float64
	IngredientUnits      []string
}

func CreateRecipe(db *gorm.DB, ownerID uint, params RecipeParams) (*models.Recipe, error) {
	recipe := models.Recipe{
		Name:         params.Name,
		Description:  params.Description,
		Instructions: params.Instructions,
		PrepTime:     params.PrepTime,
		CookTime:     params.CookTime,
		Servings:     params.Servings,
		OwnerID:      ownerID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}

		seen := make(map[uint]struct{}, len(params.IngredientIDs))

		for i, ingredientID := range params.IngredientIDs {
			if _, ok := seen[ingredientID]; ok {
				continue
			}
			seen[ingredientID] = struct{}{}

			var item models.Item

			err := tx.Where("id = ? AND owner_id = ?", ingredientID, ownerID).First(&item).Error

			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}

			if err != nil {
				return err
			}

			link := models.RecipeIngredient{
				RecipeID: recipe.ID,
				ItemID:   item.ID,
			}

			if i < len(params.IngredientQuantities) {
				link.Quantity = params.IngredientQuantities[i]
			}

			if i < len(params.IngredientUnits) {
				link.Unit = params.IngredientUnits[i]
			}

			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	if err := db.Preload("Ingredients").First(&recipe, recipe.ID).Error; err != nil {
		return nil, err
	}

	return &recipe, nil
}

func ListRecipes(db *gorm.DB, ownerID uint, skip, limit int) ([]models.Recipe, error) {
	if skip < 0 {
		skip = 0
	}

	var recipes []models.Recipe

	err := db.Preload("Ingredients").
		Where("owner_id = ?", ownerID).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&recipes).Error

	if err != nil {
		return nil, err
	}

	return recipes, nil
}

func GetRecipe(db *gorm.DB, ownerID, recipeID uint) (*models.Recipe, error) {
	var recipe models.Recipe

	err := db.Preload("Ingredients").
		Where("id = ? AND owner_id = ?", recipeID, ownerID).
		First(&recipe).Error

	if err != nil {
		return nil, err
	}

	return &recipe, nil
}

func DeleteRecipe(db *gorm.DB, ownerID, recipeID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe

		if err := tx.Where("id = ? AND owner_id = ?", recipeID, ownerID).First(&recipe).Error; err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}

		return tx.Delete(&recipe).Error
	})
}
