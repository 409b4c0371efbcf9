package services

import (
	"errors"
	"math/rand"

	"github.com/larder-dev/larder/internal/models"
	"gorm.io/gorm"
)

var ErrNoRecommendations = errors.New("no recipes available with current ingredients")

// Recommendations returns the recipes whose ingredient-id set is a
// subset of the requester's owned item ids. Matching is by identity
// only — on-hand quantity is deliberately ignored. Order follows the
// underlying listing; there is no ranking by closeness.
func Recommendations(db *gorm.DB, ownerID uint) ([]models.Recipe, error) {
	var items []models.Item

	if err := db.Where("owner_id = ?", ownerID).Find(&items).Error; err != nil {
		return nil, err
	}

	owned := make(map[uint]struct{}, len(items))

	for _, item := range items {
		owned[item.ID] = struct{}{}
	}

	var recipes []models.Recipe

	err := db.Preload("Ingredients").
		Where("owner_id = ?", ownerID).
		Order("id").
		Find(&recipes).Error

	if err != nil {
		return nil, err
	}

	recommended := make([]models.Recipe, 0, len(recipes))

	for _, recipe := range recipes {
		if satisfiable(recipe, owned) {
			recommended = append(recommended, recipe)
		}
	}

	return recommended, nil
}

// satisfiable reports whether every ingredient of the recipe is on
// hand. A recipe with no ingredients is vacuously satisfiable.
func satisfiable(recipe models.Recipe, owned map[uint]struct{}) bool {
	for _, ingredient := range recipe.Ingredients {
		if _, ok := owned[ingredient.ID]; !ok {
			return false
		}
	}

	return true
}

// RandomRecommendation draws one recipe uniformly from the current
// recommendation list. ErrNoRecommendations when the list is empty.
func RandomRecommendation(db *gorm.DB, ownerID uint) (*models.Recipe, error) {
	recommended, err := Recommendations(db, ownerID)

	if err != nil {
		return nil, err
	}

	if len(recommended) == 0 {
		return nil, ErrNoRecommendations
	}

	pick := recommended[rand.Intn(len(recommended))]

	return &pick, nil
}
