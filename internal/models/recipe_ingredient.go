package models

// RecipeIngredient is the join row between a recipe and an item. The
// quantity/unit pair overrides the item's own values for that recipe
// and is registered with gorm via SetupJoinTable in db setup.
type RecipeIngredient struct {
	RecipeID uint `gorm:"primaryKey"`
	ItemID   uint `gorm:"primaryKey"`
	Quantity float64
	Unit     string
}
