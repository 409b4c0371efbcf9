package models

type Recipe struct {
	BaseModel

	Name         string `gorm:"not null;index"`
	Description  string
	Instructions string
	PrepTime     int  `gorm:"not null"` // minutes
	CookTime     int  `gorm:"not null"` // minutes
	Servings     int  `gorm:"not null"`
	OwnerID      uint `gorm:"not null;index"`

	// Relationships
	Owner       User   `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Ingredients []Item `gorm:"many2many:recipe_ingredients"`
}
