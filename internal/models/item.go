package models

import (
	"time"
)

type Item struct {
	BaseModel

	Name string `gorm:"not null;index"`
	// Pointer so that items without a barcode store NULL and do not
	// collide on the unique index.
	Barcode        *string `gorm:"uniqueIndex"`
	Quantity       float64 `gorm:"not null"`
	Unit           string  `gorm:"not null"`
	ExpirationDate *time.Time
	OwnerID        uint `gorm:"not null;index"`

	// Relationships
	Owner   User     `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Recipes []Recipe `gorm:"many2many:recipe_ingredients" json:"-"`
}
