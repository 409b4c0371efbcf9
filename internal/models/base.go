package models

import (
	"time"
)

// BaseModel is gorm.Model without the soft-delete column. Items and
// recipes are removed immediately on delete, so DeletedAt must not
// exist or association cleanup would leave phantom rows behind.
type BaseModel struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
