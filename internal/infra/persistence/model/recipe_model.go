package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeModel mirrors the 'recipes' table. UserID references users.id (UUID).
type RecipeModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title             string    `gorm:"type:varchar(255);not null"`
	Instructions      string    `gorm:"type:text;not null"`
	MinutesToComplete int
	UserID            uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}

// BeforeCreate assigns the ID so the row identity does not depend on a
// database-side UUID extension.
func (m *RecipeModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
