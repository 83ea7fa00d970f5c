// Package model contains the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"recipebox/internal/domain/entity"
)

// UserModel mirrors the 'users' table. The password hash column is typed as
// entity.Credential, which reaches the driver through Valuer/Scanner so the
// raw hash never appears as a readable string field.
type UserModel struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Username     string            `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash entity.Credential `gorm:"type:varchar(255);not null"`
	Bio          string            `gorm:"type:text"`
	ImageURL     string            `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Deleting a user cascades to their recipes.
	Recipes []RecipeModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns the ID so the row identity does not depend on a
// database-side UUID extension.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
