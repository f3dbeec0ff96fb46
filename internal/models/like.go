package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like records that a user likes a recipe. A user can hold at most one like
// per recipe, enforced by the composite unique index.
type Like struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_user_recipe,priority:1" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_user_recipe,priority:2" json:"recipe_id"`
}

func (Like) TableName() string {
	return "likes"
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
