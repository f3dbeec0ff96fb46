package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe categories. Stored as the short wire codes the API accepts.
const (
	CategoryBreakfast = "BR"
	CategoryLunch     = "LU"
	CategoryDinner    = "DI"
	CategoryDessert   = "DE"
	CategorySnack     = "SN"
	CategoryOther     = "OT"
)

// Diet types.
const (
	DietVegetarian    = "VEG"
	DietNonVegetarian = "NON"
	DietVegan         = "VGN"
)

var categoryLabels = map[string]string{
	CategoryBreakfast: "Breakfast",
	CategoryLunch:     "Lunch",
	CategoryDinner:    "Dinner",
	CategoryDessert:   "Dessert",
	CategorySnack:     "Snack",
	CategoryOther:     "Other",
}

var dietTypeLabels = map[string]string{
	DietVegetarian:    "Vegetarian",
	DietNonVegetarian: "Non-Vegetarian",
	DietVegan:         "Vegan",
}

// CategoryLabel returns the display name for a category code.
func CategoryLabel(code string) string {
	return categoryLabels[code]
}

// DietTypeLabel returns the display name for a diet type code.
func DietTypeLabel(code string) string {
	return dietTypeLabels[code]
}

type Recipe struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title        string         `gorm:"size:250;not null" json:"title"`
	Category     string         `gorm:"size:2;not null;default:'OT'" json:"category"`
	DietType     string         `gorm:"size:3;not null;default:'NON'" json:"diet_type"`
	Description  string         `gorm:"type:text" json:"description"`
	Ingredients  string         `gorm:"type:text;not null" json:"ingredients"`
	Instructions string         `gorm:"type:text;not null" json:"instructions"`
	ImageURL     string         `gorm:"size:255" json:"image_url"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Category == "" {
		r.Category = CategoryOther
	}
	if r.DietType == "" {
		r.DietType = DietNonVegetarian
	}
	return nil
}
