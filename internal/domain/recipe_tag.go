package types

import (
	"github.com/google/uuid"
)

// RecipeTag is the pure join behind Recipe.Tags, carried as an explicit model
// so tag associations can be replaced wholesale inside a recipe write.
type RecipeTag struct {
	RecipeID uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	TagID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"tag_id"`
	Tag      *Tag      `gorm:"constraint:OnDelete:CASCADE;foreignKey:TagID;references:ID" json:"tag,omitempty"`
}

func (RecipeTag) TableName() string { return "recipe_tag" }
