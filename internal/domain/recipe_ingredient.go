package types

import (
	"github.com/google/uuid"
)

// RecipeIngredient binds one recipe to one ingredient with a bounded amount.
// Rows live and die with their parent recipe: an update replaces the whole
// set, a recipe delete cascades.
type RecipeIngredient struct {
	ID           uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RecipeID     uuid.UUID   `gorm:"type:uuid;not null;index:,unique,composite:recipe_ingredient" json:"recipe_id"`
	IngredientID uuid.UUID   `gorm:"type:uuid;not null;index:,unique,composite:recipe_ingredient" json:"ingredient_id"`
	Ingredient   *Ingredient `gorm:"constraint:OnDelete:CASCADE;foreignKey:IngredientID;references:ID" json:"ingredient,omitempty"`
	Amount       int         `gorm:"column:amount;not null;default:1" json:"amount"`
}

func (RecipeIngredient) TableName() string { return "recipe_ingredient" }
