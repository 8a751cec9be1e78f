package types

import (
	"time"

	"github.com/google/uuid"
)

// MembershipPair is the shared shape behind the favorites and shopping-cart
// collections: one (user, recipe) pair, unique per table, no other payload.
// The composite unique index is the authoritative duplicate guard; callers
// treat a duplicate-key insert as "already a member" rather than pre-checking.
type MembershipPair struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index:,unique,composite:user_recipe" json:"user_id"`
	User     *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null;index:,unique,composite:user_recipe" json:"recipe_id"`
	Recipe   *Recipe   `gorm:"constraint:OnDelete:CASCADE;foreignKey:RecipeID;references:ID" json:"recipe,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

// SetPair fills the identifying pair. Used by the generic membership repo,
// which cannot assign promoted fields of a type parameter directly.
func (p *MembershipPair) SetPair(userID, recipeID uuid.UUID) {
	p.UserID = userID
	p.RecipeID = recipeID
}

type FavoriteRecipe struct {
	MembershipPair
}

func (FavoriteRecipe) TableName() string { return "favorite_recipe" }

type ShoppingCart struct {
	MembershipPair
}

func (ShoppingCart) TableName() string { return "shopping_cart" }
