package types

import (
	"time"

	"github.com/google/uuid"
)

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	AuthorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`
	Author      *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:AuthorID;references:ID" json:"author,omitempty"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Text        string    `gorm:"column:text;not null" json:"text"`
	Image       string    `gorm:"column:image" json:"image"`
	CookingTime int       `gorm:"column:cooking_time;not null;default:1" json:"cooking_time"`

	// PubDate is set once at creation and never touched on update.
	// Listings order by it descending.
	PubDate time.Time `gorm:"column:pub_date;not null;default:now();index" json:"pub_date"`

	Ingredients []RecipeIngredient `gorm:"constraint:OnDelete:CASCADE;foreignKey:RecipeID;references:ID" json:"ingredients,omitempty"`
	Tags        []Tag              `gorm:"many2many:recipe_tag" json:"tags,omitempty"`

	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Recipe) TableName() string { return "recipe" }
