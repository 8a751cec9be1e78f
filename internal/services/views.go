package services

import (
	"time"

	"github.com/google/uuid"

	types "github.com/recipebox/recipebox-backend/internal/domain"
)

// UserView is the author block of a recipe read view, with the subscription
// flag computed for the requesting user.
type UserView struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	IsSubscribed bool      `json:"is_subscribed"`
}

// IngredientLineView flattens one ingredient line with its resolved catalog
// record.
type IngredientLineView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	MeasurementUnit string    `json:"measurement_unit"`
	Amount          int       `json:"amount"`
}

// RecipeView is the full recipe representation served on reads and after
// writes, including per-requester membership flags.
type RecipeView struct {
	ID               uuid.UUID            `json:"id"`
	Tags             []*types.Tag         `json:"tags"`
	Author           UserView             `json:"author"`
	Ingredients      []IngredientLineView `json:"ingredients"`
	IsFavorited      bool                 `json:"is_favorited"`
	IsInShoppingCart bool                 `json:"is_in_shopping_cart"`
	Name             string               `json:"name"`
	Image            string               `json:"image"`
	Text             string               `json:"text"`
	CookingTime      int                  `json:"cooking_time"`
	PubDate          time.Time            `json:"pub_date"`
}

// RecipeSummary is the brief shape returned by membership adds and nested
// under subscription listings.
type RecipeSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	CookingTime int       `json:"cooking_time"`
}

// RecipePage is one page of a recipe listing.
type RecipePage struct {
	Count   int64        `json:"count"`
	Page    int          `json:"page"`
	Limit   int          `json:"limit"`
	Results []RecipeView `json:"results"`
}

// SubscriptionView is one followed author with their recipes.
type SubscriptionView struct {
	UserView
	RecipesCount int             `json:"recipes_count"`
	Recipes      []RecipeSummary `json:"recipes"`
}

func summaryOf(recipe *types.Recipe) RecipeSummary {
	return RecipeSummary{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		CookingTime: recipe.CookingTime,
	}
}
