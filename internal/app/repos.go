package app

import (
	"gorm.io/gorm"

	"github.com/recipebox/recipebox-backend/internal/data/repos"
	types "github.com/recipebox/recipebox-backend/internal/domain"
	"github.com/recipebox/recipebox-backend/internal/pkg/logger"
)

type Repos struct {
	User             repos.UserRepo
	Subscription     repos.SubscriptionRepo
	Ingredient       repos.IngredientRepo
	Tag              repos.TagRepo
	Recipe           repos.RecipeRepo
	RecipeIngredient repos.RecipeIngredientRepo
	RecipeTag        repos.RecipeTagRepo
	Favorites        repos.MembershipStore
	Cart             repos.MembershipStore
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:             repos.NewUserRepo(db, log),
		Subscription:     repos.NewSubscriptionRepo(db, log),
		Ingredient:       repos.NewIngredientRepo(db, log),
		Tag:              repos.NewTagRepo(db, log),
		Recipe:           repos.NewRecipeRepo(db, log),
		RecipeIngredient: repos.NewRecipeIngredientRepo(db, log),
		RecipeTag:        repos.NewRecipeTagRepo(db, log),
		Favorites:        repos.NewMembershipRepo[types.FavoriteRecipe, *types.FavoriteRecipe](db, log),
		Cart:             repos.NewMembershipRepo[types.ShoppingCart, *types.ShoppingCart](db, log),
	}
}
