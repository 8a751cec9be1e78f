package app

import (
	"gorm.io/gorm"

	"github.com/recipebox/recipebox-backend/internal/pkg/logger"
	"github.com/recipebox/recipebox-backend/internal/services"
)

type Services struct {
	Auth         services.AuthService
	User         services.UserService
	Subscription services.SubscriptionService
	Ingredient   services.IngredientService
	Tag          services.TagService
	Validator    services.RecipeValidator
	Images       services.ImageStore
	Recipe       services.RecipeService
	Membership   services.MembershipService
	ShoppingList services.ShoppingListService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) Services {
	log.Info("Wiring services...")

	validator := services.NewRecipeValidator(log, reposet.Ingredient, reposet.Tag)
	images := services.NewImageStore(log, cfg.MediaDir)

	return Services{
		Auth:         services.NewAuthService(db, log, reposet.User, cfg.JWTSecretKey, cfg.AccessTokenTTL),
		User:         services.NewUserService(db, log, reposet.User, reposet.Subscription),
		Subscription: services.NewSubscriptionService(db, log, reposet.User, reposet.Recipe, reposet.Subscription),
		Ingredient:   services.NewIngredientService(log, reposet.Ingredient),
		Tag:          services.NewTagService(log, reposet.Tag),
		Validator:    validator,
		Images:       images,
		Recipe: services.NewRecipeService(
			db,
			log,
			validator,
			images,
			reposet.Recipe,
			reposet.RecipeIngredient,
			reposet.RecipeTag,
			reposet.Tag,
			reposet.Favorites,
			reposet.Cart,
			reposet.Subscription,
		),
		Membership:   services.NewMembershipService(db, log, reposet.Recipe, reposet.Favorites, reposet.Cart),
		ShoppingList: services.NewShoppingListService(log, reposet.Cart, reposet.RecipeIngredient),
	}
}
