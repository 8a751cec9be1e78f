package app

import (
	httpH "github.com/recipebox/recipebox-backend/internal/http/handlers"
	"github.com/recipebox/recipebox-backend/internal/pkg/logger"
)

type Handlers struct {
	Auth       *httpH.AuthHandler
	User       *httpH.UserHandler
	Ingredient *httpH.IngredientHandler
	Tag        *httpH.TagHandler
	Recipe     *httpH.RecipeHandler
	Health     *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:       httpH.NewAuthHandler(log, serviceset.Auth),
		User:       httpH.NewUserHandler(log, serviceset.User, serviceset.Subscription),
		Ingredient: httpH.NewIngredientHandler(log, serviceset.Ingredient),
		Tag:        httpH.NewTagHandler(log, serviceset.Tag),
		Recipe:     httpH.NewRecipeHandler(log, serviceset.Recipe, serviceset.Membership, serviceset.ShoppingList),
		Health:     httpH.NewHealthHandler(),
	}
}
