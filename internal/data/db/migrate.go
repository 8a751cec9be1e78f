package db

import (
	"gorm.io/gorm"

	types "github.com/recipebox/recipebox-backend/internal/domain"
)

func AutoMigrateAll(gdb *gorm.DB) error {
	if err := gdb.SetupJoinTable(&types.Recipe{}, "Tags", &types.RecipeTag{}); err != nil {
		return err
	}
	return gdb.AutoMigrate(

		// Identity
		&types.User{},
		&types.Subscription{},

		// Reference data
		&types.Ingredient{},
		&types.Tag{},

		// Recipe graph
		&types.Recipe{},
		&types.RecipeIngredient{},
		&types.RecipeTag{},

		// Per-user collections
		&types.FavoriteRecipe{},
		&types.ShoppingCart{},
	)
}
