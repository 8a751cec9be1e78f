package repos

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/recipebox/recipebox-backend/internal/data/repos/testutil"
)

func TestRecipeRepo_PreloadedReadCarriesLinesAndAuthor(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)

	author := testutil.SeedUser(t, ctx, tx, "author@example.com")
	flour := testutil.SeedIngredient(t, ctx, tx, "flour3", "g")
	recipe := testutil.SeedRecipe(t, ctx, tx, author.ID, "Bread")
	testutil.SeedIngredientLine(t, ctx, tx, recipe.ID, flour.ID, 400)

	recipeRepo := NewRecipeRepo(tx, log)
	got, err := recipeRepo.GetByIDPreloaded(ctx, tx, recipe.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Author)
	require.Equal(t, author.ID, got.Author.ID)
	require.Len(t, got.Ingredients, 1)
	require.NotNil(t, got.Ingredients[0].Ingredient)
	require.Equal(t, "flour3", got.Ingredients[0].Ingredient.Name)
	require.Equal(t, 400, got.Ingredients[0].Amount)
}

func TestRecipeRepo_ListFiltersByAuthorAndPaginates(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)

	alice := testutil.SeedUser(t, ctx, tx, "alice@example.com")
	bob := testutil.SeedUser(t, ctx, tx, "bob@example.com")
	for _, name := range []string{"Soup", "Stew", "Salad"} {
		testutil.SeedRecipe(t, ctx, tx, alice.ID, name)
	}
	testutil.SeedRecipe(t, ctx, tx, bob.ID, "Toast")

	recipeRepo := NewRecipeRepo(tx, log)

	recipes, total, err := recipeRepo.List(ctx, tx, RecipeFilter{AuthorID: &alice.ID, Page: 1, Limit: 2})
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, recipes, 2)
	for _, recipe := range recipes {
		require.Equal(t, alice.ID, recipe.AuthorID)
	}

	recipes, total, err = recipeRepo.List(ctx, tx, RecipeFilter{AuthorID: &alice.ID, Page: 2, Limit: 2})
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, recipes, 1)
}

func TestRecipeRepo_DeleteReportsRows(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)

	author := testutil.SeedUser(t, ctx, tx, "deleter@example.com")
	recipe := testutil.SeedRecipe(t, ctx, tx, author.ID, "Gone")

	recipeRepo := NewRecipeRepo(tx, log)
	rows, err := recipeRepo.Delete(ctx, tx, recipe.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)

	rows, err = recipeRepo.Delete(ctx, tx, recipe.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, rows)
}
