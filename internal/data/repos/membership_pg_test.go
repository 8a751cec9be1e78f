package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/recipebox/recipebox-backend/internal/data/repos/testutil"
	types "github.com/recipebox/recipebox-backend/internal/domain"
)

func TestMembershipRepo_UniqueIndexGuardsDuplicates(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)

	user := testutil.SeedUser(t, ctx, tx, "dup@example.com")
	recipe := testutil.SeedRecipe(t, ctx, tx, user.ID, "Pancakes")

	favorites := NewMembershipRepo[types.FavoriteRecipe, *types.FavoriteRecipe](tx, log)

	require.NoError(t, favorites.Insert(ctx, tx, user.ID, recipe.ID))

	err := favorites.Insert(ctx, tx, user.ID, recipe.ID)
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	rows, err := favorites.Delete(ctx, tx, user.ID, recipe.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)

	rows, err = favorites.Delete(ctx, tx, user.ID, recipe.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, rows)
}

func TestMembershipRepo_TablesAreIndependent(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)

	user := testutil.SeedUser(t, ctx, tx, "tables@example.com")
	recipe := testutil.SeedRecipe(t, ctx, tx, user.ID, "Soup")

	favorites := NewMembershipRepo[types.FavoriteRecipe, *types.FavoriteRecipe](tx, log)
	cart := NewMembershipRepo[types.ShoppingCart, *types.ShoppingCart](tx, log)

	require.NoError(t, favorites.Insert(ctx, tx, user.ID, recipe.ID))

	// The cart table has its own unique index, so the same pair inserts.
	require.NoError(t, cart.Insert(ctx, tx, user.ID, recipe.ID))

	inCart, err := cart.Exists(ctx, tx, user.ID, recipe.ID)
	require.NoError(t, err)
	require.True(t, inCart)

	ids, err := favorites.RecipeIDs(ctx, tx, user.ID)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{recipe.ID}, ids)
}

func TestRecipeIngredientRepo_CartTotalsGroupsByNameAndUnit(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)

	user := testutil.SeedUser(t, ctx, tx, "totals@example.com")
	flour := testutil.SeedIngredient(t, ctx, tx, "flour", "g")
	sugar := testutil.SeedIngredient(t, ctx, tx, "sugar", "g")
	milk := testutil.SeedIngredient(t, ctx, tx, "milk", "ml")

	pancakes := testutil.SeedRecipe(t, ctx, tx, user.ID, "Pancakes")
	cake := testutil.SeedRecipe(t, ctx, tx, user.ID, "Cake")
	testutil.SeedIngredientLine(t, ctx, tx, pancakes.ID, flour.ID, 200)
	testutil.SeedIngredientLine(t, ctx, tx, pancakes.ID, milk.ID, 500)
	testutil.SeedIngredientLine(t, ctx, tx, cake.ID, flour.ID, 100)
	testutil.SeedIngredientLine(t, ctx, tx, cake.ID, sugar.ID, 50)

	cart := NewMembershipRepo[types.ShoppingCart, *types.ShoppingCart](tx, log)
	require.NoError(t, cart.Insert(ctx, tx, user.ID, pancakes.ID))
	require.NoError(t, cart.Insert(ctx, tx, user.ID, cake.ID))

	lineRepo := NewRecipeIngredientRepo(tx, log)
	totals, err := lineRepo.CartTotals(ctx, tx, user.ID)
	require.NoError(t, err)

	byName := make(map[string]IngredientTotal, len(totals))
	for _, row := range totals {
		byName[row.Name+"/"+row.MeasurementUnit] = row
	}
	require.Len(t, byName, 3)
	require.Equal(t, 300, byName["flour/g"].Total)
	require.Equal(t, 50, byName["sugar/g"].Total)
	require.Equal(t, 500, byName["milk/ml"].Total)
}

func TestRecipeIngredientRepo_CartTotalsScopedToUser(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)

	owner := testutil.SeedUser(t, ctx, tx, "owner@example.com")
	other := testutil.SeedUser(t, ctx, tx, "other@example.com")
	flour := testutil.SeedIngredient(t, ctx, tx, "flour2", "g")
	recipe := testutil.SeedRecipe(t, ctx, tx, owner.ID, "Bread")
	testutil.SeedIngredientLine(t, ctx, tx, recipe.ID, flour.ID, 400)

	cart := NewMembershipRepo[types.ShoppingCart, *types.ShoppingCart](tx, log)
	require.NoError(t, cart.Insert(ctx, tx, owner.ID, recipe.ID))

	lineRepo := NewRecipeIngredientRepo(tx, log)
	totals, err := lineRepo.CartTotals(ctx, tx, other.ID)
	require.NoError(t, err)
	require.Empty(t, totals)
}
