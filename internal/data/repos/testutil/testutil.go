package testutil

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/recipebox/recipebox-backend/internal/data/db"
	types "github.com/recipebox/recipebox-backend/internal/domain"
	"github.com/recipebox/recipebox-backend/internal/pkg/logger"
)

var errMissingDSN = errors.New("missing TEST_POSTGRES_DSN")

var (
	dbOnce sync.Once
	gdb    *gorm.DB
	dbErr  error
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	return logger.Nop()
}

// DB returns a migrated test database, shared across the package's tests.
// Tests run inside Tx so they never see each other's rows.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dbOnce.Do(func() {
		dsn := os.Getenv("TEST_POSTGRES_DSN")
		if dsn == "" {
			dbErr = errMissingDSN
			return
		}

		var err error
		gdb, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
			TranslateError: true,
		})
		if err != nil {
			dbErr = err
			return
		}

		if err := gdb.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
			dbErr = err
			return
		}

		if err := db.AutoMigrateAll(gdb); err != nil {
			dbErr = err
			return
		}
	})

	if errors.Is(dbErr, errMissingDSN) {
		tb.Skip("set TEST_POSTGRES_DSN to run storage integration tests")
	}
	if dbErr != nil {
		tb.Fatalf("failed to init test db: %v", dbErr)
	}
	return gdb
}

// Tx begins a transaction that rolls back when the test finishes.
func Tx(tb testing.TB, gdb *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := gdb.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:        uuid.New(),
		Email:     email,
		Username:  email,
		FirstName: "A",
		LastName:  "B",
		Password:  "pw",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedIngredient(tb testing.TB, ctx context.Context, tx *gorm.DB, name, unit string) *types.Ingredient {
	tb.Helper()
	i := &types.Ingredient{
		ID:              uuid.New(),
		Name:            name,
		MeasurementUnit: unit,
	}
	if err := tx.WithContext(ctx).Create(i).Error; err != nil {
		tb.Fatalf("seed ingredient: %v", err)
	}
	return i
}

func SeedTag(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Tag {
	tb.Helper()
	t := &types.Tag{
		ID:    uuid.New(),
		Name:  name,
		Color: "#49B64E",
		Slug:  name,
	}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed tag: %v", err)
	}
	return t
}

func SeedRecipe(tb testing.TB, ctx context.Context, tx *gorm.DB, authorID uuid.UUID, name string) *types.Recipe {
	tb.Helper()
	r := &types.Recipe{
		ID:          uuid.New(),
		AuthorID:    authorID,
		Name:        name,
		Text:        "test recipe",
		CookingTime: 10,
	}
	if err := tx.WithContext(ctx).Omit("Ingredients", "Tags").Create(r).Error; err != nil {
		tb.Fatalf("seed recipe: %v", err)
	}
	return r
}

func SeedIngredientLine(tb testing.TB, ctx context.Context, tx *gorm.DB, recipeID, ingredientID uuid.UUID, amount int) *types.RecipeIngredient {
	tb.Helper()
	line := &types.RecipeIngredient{
		ID:           uuid.New(),
		RecipeID:     recipeID,
		IngredientID: ingredientID,
		Amount:       amount,
	}
	if err := tx.WithContext(ctx).Create(line).Error; err != nil {
		tb.Fatalf("seed ingredient line: %v", err)
	}
	return line
}
