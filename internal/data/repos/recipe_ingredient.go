package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/recipebox/recipebox-backend/internal/domain"
	"github.com/recipebox/recipebox-backend/internal/pkg/logger"
)

// IngredientTotal is one aggregated shopping-list row: every ingredient line
// across the cart collapsed by (name, unit) with amounts summed.
type IngredientTotal struct {
	Name            string `gorm:"column:name"`
	MeasurementUnit string `gorm:"column:measurement_unit"`
	Total           int    `gorm:"column:total"`
}

type RecipeIngredientRepo interface {
	Insert(ctx context.Context, tx *gorm.DB, lines []*types.RecipeIngredient) error
	DeleteForRecipe(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID) error
	ListForRecipe(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID) ([]*types.RecipeIngredient, error)
	CartTotals(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]IngredientTotal, error)
}

type recipeIngredientRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecipeIngredientRepo(db *gorm.DB, baseLog *logger.Logger) RecipeIngredientRepo {
	return &recipeIngredientRepo{db: db, log: baseLog.With("repo", "RecipeIngredientRepo")}
}

func (rir *recipeIngredientRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return rir.db
}

func (rir *recipeIngredientRepo) Insert(ctx context.Context, tx *gorm.DB, lines []*types.RecipeIngredient) error {
	if len(lines) == 0 {
		return nil
	}
	return rir.handle(tx).WithContext(ctx).Create(&lines).Error
}

func (rir *recipeIngredientRepo) DeleteForRecipe(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID) error {
	return rir.handle(tx).WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Delete(&types.RecipeIngredient{}).Error
}

func (rir *recipeIngredientRepo) ListForRecipe(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID) ([]*types.RecipeIngredient, error) {
	var lines []*types.RecipeIngredient
	if err := rir.handle(tx).WithContext(ctx).
		Preload("Ingredient").
		Where("recipe_id = ?", recipeID).
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// CartTotals groups by ingredient name and unit rather than ingredient id, so
// two catalog rows sharing both merge into one shopping-list line. Ordering
// is finalized in the aggregator, not here.
func (rir *recipeIngredientRepo) CartTotals(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]IngredientTotal, error) {
	var totals []IngredientTotal
	if err := rir.handle(tx).WithContext(ctx).
		Table("shopping_cart").
		Select("ingredient.name AS name, ingredient.measurement_unit AS measurement_unit, SUM(recipe_ingredient.amount) AS total").
		Joins("JOIN recipe_ingredient ON recipe_ingredient.recipe_id = shopping_cart.recipe_id").
		Joins("JOIN ingredient ON ingredient.id = recipe_ingredient.ingredient_id").
		Where("shopping_cart.user_id = ?", userID).
		Group("ingredient.name, ingredient.measurement_unit").
		Scan(&totals).Error; err != nil {
		return nil, err
	}
	return totals, nil
}
