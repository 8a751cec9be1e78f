package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/recipebox/recipebox-backend/internal/domain"
	"github.com/recipebox/recipebox-backend/internal/pkg/logger"
)

// RecipeFilter narrows and pages a recipe listing. Zero values mean "no
// constraint"; Page is 1-based.
type RecipeFilter struct {
	AuthorID    *uuid.UUID
	TagSlugs    []string
	FavoritedBy *uuid.UUID
	InCartOf    *uuid.UUID
	Page        int
	Limit       int
}

type RecipeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, recipe *types.Recipe) (*types.Recipe, error)
	UpdateScalars(ctx context.Context, tx *gorm.DB, recipe *types.Recipe, columns map[string]interface{}) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Recipe, error)
	GetByIDPreloaded(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Recipe, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int64, error)
	List(ctx context.Context, tx *gorm.DB, filter RecipeFilter) ([]*types.Recipe, int64, error)
}

type recipeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecipeRepo(db *gorm.DB, baseLog *logger.Logger) RecipeRepo {
	return &recipeRepo{db: db, log: baseLog.With("repo", "RecipeRepo")}
}

func (rr *recipeRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return rr.db
}

func (rr *recipeRepo) Create(ctx context.Context, tx *gorm.DB, recipe *types.Recipe) (*types.Recipe, error) {
	// Associations are written explicitly by the mutation service, never as a
	// side effect of the recipe insert.
	if err := rr.handle(tx).WithContext(ctx).
		Omit("Ingredients", "Tags").
		Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

func (rr *recipeRepo) UpdateScalars(ctx context.Context, tx *gorm.DB, recipe *types.Recipe, columns map[string]interface{}) error {
	if len(columns) == 0 {
		return nil
	}
	return rr.handle(tx).WithContext(ctx).
		Model(recipe).
		Updates(columns).Error
}

func (rr *recipeRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Recipe, error) {
	var recipe types.Recipe
	if err := rr.handle(tx).WithContext(ctx).
		First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (rr *recipeRepo) GetByIDPreloaded(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Recipe, error) {
	var recipe types.Recipe
	if err := rr.handle(tx).WithContext(ctx).
		Preload("Author").
		Preload("Ingredients.Ingredient").
		Preload("Tags").
		First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (rr *recipeRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int64, error) {
	result := rr.handle(tx).WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Recipe{})
	return result.RowsAffected, result.Error
}

func (rr *recipeRepo) List(ctx context.Context, tx *gorm.DB, filter RecipeFilter) ([]*types.Recipe, int64, error) {
	query := rr.handle(tx).WithContext(ctx).Model(&types.Recipe{})

	if filter.AuthorID != nil {
		query = query.Where("recipe.author_id = ?", *filter.AuthorID)
	}
	if len(filter.TagSlugs) > 0 {
		query = query.
			Joins("JOIN recipe_tag ON recipe_tag.recipe_id = recipe.id").
			Joins("JOIN tag ON tag.id = recipe_tag.tag_id").
			Where("tag.slug IN ?", filter.TagSlugs).
			Distinct("recipe.*")
	}
	if filter.FavoritedBy != nil {
		query = query.
			Joins("JOIN favorite_recipe ON favorite_recipe.recipe_id = recipe.id").
			Where("favorite_recipe.user_id = ?", *filter.FavoritedBy)
	}
	if filter.InCartOf != nil {
		query = query.
			Joins("JOIN shopping_cart ON shopping_cart.recipe_id = recipe.id").
			Where("shopping_cart.user_id = ?", *filter.InCartOf)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.
		Preload("Author").
		Preload("Ingredients.Ingredient").
		Preload("Tags").
		Order("recipe.pub_date DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
		if filter.Page > 1 {
			query = query.Offset((filter.Page - 1) * filter.Limit)
		}
	}

	var recipes []*types.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}
