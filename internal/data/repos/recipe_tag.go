package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/recipebox/recipebox-backend/internal/domain"
	"github.com/recipebox/recipebox-backend/internal/pkg/logger"
)

type RecipeTagRepo interface {
	Insert(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID, tagIDs []uuid.UUID) error
	DeleteForRecipe(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID) error
}

type recipeTagRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecipeTagRepo(db *gorm.DB, baseLog *logger.Logger) RecipeTagRepo {
	return &recipeTagRepo{db: db, log: baseLog.With("repo", "RecipeTagRepo")}
}

func (rtr *recipeTagRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return rtr.db
}

func (rtr *recipeTagRepo) Insert(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		return nil
	}
	joins := make([]*types.RecipeTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		joins = append(joins, &types.RecipeTag{RecipeID: recipeID, TagID: tagID})
	}
	return rtr.handle(tx).WithContext(ctx).Create(&joins).Error
}

func (rtr *recipeTagRepo) DeleteForRecipe(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID) error {
	return rtr.handle(tx).WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Delete(&types.RecipeTag{}).Error
}
