package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/recipebox/recipebox-backend/internal/domain"
	"github.com/recipebox/recipebox-backend/internal/pkg/logger"
)

type IngredientRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Ingredient, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Ingredient, error)
	List(ctx context.Context, tx *gorm.DB, namePrefix string) ([]*types.Ingredient, error)
}

type ingredientRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIngredientRepo(db *gorm.DB, baseLog *logger.Logger) IngredientRepo {
	return &ingredientRepo{db: db, log: baseLog.With("repo", "IngredientRepo")}
}

func (ir *ingredientRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return ir.db
}

func (ir *ingredientRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Ingredient, error) {
	var ingredient types.Ingredient
	if err := ir.handle(tx).WithContext(ctx).
		First(&ingredient, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (ir *ingredientRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Ingredient, error) {
	var results []*types.Ingredient
	if len(ids) == 0 {
		return results, nil
	}
	if err := ir.handle(tx).WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ir *ingredientRepo) List(ctx context.Context, tx *gorm.DB, namePrefix string) ([]*types.Ingredient, error) {
	query := ir.handle(tx).WithContext(ctx).Model(&types.Ingredient{})
	if namePrefix != "" {
		query = query.Where("name LIKE ?", namePrefix+"%")
	}
	var results []*types.Ingredient
	if err := query.Order("name ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
