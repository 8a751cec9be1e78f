package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recipebox/recipebox-backend/internal/data/repos"
	types "github.com/recipebox/recipebox-backend/internal/domain"
	"github.com/recipebox/recipebox-backend/internal/pkg/apperr"
	"github.com/recipebox/recipebox-backend/internal/pkg/logger"
)

// IngredientService exposes the read-only ingredient catalog.
type IngredientService interface {
	Get(ctx context.Context, id uuid.UUID) (*types.Ingredient, error)
	List(ctx context.Context, namePrefix string) ([]*types.Ingredient, error)
}

type ingredientService struct {
	log            *logger.Logger
	ingredientRepo repos.IngredientRepo
}

func NewIngredientService(log *logger.Logger, ingredientRepo repos.IngredientRepo) IngredientService {
	return &ingredientService{
		log:            log.With("service", "IngredientService"),
		ingredientRepo: ingredientRepo,
	}
}

func (is *ingredientService) Get(ctx context.Context, id uuid.UUID) (*types.Ingredient, error) {
	ingredient, err := is.ingredientRepo.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return ingredient, nil
}

func (is *ingredientService) List(ctx context.Context, namePrefix string) ([]*types.Ingredient, error) {
	return is.ingredientRepo.List(ctx, nil, namePrefix)
}
