package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/recipebox/recipebox-backend/internal/domain"
	"github.com/recipebox/recipebox-backend/internal/pkg/apperr"
	"github.com/recipebox/recipebox-backend/internal/pkg/logger"
)

const (
	minNameLength  = 4
	minCookingTime = 1
	maxCookingTime = 300
	minAmount      = 1
	maxAmount      = 5000
)

// IngredientCatalog and TagCatalog are the read-only lookups the validator
// resolves payload ids against. The GORM repos satisfy them.
type IngredientCatalog interface {
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Ingredient, error)
}

type TagCatalog interface {
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Tag, error)
}

// IngredientAmount is one submitted ingredient line: catalog id plus amount.
type IngredientAmount struct {
	ID     uuid.UUID `json:"id" binding:"required"`
	Amount int       `json:"amount"`
}

// RecipePayload is a candidate recipe write. Nil pointers and nil slices mean
// "field absent", which a partial update leaves untouched.
type RecipePayload struct {
	Name        *string
	Text        *string
	Image       *string
	CookingTime *int
	Ingredients []IngredientAmount
	TagIDs      []uuid.UUID
}

// ValidatedRecipe is the normalized result: the name is trimmed and every
// referenced ingredient carries its resolved catalog record.
type ValidatedRecipe struct {
	Name        *string
	Text        *string
	Image       *string
	CookingTime *int
	Ingredients []ValidatedIngredient
	TagIDs      []uuid.UUID
}

type ValidatedIngredient struct {
	Ingredient *types.Ingredient
	Amount     int
}

// RecipeValidator checks a payload against the catalogs and the business
// rules. Every rule is evaluated and every failure collected under its field
// key; nothing short-circuits after the first hit. The validator never
// writes.
type RecipeValidator interface {
	Validate(ctx context.Context, payload RecipePayload, partial bool) (*ValidatedRecipe, error)
}

type recipeValidator struct {
	log         *logger.Logger
	ingredients IngredientCatalog
	tags        TagCatalog
}

func NewRecipeValidator(log *logger.Logger, ingredients IngredientCatalog, tags TagCatalog) RecipeValidator {
	return &recipeValidator{
		log:         log.With("service", "RecipeValidator"),
		ingredients: ingredients,
		tags:        tags,
	}
}

func (rv *recipeValidator) Validate(ctx context.Context, payload RecipePayload, partial bool) (*ValidatedRecipe, error) {
	errs := apperr.NewValidationError()
	validated := &ValidatedRecipe{Text: payload.Text, Image: payload.Image}

	rv.validateName(payload, partial, validated, errs)
	rv.validateCookingTime(payload, partial, validated, errs)
	rv.validateIngredients(ctx, payload, partial, validated, errs)
	rv.validateTags(ctx, payload, partial, validated, errs)

	if errs.HasErrors() {
		return nil, errs
	}
	return validated, nil
}

func (rv *recipeValidator) validateName(payload RecipePayload, partial bool, out *ValidatedRecipe, errs *apperr.ValidationError) {
	if payload.Name == nil {
		if !partial {
			errs.Add("name", "name is required")
		}
		return
	}
	name := strings.TrimSpace(*payload.Name)
	if len([]rune(name)) < minNameLength {
		errs.Add("name", fmt.Sprintf("name must be at least %d characters", minNameLength))
		return
	}
	out.Name = &name
}

func (rv *recipeValidator) validateCookingTime(payload RecipePayload, partial bool, out *ValidatedRecipe, errs *apperr.ValidationError) {
	if payload.CookingTime == nil {
		if !partial {
			errs.Add("cooking_time", "cooking time is required")
		}
		return
	}
	if *payload.CookingTime < minCookingTime || *payload.CookingTime > maxCookingTime {
		errs.Add("cooking_time", fmt.Sprintf("cooking time must be between %d and %d minutes", minCookingTime, maxCookingTime))
		return
	}
	out.CookingTime = payload.CookingTime
}

func (rv *recipeValidator) validateIngredients(ctx context.Context, payload RecipePayload, partial bool, out *ValidatedRecipe, errs *apperr.ValidationError) {
	if payload.Ingredients == nil {
		if !partial {
			errs.Add("ingredients", "at least one ingredient is required")
		}
		return
	}
	if len(payload.Ingredients) == 0 {
		errs.Add("ingredients", "at least one ingredient is required")
		return
	}

	ids := make([]uuid.UUID, 0, len(payload.Ingredients))
	seen := make(map[uuid.UUID]struct{}, len(payload.Ingredients))
	clean := true
	duplicateReported := false
	for _, line := range payload.Ingredients {
		if _, dup := seen[line.ID]; dup {
			if !duplicateReported {
				errs.Add("ingredients", "ingredients must be unique")
				duplicateReported = true
				clean = false
			}
		} else {
			seen[line.ID] = struct{}{}
			ids = append(ids, line.ID)
		}
		if line.Amount < minAmount || line.Amount > maxAmount {
			errs.Add("amount", fmt.Sprintf("ingredient amount must be between %d and %d", minAmount, maxAmount))
			clean = false
		}
	}

	found, err := rv.ingredients.GetByIDs(ctx, nil, ids)
	if err != nil {
		rv.log.Error("ingredient catalog lookup failed", "error", err)
		errs.Add("ingredients", "could not resolve ingredients")
		return
	}
	byID := make(map[uuid.UUID]*types.Ingredient, len(found))
	for _, ingredient := range found {
		byID[ingredient.ID] = ingredient
	}
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			errs.Add("ingredients", fmt.Sprintf("unknown ingredient id %s", id))
			clean = false
		}
	}
	if !clean {
		return
	}

	lines := make([]ValidatedIngredient, 0, len(payload.Ingredients))
	for _, line := range payload.Ingredients {
		lines = append(lines, ValidatedIngredient{Ingredient: byID[line.ID], Amount: line.Amount})
	}
	out.Ingredients = lines
}

func (rv *recipeValidator) validateTags(ctx context.Context, payload RecipePayload, partial bool, out *ValidatedRecipe, errs *apperr.ValidationError) {
	if payload.TagIDs == nil {
		if !partial {
			errs.Add("tags", "at least one tag is required")
		}
		return
	}
	if len(payload.TagIDs) == 0 {
		errs.Add("tags", "at least one tag is required")
		return
	}

	seen := make(map[uuid.UUID]struct{}, len(payload.TagIDs))
	unique := make([]uuid.UUID, 0, len(payload.TagIDs))
	clean := true
	duplicateReported := false
	for _, id := range payload.TagIDs {
		if _, dup := seen[id]; dup {
			if !duplicateReported {
				errs.Add("tags", "tags must be unique")
				duplicateReported = true
				clean = false
			}
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	found, err := rv.tags.GetByIDs(ctx, nil, unique)
	if err != nil {
		rv.log.Error("tag catalog lookup failed", "error", err)
		errs.Add("tags", "could not resolve tags")
		return
	}
	byID := make(map[uuid.UUID]struct{}, len(found))
	for _, tag := range found {
		byID[tag.ID] = struct{}{}
	}
	for _, id := range unique {
		if _, ok := byID[id]; !ok {
			errs.Add("tags", fmt.Sprintf("unknown tag id %s", id))
			clean = false
		}
	}
	if !clean {
		return
	}
	out.TagIDs = unique
}
