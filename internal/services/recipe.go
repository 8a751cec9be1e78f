package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recipebox/recipebox-backend/internal/data/repos"
	types "github.com/recipebox/recipebox-backend/internal/domain"
	"github.com/recipebox/recipebox-backend/internal/pkg/apperr"
	"github.com/recipebox/recipebox-backend/internal/pkg/logger"
	"github.com/recipebox/recipebox-backend/internal/requestdata"
)

// ListRecipesFilter is the handler-facing filter for recipe listings.
type ListRecipesFilter struct {
	AuthorID      *uuid.UUID
	TagSlugs      []string
	OnlyFavorited bool
	OnlyInCart    bool
	Page          int
	Limit         int
}

// RecipeService owns the atomic create/update/delete pipeline for a recipe
// and its ingredient lines and tag associations, plus the read views.
// Validation runs before any transaction opens; a validation failure writes
// nothing. Ownership of a recipe is checked by the HTTP layer, not here.
type RecipeService interface {
	Create(ctx context.Context, payload RecipePayload) (*RecipeView, error)
	Update(ctx context.Context, recipeID uuid.UUID, payload RecipePayload) (*RecipeView, error)
	Delete(ctx context.Context, recipeID uuid.UUID) error
	Get(ctx context.Context, recipeID uuid.UUID) (*RecipeView, error)
	List(ctx context.Context, filter ListRecipesFilter) (*RecipePage, error)
}

type recipeService struct {
	db            *gorm.DB
	log           *logger.Logger
	validator     RecipeValidator
	images        ImageStore
	recipeRepo    repos.RecipeRepo
	lineRepo      repos.RecipeIngredientRepo
	recipeTagRepo repos.RecipeTagRepo
	tagRepo       repos.TagRepo
	favorites     repos.MembershipStore
	cart          repos.MembershipStore
	subscriptions repos.SubscriptionRepo
}

func NewRecipeService(
	db *gorm.DB,
	log *logger.Logger,
	validator RecipeValidator,
	images ImageStore,
	recipeRepo repos.RecipeRepo,
	lineRepo repos.RecipeIngredientRepo,
	recipeTagRepo repos.RecipeTagRepo,
	tagRepo repos.TagRepo,
	favorites repos.MembershipStore,
	cart repos.MembershipStore,
	subscriptions repos.SubscriptionRepo,
) RecipeService {
	return &recipeService{
		db:            db,
		log:           log.With("service", "RecipeService"),
		validator:     validator,
		images:        images,
		recipeRepo:    recipeRepo,
		lineRepo:      lineRepo,
		recipeTagRepo: recipeTagRepo,
		tagRepo:       tagRepo,
		favorites:     favorites,
		cart:          cart,
		subscriptions: subscriptions,
	}
}

func (rs *recipeService) Create(ctx context.Context, payload RecipePayload) (*RecipeView, error) {
	authorID := requestdata.UserID(ctx)
	if authorID == uuid.Nil {
		return nil, apperr.ErrUnauthorized
	}

	validated, err := rs.validator.Validate(ctx, payload, false)
	if err != nil {
		return nil, err
	}

	imagePath, err := rs.storeImage(validated.Image)
	if err != nil {
		return nil, err
	}

	recipe := &types.Recipe{
		AuthorID:    authorID,
		Name:        *validated.Name,
		CookingTime: *validated.CookingTime,
		Image:       imagePath,
		PubDate:     time.Now().UTC(),
	}
	if validated.Text != nil {
		recipe.Text = *validated.Text
	}

	if err := rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := rs.recipeRepo.Create(ctx, tx, recipe); err != nil {
			return fmt.Errorf("create recipe: %w", err)
		}
		if err := rs.lineRepo.Insert(ctx, tx, buildLines(recipe.ID, validated.Ingredients)); err != nil {
			return fmt.Errorf("create ingredient lines: %w", err)
		}
		if err := rs.recipeTagRepo.Insert(ctx, tx, recipe.ID, validated.TagIDs); err != nil {
			return fmt.Errorf("create tag associations: %w", err)
		}
		return nil
	}); err != nil {
		rs.log.Error("recipe create transaction failed", "error", err, "author_id", authorID)
		return nil, err
	}

	return rs.Get(ctx, recipe.ID)
}

func (rs *recipeService) Update(ctx context.Context, recipeID uuid.UUID, payload RecipePayload) (*RecipeView, error) {
	recipe, err := rs.recipeRepo.GetByID(ctx, nil, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	validated, err := rs.validator.Validate(ctx, payload, true)
	if err != nil {
		return nil, err
	}

	columns := map[string]interface{}{}
	if validated.Name != nil {
		columns["name"] = *validated.Name
	}
	if validated.Text != nil {
		columns["text"] = *validated.Text
	}
	if validated.CookingTime != nil {
		columns["cooking_time"] = *validated.CookingTime
	}
	if validated.Image != nil {
		imagePath, err := rs.storeImage(validated.Image)
		if err != nil {
			return nil, err
		}
		columns["image"] = imagePath
	}

	if err := rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := rs.recipeRepo.UpdateScalars(ctx, tx, recipe, columns); err != nil {
			return fmt.Errorf("update recipe: %w", err)
		}
		// Full replacement, never a per-line diff: amount changes ride the
		// same path as additions and removals.
		if validated.Ingredients != nil {
			if err := rs.lineRepo.DeleteForRecipe(ctx, tx, recipe.ID); err != nil {
				return fmt.Errorf("clear ingredient lines: %w", err)
			}
			if err := rs.lineRepo.Insert(ctx, tx, buildLines(recipe.ID, validated.Ingredients)); err != nil {
				return fmt.Errorf("replace ingredient lines: %w", err)
			}
		}
		if validated.TagIDs != nil {
			if err := rs.recipeTagRepo.DeleteForRecipe(ctx, tx, recipe.ID); err != nil {
				return fmt.Errorf("clear tag associations: %w", err)
			}
			if err := rs.recipeTagRepo.Insert(ctx, tx, recipe.ID, validated.TagIDs); err != nil {
				return fmt.Errorf("replace tag associations: %w", err)
			}
		}
		return nil
	}); err != nil {
		rs.log.Error("recipe update transaction failed", "error", err, "recipe_id", recipeID)
		return nil, err
	}

	return rs.Get(ctx, recipe.ID)
}

func (rs *recipeService) Delete(ctx context.Context, recipeID uuid.UUID) error {
	return rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lines and joins cascade with the recipe row; memberships cascade
		// with it as well.
		if err := rs.lineRepo.DeleteForRecipe(ctx, tx, recipeID); err != nil {
			return fmt.Errorf("delete ingredient lines: %w", err)
		}
		if err := rs.recipeTagRepo.DeleteForRecipe(ctx, tx, recipeID); err != nil {
			return fmt.Errorf("delete tag associations: %w", err)
		}
		rows, err := rs.recipeRepo.Delete(ctx, tx, recipeID)
		if err != nil {
			return fmt.Errorf("delete recipe: %w", err)
		}
		if rows == 0 {
			return apperr.ErrNotFound
		}
		return nil
	})
}

func (rs *recipeService) Get(ctx context.Context, recipeID uuid.UUID) (*RecipeView, error) {
	recipe, err := rs.recipeRepo.GetByIDPreloaded(ctx, nil, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	flags, err := rs.requesterFlags(ctx)
	if err != nil {
		return nil, err
	}
	view := rs.buildView(recipe, flags)
	return &view, nil
}

func (rs *recipeService) List(ctx context.Context, filter ListRecipesFilter) (*RecipePage, error) {
	userID := requestdata.UserID(ctx)
	repoFilter := repos.RecipeFilter{
		AuthorID: filter.AuthorID,
		TagSlugs: filter.TagSlugs,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}
	if filter.OnlyFavorited {
		if userID == uuid.Nil {
			return nil, apperr.ErrUnauthorized
		}
		repoFilter.FavoritedBy = &userID
	}
	if filter.OnlyInCart {
		if userID == uuid.Nil {
			return nil, apperr.ErrUnauthorized
		}
		repoFilter.InCartOf = &userID
	}

	recipes, total, err := rs.recipeRepo.List(ctx, nil, repoFilter)
	if err != nil {
		return nil, err
	}
	flags, err := rs.requesterFlags(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]RecipeView, 0, len(recipes))
	for _, recipe := range recipes {
		results = append(results, rs.buildView(recipe, flags))
	}
	return &RecipePage{
		Count:   total,
		Page:    filter.Page,
		Limit:   filter.Limit,
		Results: results,
	}, nil
}

// requesterFlags snapshots the requesting user's favorites, cart and
// subscriptions so a whole listing computes its booleans from three queries.
type viewFlags struct {
	favorited  map[uuid.UUID]struct{}
	inCart     map[uuid.UUID]struct{}
	subscribed map[uuid.UUID]struct{}
}

func (rs *recipeService) requesterFlags(ctx context.Context) (viewFlags, error) {
	flags := viewFlags{
		favorited:  map[uuid.UUID]struct{}{},
		inCart:     map[uuid.UUID]struct{}{},
		subscribed: map[uuid.UUID]struct{}{},
	}
	userID := requestdata.UserID(ctx)
	if userID == uuid.Nil {
		return flags, nil
	}

	favoriteIDs, err := rs.favorites.RecipeIDs(ctx, nil, userID)
	if err != nil {
		return flags, err
	}
	cartIDs, err := rs.cart.RecipeIDs(ctx, nil, userID)
	if err != nil {
		return flags, err
	}
	authorIDs, err := rs.subscriptions.AuthorIDs(ctx, nil, userID)
	if err != nil {
		return flags, err
	}
	for _, id := range favoriteIDs {
		flags.favorited[id] = struct{}{}
	}
	for _, id := range cartIDs {
		flags.inCart[id] = struct{}{}
	}
	for _, id := range authorIDs {
		flags.subscribed[id] = struct{}{}
	}
	return flags, nil
}

func (rs *recipeService) buildView(recipe *types.Recipe, flags viewFlags) RecipeView {
	view := RecipeView{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		Text:        recipe.Text,
		CookingTime: recipe.CookingTime,
		PubDate:     recipe.PubDate,
		Tags:        make([]*types.Tag, 0, len(recipe.Tags)),
		Ingredients: make([]IngredientLineView, 0, len(recipe.Ingredients)),
	}
	for i := range recipe.Tags {
		view.Tags = append(view.Tags, &recipe.Tags[i])
	}
	for _, line := range recipe.Ingredients {
		lineView := IngredientLineView{
			ID:     line.IngredientID,
			Amount: line.Amount,
		}
		if line.Ingredient != nil {
			lineView.Name = line.Ingredient.Name
			lineView.MeasurementUnit = line.Ingredient.MeasurementUnit
		}
		view.Ingredients = append(view.Ingredients, lineView)
	}
	if recipe.Author != nil {
		_, subscribed := flags.subscribed[recipe.Author.ID]
		view.Author = UserView{
			ID:           recipe.Author.ID,
			Email:        recipe.Author.Email,
			Username:     recipe.Author.Username,
			FirstName:    recipe.Author.FirstName,
			LastName:     recipe.Author.LastName,
			IsSubscribed: subscribed,
		}
	}
	_, view.IsFavorited = flags.favorited[recipe.ID]
	_, view.IsInShoppingCart = flags.inCart[recipe.ID]
	return view
}

func (rs *recipeService) storeImage(encoded *string) (string, error) {
	if encoded == nil || *encoded == "" {
		return "", nil
	}
	path, err := rs.images.Save(*encoded)
	if err != nil {
		verr := apperr.NewValidationError()
		verr.Add("image", "image must be valid base64-encoded data")
		return "", verr
	}
	return path, nil
}

func buildLines(recipeID uuid.UUID, validated []ValidatedIngredient) []*types.RecipeIngredient {
	lines := make([]*types.RecipeIngredient, 0, len(validated))
	for _, item := range validated {
		lines = append(lines, &types.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: item.Ingredient.ID,
			Amount:       item.Amount,
		})
	}
	return lines
}
