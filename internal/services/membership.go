package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recipebox/recipebox-backend/internal/data/repos"
	"github.com/recipebox/recipebox-backend/internal/pkg/apperr"
	"github.com/recipebox/recipebox-backend/internal/pkg/logger"
	"github.com/recipebox/recipebox-backend/internal/requestdata"
)

// Collection names one per-user recipe collection.
type Collection string

const (
	CollectionFavorites Collection = "favorites"
	CollectionCart      Collection = "shopping_cart"
)

// MembershipService toggles (user, recipe) pairs in and out of the favorites
// and shopping-cart collections. There is no read-before-write: the unique
// index is the sole duplicate guard on add, and rows-affected the sole
// presence signal on remove, so two racing adds can both reach the insert and
// exactly one wins.
type MembershipService interface {
	Add(ctx context.Context, collection Collection, recipeID uuid.UUID) (*RecipeSummary, error)
	Remove(ctx context.Context, collection Collection, recipeID uuid.UUID) error
}

type membershipService struct {
	db         *gorm.DB
	log        *logger.Logger
	recipeRepo repos.RecipeRepo
	stores     map[Collection]repos.MembershipStore
}

func NewMembershipService(db *gorm.DB, log *logger.Logger, recipeRepo repos.RecipeRepo, favorites, cart repos.MembershipStore) MembershipService {
	return &membershipService{
		db:         db,
		log:        log.With("service", "MembershipService"),
		recipeRepo: recipeRepo,
		stores: map[Collection]repos.MembershipStore{
			CollectionFavorites: favorites,
			CollectionCart:      cart,
		},
	}
}

func (ms *membershipService) store(collection Collection) (repos.MembershipStore, error) {
	store, ok := ms.stores[collection]
	if !ok {
		return nil, errors.New("unknown collection: " + string(collection))
	}
	return store, nil
}

func (ms *membershipService) Add(ctx context.Context, collection Collection, recipeID uuid.UUID) (*RecipeSummary, error) {
	userID := requestdata.UserID(ctx)
	if userID == uuid.Nil {
		return nil, apperr.ErrUnauthorized
	}
	store, err := ms.store(collection)
	if err != nil {
		return nil, err
	}

	recipe, err := ms.recipeRepo.GetByID(ctx, nil, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	if err := store.Insert(ctx, nil, userID, recipeID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.ErrDuplicateMembership
		}
		ms.log.Error("membership insert failed", "error", err, "collection", collection, "recipe_id", recipeID)
		return nil, err
	}

	summary := summaryOf(recipe)
	return &summary, nil
}

func (ms *membershipService) Remove(ctx context.Context, collection Collection, recipeID uuid.UUID) error {
	userID := requestdata.UserID(ctx)
	if userID == uuid.Nil {
		return apperr.ErrUnauthorized
	}
	store, err := ms.store(collection)
	if err != nil {
		return err
	}

	rows, err := store.Delete(ctx, nil, userID, recipeID)
	if err != nil {
		ms.log.Error("membership delete failed", "error", err, "collection", collection, "recipe_id", recipeID)
		return err
	}
	if rows == 0 {
		return apperr.ErrMembershipNotFound
	}
	return nil
}
