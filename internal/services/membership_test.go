package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recipebox/recipebox-backend/internal/data/repos"
	types "github.com/recipebox/recipebox-backend/internal/domain"
	"github.com/recipebox/recipebox-backend/internal/pkg/apperr"
	"github.com/recipebox/recipebox-backend/internal/pkg/logger"
	"github.com/recipebox/recipebox-backend/internal/requestdata"
)

type pair struct {
	userID   uuid.UUID
	recipeID uuid.UUID
}

// fakeMembershipStore mimics the unique-index behavior of the real store:
// a second insert of the same pair fails with gorm.ErrDuplicatedKey and a
// delete of a missing pair reports zero rows.
type fakeMembershipStore struct {
	pairs map[pair]struct{}
}

func newFakeMembershipStore() *fakeMembershipStore {
	return &fakeMembershipStore{pairs: make(map[pair]struct{})}
}

func (f *fakeMembershipStore) Insert(_ context.Context, _ *gorm.DB, userID, recipeID uuid.UUID) error {
	p := pair{userID, recipeID}
	if _, ok := f.pairs[p]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.pairs[p] = struct{}{}
	return nil
}

func (f *fakeMembershipStore) Delete(_ context.Context, _ *gorm.DB, userID, recipeID uuid.UUID) (int64, error) {
	p := pair{userID, recipeID}
	if _, ok := f.pairs[p]; !ok {
		return 0, nil
	}
	delete(f.pairs, p)
	return 1, nil
}

func (f *fakeMembershipStore) Exists(_ context.Context, _ *gorm.DB, userID, recipeID uuid.UUID) (bool, error) {
	_, ok := f.pairs[pair{userID, recipeID}]
	return ok, nil
}

func (f *fakeMembershipStore) RecipeIDs(_ context.Context, _ *gorm.DB, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for p := range f.pairs {
		if p.userID == userID {
			ids = append(ids, p.recipeID)
		}
	}
	return ids, nil
}

type fakeRecipeRepo struct {
	recipes map[uuid.UUID]*types.Recipe
}

func (f *fakeRecipeRepo) Create(_ context.Context, _ *gorm.DB, recipe *types.Recipe) (*types.Recipe, error) {
	f.recipes[recipe.ID] = recipe
	return recipe, nil
}

func (f *fakeRecipeRepo) UpdateScalars(_ context.Context, _ *gorm.DB, _ *types.Recipe, _ map[string]interface{}) error {
	return nil
}

func (f *fakeRecipeRepo) GetByID(_ context.Context, _ *gorm.DB, id uuid.UUID) (*types.Recipe, error) {
	recipe, ok := f.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return recipe, nil
}

func (f *fakeRecipeRepo) GetByIDPreloaded(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Recipe, error) {
	return f.GetByID(ctx, tx, id)
}

func (f *fakeRecipeRepo) Delete(_ context.Context, _ *gorm.DB, id uuid.UUID) (int64, error) {
	if _, ok := f.recipes[id]; !ok {
		return 0, nil
	}
	delete(f.recipes, id)
	return 1, nil
}

func (f *fakeRecipeRepo) List(_ context.Context, _ *gorm.DB, _ repos.RecipeFilter) ([]*types.Recipe, int64, error) {
	return nil, 0, nil
}

type membershipFixture struct {
	service   MembershipService
	favorites *fakeMembershipStore
	cart      *fakeMembershipStore
	userID    uuid.UUID
	recipeID  uuid.UUID
}

func newMembershipFixture() *membershipFixture {
	userID := uuid.New()
	recipe := &types.Recipe{ID: uuid.New(), Name: "Pancakes", CookingTime: 20}
	recipeRepo := &fakeRecipeRepo{recipes: map[uuid.UUID]*types.Recipe{recipe.ID: recipe}}
	favorites := newFakeMembershipStore()
	cart := newFakeMembershipStore()
	return &membershipFixture{
		service:   NewMembershipService(nil, logger.Nop(), recipeRepo, favorites, cart),
		favorites: favorites,
		cart:      cart,
		userID:    userID,
		recipeID:  recipe.ID,
	}
}

func (f *membershipFixture) ctx() context.Context {
	return requestdata.WithRequestData(context.Background(), &requestdata.RequestData{UserID: f.userID})
}

func TestMembershipService_AddReturnsSummary(t *testing.T) {
	f := newMembershipFixture()

	summary, err := f.service.Add(f.ctx(), CollectionFavorites, f.recipeID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.ID != f.recipeID || summary.Name != "Pancakes" {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestMembershipService_SecondAddReportsDuplicate(t *testing.T) {
	f := newMembershipFixture()

	if _, err := f.service.Add(f.ctx(), CollectionFavorites, f.recipeID); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	_, err := f.service.Add(f.ctx(), CollectionFavorites, f.recipeID)
	if !errors.Is(err, apperr.ErrDuplicateMembership) {
		t.Fatalf("expected ErrDuplicateMembership, got %v", err)
	}
}

func TestMembershipService_AddUnknownRecipe(t *testing.T) {
	f := newMembershipFixture()

	_, err := f.service.Add(f.ctx(), CollectionCart, uuid.New())
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMembershipService_RemoveMissingReportsAlreadyRemoved(t *testing.T) {
	f := newMembershipFixture()

	err := f.service.Remove(f.ctx(), CollectionCart, f.recipeID)
	if !errors.Is(err, apperr.ErrMembershipNotFound) {
		t.Fatalf("expected ErrMembershipNotFound, got %v", err)
	}
}

func TestMembershipService_RemoveAfterAdd(t *testing.T) {
	f := newMembershipFixture()

	if _, err := f.service.Add(f.ctx(), CollectionCart, f.recipeID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := f.service.Remove(f.ctx(), CollectionCart, f.recipeID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	// A second remove of the same pair is a miss again.
	err := f.service.Remove(f.ctx(), CollectionCart, f.recipeID)
	if !errors.Is(err, apperr.ErrMembershipNotFound) {
		t.Fatalf("expected ErrMembershipNotFound, got %v", err)
	}
}

func TestMembershipService_CollectionsAreIndependent(t *testing.T) {
	f := newMembershipFixture()

	if _, err := f.service.Add(f.ctx(), CollectionFavorites, f.recipeID); err != nil {
		t.Fatalf("favorites add failed: %v", err)
	}
	if _, err := f.service.Add(f.ctx(), CollectionCart, f.recipeID); err != nil {
		t.Fatalf("cart add failed after favorites add: %v", err)
	}
	if err := f.service.Remove(f.ctx(), CollectionFavorites, f.recipeID); err != nil {
		t.Fatalf("favorites remove failed: %v", err)
	}
	ok, _ := f.cart.Exists(context.Background(), nil, f.userID, f.recipeID)
	if !ok {
		t.Fatal("cart entry should survive the favorites remove")
	}
}

func TestMembershipService_RequiresAuthenticatedUser(t *testing.T) {
	f := newMembershipFixture()

	_, err := f.service.Add(context.Background(), CollectionFavorites, f.recipeID)
	if !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	err = f.service.Remove(context.Background(), CollectionFavorites, f.recipeID)
	if !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
