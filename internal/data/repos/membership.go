package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/recipebox/recipebox-backend/internal/domain"
	"github.com/recipebox/recipebox-backend/internal/pkg/logger"
)

// MembershipStore is the storage surface of one per-user recipe collection.
// Insert surfaces gorm.ErrDuplicatedKey untouched so callers can treat the
// unique (user, recipe) index as the single duplicate guard, and Delete
// reports rows affected so a miss is detected without a preceding read.
type MembershipStore interface {
	Insert(ctx context.Context, tx *gorm.DB, userID, recipeID uuid.UUID) error
	Delete(ctx context.Context, tx *gorm.DB, userID, recipeID uuid.UUID) (int64, error)
	Exists(ctx context.Context, tx *gorm.DB, userID, recipeID uuid.UUID) (bool, error)
	RecipeIDs(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]uuid.UUID, error)
}

// Membership enumerates the join models the store can be instantiated with.
type Membership interface {
	types.FavoriteRecipe | types.ShoppingCart
}

// membershipPtr lets the generic repo fill the identifying pair on a freshly
// constructed value of the type parameter.
type membershipPtr[T any] interface {
	*T
	SetPair(userID, recipeID uuid.UUID)
}

type membershipRepo[T Membership, PT membershipPtr[T]] struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewMembershipRepo builds a store over one collection table, e.g.
//
//	NewMembershipRepo[types.FavoriteRecipe, *types.FavoriteRecipe](db, log)
func NewMembershipRepo[T Membership, PT membershipPtr[T]](db *gorm.DB, baseLog *logger.Logger) MembershipStore {
	var model T
	tabler, _ := any(model).(interface{ TableName() string })
	repoLog := baseLog.With("repo", "MembershipRepo", "table", tabler.TableName())
	return &membershipRepo[T, PT]{db: db, log: repoLog}
}

func (mr *membershipRepo[T, PT]) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return mr.db
}

func (mr *membershipRepo[T, PT]) Insert(ctx context.Context, tx *gorm.DB, userID, recipeID uuid.UUID) error {
	var entry T
	PT(&entry).SetPair(userID, recipeID)
	return mr.handle(tx).WithContext(ctx).Create(&entry).Error
}

func (mr *membershipRepo[T, PT]) Delete(ctx context.Context, tx *gorm.DB, userID, recipeID uuid.UUID) (int64, error) {
	var entry T
	result := mr.handle(tx).WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entry)
	return result.RowsAffected, result.Error
}

func (mr *membershipRepo[T, PT]) Exists(ctx context.Context, tx *gorm.DB, userID, recipeID uuid.UUID) (bool, error) {
	var count int64
	if err := mr.handle(tx).WithContext(ctx).
		Model(new(T)).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (mr *membershipRepo[T, PT]) RecipeIDs(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := mr.handle(tx).WithContext(ctx).
		Model(new(T)).
		Where("user_id = ?", userID).
		Pluck("recipe_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
