package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/recipebox/recipebox-backend/internal/domain"
	"github.com/recipebox/recipebox-backend/internal/pkg/logger"
)

type SubscriptionRepo interface {
	Insert(ctx context.Context, tx *gorm.DB, userID, authorID uuid.UUID) error
	Delete(ctx context.Context, tx *gorm.DB, userID, authorID uuid.UUID) (int64, error)
	Exists(ctx context.Context, tx *gorm.DB, userID, authorID uuid.UUID) (bool, error)
	AuthorIDs(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]uuid.UUID, error)
	ListAuthors(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.User, error)
}

type subscriptionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSubscriptionRepo(db *gorm.DB, baseLog *logger.Logger) SubscriptionRepo {
	return &subscriptionRepo{db: db, log: baseLog.With("repo", "SubscriptionRepo")}
}

func (sr *subscriptionRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return sr.db
}

func (sr *subscriptionRepo) Insert(ctx context.Context, tx *gorm.DB, userID, authorID uuid.UUID) error {
	sub := &types.Subscription{UserID: userID, AuthorID: authorID}
	return sr.handle(tx).WithContext(ctx).Create(sub).Error
}

func (sr *subscriptionRepo) Delete(ctx context.Context, tx *gorm.DB, userID, authorID uuid.UUID) (int64, error) {
	result := sr.handle(tx).WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&types.Subscription{})
	return result.RowsAffected, result.Error
}

func (sr *subscriptionRepo) Exists(ctx context.Context, tx *gorm.DB, userID, authorID uuid.UUID) (bool, error) {
	var count int64
	if err := sr.handle(tx).WithContext(ctx).
		Model(&types.Subscription{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (sr *subscriptionRepo) AuthorIDs(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := sr.handle(tx).WithContext(ctx).
		Model(&types.Subscription{}).
		Where("user_id = ?", userID).
		Pluck("author_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (sr *subscriptionRepo) ListAuthors(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.User, error) {
	var authors []*types.User
	if err := sr.handle(tx).WithContext(ctx).
		Model(&types.User{}).
		Joins("JOIN subscription ON subscription.author_id = app_user.id").
		Where("subscription.user_id = ?", userID).
		Order("app_user.username ASC").
		Find(&authors).Error; err != nil {
		return nil, err
	}
	return authors, nil
}
