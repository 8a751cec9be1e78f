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
	"github.com/recipebox/recipebox-backend/internal/requestdata"
)

// SubscriptionService maintains the follower relation consumed by the recipe
// read view's is_subscribed flag. Same storage-first toggle discipline as the
// recipe collections: the unique pair index decides duplicates.
type SubscriptionService interface {
	Subscribe(ctx context.Context, authorID uuid.UUID) (*SubscriptionView, error)
	Unsubscribe(ctx context.Context, authorID uuid.UUID) error
	List(ctx context.Context) ([]SubscriptionView, error)
}

type subscriptionService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      repos.UserRepo
	recipeRepo    repos.RecipeRepo
	subscriptions repos.SubscriptionRepo
}

func NewSubscriptionService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, recipeRepo repos.RecipeRepo, subscriptions repos.SubscriptionRepo) SubscriptionService {
	return &subscriptionService{
		db:            db,
		log:           log.With("service", "SubscriptionService"),
		userRepo:      userRepo,
		recipeRepo:    recipeRepo,
		subscriptions: subscriptions,
	}
}

func (ss *subscriptionService) Subscribe(ctx context.Context, authorID uuid.UUID) (*SubscriptionView, error) {
	userID := requestdata.UserID(ctx)
	if userID == uuid.Nil {
		return nil, apperr.ErrUnauthorized
	}
	if userID == authorID {
		verr := apperr.NewValidationError()
		verr.Add("author", "cannot subscribe to yourself")
		return nil, verr
	}

	author, err := ss.userRepo.GetByID(ctx, nil, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	if err := ss.subscriptions.Insert(ctx, nil, userID, authorID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.ErrDuplicateMembership
		}
		return nil, err
	}

	return ss.buildView(ctx, author)
}

func (ss *subscriptionService) Unsubscribe(ctx context.Context, authorID uuid.UUID) error {
	userID := requestdata.UserID(ctx)
	if userID == uuid.Nil {
		return apperr.ErrUnauthorized
	}
	rows, err := ss.subscriptions.Delete(ctx, nil, userID, authorID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.ErrMembershipNotFound
	}
	return nil
}

func (ss *subscriptionService) List(ctx context.Context) ([]SubscriptionView, error) {
	userID := requestdata.UserID(ctx)
	if userID == uuid.Nil {
		return nil, apperr.ErrUnauthorized
	}
	authors, err := ss.subscriptions.ListAuthors(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	views := make([]SubscriptionView, 0, len(authors))
	for _, author := range authors {
		view, err := ss.buildView(ctx, author)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (ss *subscriptionService) buildView(ctx context.Context, author *types.User) (*SubscriptionView, error) {
	recipes, total, err := ss.recipeRepo.List(ctx, nil, repos.RecipeFilter{AuthorID: &author.ID})
	if err != nil {
		return nil, err
	}
	summaries := make([]RecipeSummary, 0, len(recipes))
	for _, recipe := range recipes {
		summaries = append(summaries, summaryOf(recipe))
	}
	return &SubscriptionView{
		UserView: UserView{
			ID:           author.ID,
			Email:        author.Email,
			Username:     author.Username,
			FirstName:    author.FirstName,
			LastName:     author.LastName,
			IsSubscribed: true,
		},
		RecipesCount: int(total),
		Recipes:      summaries,
	}, nil
}
