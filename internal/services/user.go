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

type UserService interface {
	GetMe(ctx context.Context) (*types.User, error)
	Get(ctx context.Context, userID uuid.UUID) (*UserView, error)
}

type userService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      repos.UserRepo
	subscriptions repos.SubscriptionRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, subscriptions repos.SubscriptionRepo) UserService {
	return &userService{
		db:            db,
		log:           log.With("service", "UserService"),
		userRepo:      userRepo,
		subscriptions: subscriptions,
	}
}

func (us *userService) GetMe(ctx context.Context) (*types.User, error) {
	userID := requestdata.UserID(ctx)
	if userID == uuid.Nil {
		return nil, apperr.ErrUnauthorized
	}
	user, err := us.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (us *userService) Get(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	user, err := us.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	view := &UserView{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
	if requesterID := requestdata.UserID(ctx); requesterID != uuid.Nil {
		subscribed, err := us.subscriptions.Exists(ctx, nil, requesterID, user.ID)
		if err != nil {
			return nil, err
		}
		view.IsSubscribed = subscribed
	}
	return view, nil
}
