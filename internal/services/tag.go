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

// TagService exposes the read-only tag catalog.
type TagService interface {
	Get(ctx context.Context, id uuid.UUID) (*types.Tag, error)
	List(ctx context.Context) ([]*types.Tag, error)
}

type tagService struct {
	log     *logger.Logger
	tagRepo repos.TagRepo
}

func NewTagService(log *logger.Logger, tagRepo repos.TagRepo) TagService {
	return &tagService{
		log:     log.With("service", "TagService"),
		tagRepo: tagRepo,
	}
}

func (ts *tagService) Get(ctx context.Context, id uuid.UUID) (*types.Tag, error) {
	tag, err := ts.tagRepo.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return tag, nil
}

func (ts *tagService) List(ctx context.Context) ([]*types.Tag, error) {
	return ts.tagRepo.List(ctx, nil)
}
