package service

import (
	"context"
	"fmt"

	"bookcatalog-api/internal/domains/author/model"
	"bookcatalog-api/internal/shared"
)

// ServiceInterface is the author business-logic contract consumed by the
// HTTP handler.
type ServiceInterface interface {
	GetAll(ctx context.Context) ([]model.Author, error)
	GetByID(ctx context.Context, id int64) (*model.Author, error)
	Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error)
	Update(ctx context.Context, id int64, req *model.UpdateAuthorRequest) error
	Delete(ctx context.Context, id int64) error
}

type authorService struct {
	repo shared.Repository[model.Author]
}

func NewAuthorService(repo shared.Repository[model.Author]) ServiceInterface {
	return &authorService{repo: repo}
}

func (s *authorService) GetAll(ctx context.Context) ([]model.Author, error) {
	return s.repo.FindAll(ctx)
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, model.ErrAuthorNotFound
	}
	return a, nil
}

func (s *authorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	entity := req.ToEntity()

	saved, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}
	if !saved {
		return nil, model.ErrPersistenceFailed
	}
	return entity, nil
}

func (s *authorService) Update(ctx context.Context, id int64, req *model.UpdateAuthorRequest) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check author %d: %w", id, err)
	}
	if !exists {
		return model.ErrAuthorNotFound
	}

	entity := req.ToEntity()
	// The path parameter is authoritative; a body-supplied id never
	// reaches the store.
	entity.ID = id

	saved, err := s.repo.Update(ctx, entity)
	if err != nil {
		return fmt.Errorf("update author %d: %w", id, err)
	}
	if !saved {
		return model.ErrPersistenceFailed
	}
	return nil
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check author %d: %w", id, err)
	}
	if !exists {
		return model.ErrAuthorNotFound
	}

	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load author %d: %w", id, err)
	}
	if entity == nil {
		return model.ErrAuthorNotFound
	}

	deleted, err := s.repo.Delete(ctx, entity)
	if err != nil {
		return fmt.Errorf("delete author %d: %w", id, err)
	}
	if !deleted {
		return model.ErrPersistenceFailed
	}
	return nil
}
