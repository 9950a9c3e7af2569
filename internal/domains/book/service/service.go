package service

import (
	"context"
	"fmt"

	"bookcatalog-api/internal/domains/book/model"
	"bookcatalog-api/internal/shared"
)

// ServiceInterface is the book business-logic contract consumed by the
// HTTP handler.
type ServiceInterface interface {
	GetAll(ctx context.Context) ([]model.Book, error)
	GetByID(ctx context.Context, id int64) (*model.Book, error)
	Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error)
	Update(ctx context.Context, id int64, req *model.UpdateBookRequest) error
	Delete(ctx context.Context, id int64) error
}

type bookService struct {
	repo shared.Repository[model.Book]
}

func NewBookService(repo shared.Repository[model.Book]) ServiceInterface {
	return &bookService{repo: repo}
}

func (s *bookService) GetAll(ctx context.Context) ([]model.Book, error) {
	return s.repo.FindAll(ctx)
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, model.ErrBookNotFound
	}
	return b, nil
}

// Create inserts the mapped entity. A dangling author_id is not
// pre-checked here; the foreign key rejects it and the failure surfaces
// as a persistence error.
func (s *bookService) Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error) {
	entity := req.ToEntity()

	saved, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	if !saved {
		return nil, model.ErrPersistenceFailed
	}
	return entity, nil
}

func (s *bookService) Update(ctx context.Context, id int64, req *model.UpdateBookRequest) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check book %d: %w", id, err)
	}
	if !exists {
		return model.ErrBookNotFound
	}

	entity := req.ToEntity()
	// The path parameter is authoritative; a body-supplied id never
	// reaches the store.
	entity.ID = id

	saved, err := s.repo.Update(ctx, entity)
	if err != nil {
		return fmt.Errorf("update book %d: %w", id, err)
	}
	if !saved {
		return model.ErrPersistenceFailed
	}
	return nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check book %d: %w", id, err)
	}
	if !exists {
		return model.ErrBookNotFound
	}

	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load book %d: %w", id, err)
	}
	if entity == nil {
		return model.ErrBookNotFound
	}

	deleted, err := s.repo.Delete(ctx, entity)
	if err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	if !deleted {
		return model.ErrPersistenceFailed
	}
	return nil
}
