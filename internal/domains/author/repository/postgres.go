package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookcatalog-api/internal/domains/author/model"
	"bookcatalog-api/internal/shared"
	"bookcatalog-api/pkg/cache"
	"bookcatalog-api/pkg/logger"
)

const (
	cacheKeyAll = "authors:all"
	cacheTTL    = 5 * time.Minute
)

func cacheKeyID(id int64) string {
	return fmt.Sprintf("authors:id:%d", id)
}

// postgresRepository implements shared.Repository[model.Author] over
// pgxpool with a redis cache-aside on reads. Every mutation commits
// immediately; success is the affected-row count. Mutations also drop
// the book cache entries, since book responses embed the owning author.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) shared.Repository[model.Author] {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]model.Author, error) {
	var cached []model.Author
	if found, err := r.cache.Get(ctx, cacheKeyAll, &cached); err != nil {
		logger.Warn("author cache read failed", map[string]interface{}{"error": err.Error()})
	} else if found {
		return cached, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, firstname, lastname, bio
		FROM authors
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query authors: %w", err)
	}
	defer rows.Close()

	authors := []model.Author{}
	index := map[int64]int{}
	for rows.Next() {
		var a model.Author
		if err := rows.Scan(&a.ID, &a.Firstname, &a.Lastname, &a.Bio); err != nil {
			return nil, fmt.Errorf("scan author: %w", err)
		}
		index[a.ID] = len(authors)
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("authors rows: %w", err)
	}

	books, err := r.booksByAuthor(ctx, 0)
	if err != nil {
		return nil, err
	}
	for _, b := range books {
		if i, ok := index[b.AuthorID]; ok {
			authors[i].Books = append(authors[i].Books, b)
		}
	}

	if err := r.cache.Set(ctx, cacheKeyAll, authors, cacheTTL); err != nil {
		logger.Warn("author cache write failed", map[string]interface{}{"error": err.Error()})
	}

	return authors, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.Author, error) {
	var cached model.Author
	if found, err := r.cache.Get(ctx, cacheKeyID(id), &cached); err != nil {
		logger.Warn("author cache read failed", map[string]interface{}{"error": err.Error()})
	} else if found {
		return &cached, nil
	}

	var a model.Author
	err := r.pool.QueryRow(ctx, `
		SELECT id, firstname, lastname, bio
		FROM authors
		WHERE id = $1`, id).
		Scan(&a.ID, &a.Firstname, &a.Lastname, &a.Bio)
	if errors.Is(err, pgx.ErrNoRows) {
		// Absent is a valid result, not an error.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query author %d: %w", id, err)
	}

	a.Books, err = r.booksByAuthor(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, cacheKeyID(id), a, cacheTTL); err != nil {
		logger.Warn("author cache write failed", map[string]interface{}{"error": err.Error()})
	}

	return &a, nil
}

func (r *postgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM authors WHERE id = $1)`, id).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("author exists %d: %w", id, err)
	}
	return exists, nil
}

func (r *postgresRepository) Create(ctx context.Context, entity *model.Author) (bool, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO authors (firstname, lastname, bio)
		VALUES ($1, $2, $3)
		RETURNING id`,
		entity.Firstname, entity.Lastname, entity.Bio).
		Scan(&entity.ID)
	if err != nil {
		return false, fmt.Errorf("insert author: %w", err)
	}

	r.invalidate(ctx, entity.ID)
	return entity.ID > 0, nil
}

func (r *postgresRepository) Update(ctx context.Context, entity *model.Author) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE authors
		SET firstname = $1, lastname = $2, bio = $3
		WHERE id = $4`,
		entity.Firstname, entity.Lastname, entity.Bio, entity.ID)
	if err != nil {
		return false, fmt.Errorf("update author %d: %w", entity.ID, err)
	}

	r.invalidate(ctx, entity.ID)
	return tag.RowsAffected() > 0, nil
}

func (r *postgresRepository) Delete(ctx context.Context, entity *model.Author) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM authors WHERE id = $1`, entity.ID)
	if err != nil {
		return false, fmt.Errorf("delete author %d: %w", entity.ID, err)
	}

	r.invalidate(ctx, entity.ID)
	return tag.RowsAffected() > 0, nil
}

// booksByAuthor loads the one-level book projection. authorID 0 loads
// every book, grouped by the caller.
func (r *postgresRepository) booksByAuthor(ctx context.Context, authorID int64) ([]model.Book, error) {
	query := `
		SELECT id, title, year, isbn, summary, cover, price, author_id
		FROM books`
	args := []interface{}{}
	if authorID != 0 {
		query += ` WHERE author_id = $1`
		args = append(args, authorID)
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query books for author: %w", err)
	}
	defer rows.Close()

	books := []model.Book{}
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Year, &b.ISBN, &b.Summary, &b.Cover, &b.Price, &b.AuthorID); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

// invalidate drops the cached author entries plus every cached book
// projection, which embeds the owning author. Cache failures are logged,
// never surfaced.
func (r *postgresRepository) invalidate(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, cacheKeyAll, cacheKeyID(id)); err != nil {
		logger.Warn("author cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}
	if err := r.cache.DeletePattern(ctx, "books:*"); err != nil {
		logger.Warn("book cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}
}
