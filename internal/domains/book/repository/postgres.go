package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookcatalog-api/internal/domains/book/model"
	"bookcatalog-api/internal/shared"
	"bookcatalog-api/pkg/cache"
	"bookcatalog-api/pkg/logger"
)

const (
	cacheKeyAll = "books:all"
	cacheTTL    = 5 * time.Minute
)

func cacheKeyID(id int64) string {
	return fmt.Sprintf("books:id:%d", id)
}

// postgresRepository implements shared.Repository[model.Book] over
// pgxpool with a redis cache-aside on reads. Reads join the owning
// author one level deep. Mutations also drop the author cache entries,
// since author responses embed their books.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) shared.Repository[model.Book] {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const selectBooks = `
	SELECT b.id, b.title, b.year, b.isbn, b.summary, b.cover, b.price, b.author_id,
	       a.id, a.firstname, a.lastname, a.bio
	FROM books b
	JOIN authors a ON a.id = b.author_id`

func (r *postgresRepository) FindAll(ctx context.Context) ([]model.Book, error) {
	var cached []model.Book
	if found, err := r.cache.Get(ctx, cacheKeyAll, &cached); err != nil {
		logger.Warn("book cache read failed", map[string]interface{}{"error": err.Error()})
	} else if found {
		return cached, nil
	}

	rows, err := r.pool.Query(ctx, selectBooks+` ORDER BY b.id`)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	books := []model.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("books rows: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKeyAll, books, cacheTTL); err != nil {
		logger.Warn("book cache write failed", map[string]interface{}{"error": err.Error()})
	}

	return books, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.Book, error) {
	var cached model.Book
	if found, err := r.cache.Get(ctx, cacheKeyID(id), &cached); err != nil {
		logger.Warn("book cache read failed", map[string]interface{}{"error": err.Error()})
	} else if found {
		return &cached, nil
	}

	rows, err := r.pool.Query(ctx, selectBooks+` WHERE b.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("query book %d: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("query book %d: %w", id, err)
		}
		// Absent is a valid result, not an error.
		return nil, nil
	}

	b, err := scanBook(rows)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, cacheKeyID(id), b, cacheTTL); err != nil {
		logger.Warn("book cache write failed", map[string]interface{}{"error": err.Error()})
	}

	return b, nil
}

func (r *postgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`, id).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("book exists %d: %w", id, err)
	}
	return exists, nil
}

func (r *postgresRepository) Create(ctx context.Context, entity *model.Book) (bool, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO books (title, year, isbn, summary, cover, price, author_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		entity.Title, entity.Year, entity.ISBN, entity.Summary,
		entity.Cover, entity.Price, entity.AuthorID).
		Scan(&entity.ID)
	if err != nil {
		return false, fmt.Errorf("insert book: %w", err)
	}

	r.invalidate(ctx, entity.ID)
	return entity.ID > 0, nil
}

func (r *postgresRepository) Update(ctx context.Context, entity *model.Book) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE books
		SET title = $1, year = $2, isbn = $3, summary = $4,
		    cover = $5, price = $6, author_id = $7
		WHERE id = $8`,
		entity.Title, entity.Year, entity.ISBN, entity.Summary,
		entity.Cover, entity.Price, entity.AuthorID, entity.ID)
	if err != nil {
		return false, fmt.Errorf("update book %d: %w", entity.ID, err)
	}

	r.invalidate(ctx, entity.ID)
	return tag.RowsAffected() > 0, nil
}

func (r *postgresRepository) Delete(ctx context.Context, entity *model.Book) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM books WHERE id = $1`, entity.ID)
	if err != nil {
		return false, fmt.Errorf("delete book %d: %w", entity.ID, err)
	}

	r.invalidate(ctx, entity.ID)
	return tag.RowsAffected() > 0, nil
}

func scanBook(rows pgx.Rows) (*model.Book, error) {
	var b model.Book
	var a model.OwningAuthor
	if err := rows.Scan(
		&b.ID, &b.Title, &b.Year, &b.ISBN, &b.Summary, &b.Cover, &b.Price, &b.AuthorID,
		&a.ID, &a.Firstname, &a.Lastname, &a.Bio); err != nil {
		return nil, fmt.Errorf("scan book: %w", err)
	}
	b.Author = &a
	return &b, nil
}

// invalidate drops the cached book entries plus every cached author
// projection, which embeds the owned books. Cache failures are logged,
// never surfaced.
func (r *postgresRepository) invalidate(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, cacheKeyAll, cacheKeyID(id)); err != nil {
		logger.Warn("book cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}
	if err := r.cache.DeletePattern(ctx, "authors:*"); err != nil {
		logger.Warn("author cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}
}
