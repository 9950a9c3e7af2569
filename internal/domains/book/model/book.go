package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/shopspring/decimal"
)

// Validation bounds for book fields.
const (
	MaxTitleLength   = 255
	MaxISBNLength    = 30
	MaxSummaryLength = 500
	MinYear          = 1000
	MaxYear          = 9999
)

// Book is the persisted entity. ID is store-assigned. AuthorID must
// reference an existing author; the foreign key rejects dangling rows.
// Author is hydrated one level deep on reads, never persisted through
// the book side.
type Book struct {
	ID       int64            `json:"id" db:"id"`
	Title    string           `json:"title" db:"title"`
	Year     *int16           `json:"year,omitempty" db:"year"`
	ISBN     string           `json:"isbn" db:"isbn"`
	Summary  *string          `json:"summary,omitempty" db:"summary"`
	Cover    *string          `json:"cover,omitempty" db:"cover"`
	Price    *decimal.Decimal `json:"price,omitempty" db:"price"`
	AuthorID int64            `json:"author_id" db:"author_id"`
	Author   *OwningAuthor    `json:"author,omitempty"`
}

// OwningAuthor is the one-level projection of the owning author row,
// without its own book collection. Declared here to keep the dependency
// between the two domains one-directional.
type OwningAuthor struct {
	ID        int64  `json:"id" db:"id"`
	Firstname string `json:"firstname" db:"firstname"`
	Lastname  string `json:"lastname" db:"lastname"`
	Bio       string `json:"bio" db:"bio"`
}

// CreateBookRequest - POST /api/v1/books
type CreateBookRequest struct {
	Title    string           `json:"title"`
	Year     *int16           `json:"year"`
	ISBN     string           `json:"isbn"`
	Summary  *string          `json:"summary"`
	Cover    *string          `json:"cover"`
	Price    *decimal.Decimal `json:"price"`
	AuthorID int64            `json:"author_id"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.ISBN,
			validation.Required.Error("isbn is required"),
			validation.Length(1, MaxISBNLength),
		),
		validation.Field(&r.Year,
			validation.Min(int16(MinYear)),
			validation.Max(int16(MaxYear)),
		),
		validation.Field(&r.Summary,
			validation.Length(0, MaxSummaryLength),
		),
		validation.Field(&r.Price, validation.By(priceNotNegative)),
		validation.Field(&r.AuthorID,
			validation.Required.Error("author_id is required"),
			validation.Min(int64(1)),
		),
	)
}

// ToEntity maps the create payload to an entity. Identity is left unset;
// the store assigns it on insert.
func (r *CreateBookRequest) ToEntity() *Book {
	return &Book{
		Title:    r.Title,
		Year:     r.Year,
		ISBN:     r.ISBN,
		Summary:  r.Summary,
		Cover:    r.Cover,
		Price:    r.Price,
		AuthorID: r.AuthorID,
	}
}

// UpdateBookRequest - PUT /api/v1/books/:id
// Any id present in the body is ignored; the path parameter is
// authoritative and applied by the service after mapping.
type UpdateBookRequest struct {
	Title    string           `json:"title"`
	Year     *int16           `json:"year"`
	ISBN     string           `json:"isbn"`
	Summary  *string          `json:"summary"`
	Cover    *string          `json:"cover"`
	Price    *decimal.Decimal `json:"price"`
	AuthorID int64            `json:"author_id"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.ISBN,
			validation.Required.Error("isbn is required"),
			validation.Length(1, MaxISBNLength),
		),
		validation.Field(&r.Year,
			validation.Min(int16(MinYear)),
			validation.Max(int16(MaxYear)),
		),
		validation.Field(&r.Summary,
			validation.Length(0, MaxSummaryLength),
		),
		validation.Field(&r.Price, validation.By(priceNotNegative)),
		validation.Field(&r.AuthorID,
			validation.Required.Error("author_id is required"),
			validation.Min(int64(1)),
		),
	)
}

func (r *UpdateBookRequest) ToEntity() *Book {
	return &Book{
		Title:    r.Title,
		Year:     r.Year,
		ISBN:     r.ISBN,
		Summary:  r.Summary,
		Cover:    r.Cover,
		Price:    r.Price,
		AuthorID: r.AuthorID,
	}
}

// BookResponse is the full wire projection, owning author one level deep.
type BookResponse struct {
	ID       int64            `json:"id"`
	Title    string           `json:"title"`
	Year     *int16           `json:"year,omitempty"`
	ISBN     string           `json:"isbn"`
	Summary  *string          `json:"summary,omitempty"`
	Cover    *string          `json:"cover,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	AuthorID int64            `json:"author_id"`
	Author   *OwningAuthor    `json:"author,omitempty"`
}

// ToResponse converts the entity to its wire projection.
func (b *Book) ToResponse() *BookResponse {
	return &BookResponse{
		ID:       b.ID,
		Title:    b.Title,
		Year:     b.Year,
		ISBN:     b.ISBN,
		Summary:  b.Summary,
		Cover:    b.Cover,
		Price:    b.Price,
		AuthorID: b.AuthorID,
		Author:   b.Author,
	}
}

func priceNotNegative(value interface{}) error {
	price, ok := value.(*decimal.Decimal)
	if !ok || price == nil {
		return nil
	}
	if price.IsNegative() {
		return validation.NewError("validation_price_negative", "price must not be negative")
	}
	return nil
}
