package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/shopspring/decimal"
)

// Validation bounds for author fields.
const (
	MaxNameLength = 100
	MaxBioLength  = 2000
)

// Author is the persisted entity. ID is store-assigned and immutable.
// Books is hydrated from the relational join on reads; it is never
// written through the author side.
type Author struct {
	ID        int64  `json:"id" db:"id"`
	Firstname string `json:"firstname" db:"firstname"`
	Lastname  string `json:"lastname" db:"lastname"`
	Bio       string `json:"bio" db:"bio"`
	Books     []Book `json:"books,omitempty"`
}

// Book is the one-level projection of an owned book row. Declared here
// rather than imported from the book domain to keep the dependency
// between the two domains one-directional.
type Book struct {
	ID       int64            `json:"id" db:"id"`
	Title    string           `json:"title" db:"title"`
	Year     *int16           `json:"year,omitempty" db:"year"`
	ISBN     string           `json:"isbn" db:"isbn"`
	Summary  *string          `json:"summary,omitempty" db:"summary"`
	Cover    *string          `json:"cover,omitempty" db:"cover"`
	Price    *decimal.Decimal `json:"price,omitempty" db:"price"`
	AuthorID int64            `json:"author_id" db:"author_id"`
}

// CreateAuthorRequest - POST /api/v1/authors
type CreateAuthorRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Bio       string `json:"bio"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Firstname,
			validation.Required.Error("firstname is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Lastname,
			validation.Required.Error("lastname is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Bio,
			validation.Length(0, MaxBioLength),
		),
	)
}

// ToEntity maps the create payload to an entity. Identity is left unset;
// the store assigns it on insert.
func (r *CreateAuthorRequest) ToEntity() *Author {
	return &Author{
		Firstname: r.Firstname,
		Lastname:  r.Lastname,
		Bio:       r.Bio,
	}
}

// UpdateAuthorRequest - PUT /api/v1/authors/:id
// Any id present in the body is ignored; the path parameter is
// authoritative and applied by the service after mapping.
type UpdateAuthorRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Bio       string `json:"bio"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Firstname,
			validation.Required.Error("firstname is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Lastname,
			validation.Required.Error("lastname is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Bio,
			validation.Length(0, MaxBioLength),
		),
	)
}

func (r *UpdateAuthorRequest) ToEntity() *Author {
	return &Author{
		Firstname: r.Firstname,
		Lastname:  r.Lastname,
		Bio:       r.Bio,
	}
}

// AuthorResponse is the full wire projection, owned books one level deep.
type AuthorResponse struct {
	ID        int64  `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Bio       string `json:"bio"`
	Books     []Book `json:"books"`
}

// ToResponse converts the entity to its wire projection.
func (a *Author) ToResponse() *AuthorResponse {
	books := a.Books
	if books == nil {
		books = []Book{}
	}
	return &AuthorResponse{
		ID:        a.ID,
		Firstname: a.Firstname,
		Lastname:  a.Lastname,
		Bio:       a.Bio,
		Books:     books,
	}
}
