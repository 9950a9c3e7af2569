package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAuthorRequestValidate(t *testing.T) {
	t.Parallel()

	longName := make([]byte, MaxNameLength+1)
	for i := range longName {
		longName[i] = 'a'
	}

	tests := []struct {
		name    string
		req     CreateAuthorRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  CreateAuthorRequest{Firstname: "Jane", Lastname: "Doe", Bio: ""},
		},
		{
			name:    "missing firstname",
			req:     CreateAuthorRequest{Lastname: "Doe"},
			wantErr: true,
		},
		{
			name:    "missing lastname",
			req:     CreateAuthorRequest{Firstname: "Jane"},
			wantErr: true,
		},
		{
			name:    "firstname too long",
			req:     CreateAuthorRequest{Firstname: string(longName), Lastname: "Doe"},
			wantErr: true,
		},
		{
			name: "bio at limit",
			req: CreateAuthorRequest{
				Firstname: "Jane",
				Lastname:  "Doe",
				Bio:       string(make([]byte, MaxBioLength)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateAuthorRequestToEntity(t *testing.T) {
	t.Parallel()

	req := CreateAuthorRequest{Firstname: "Jane", Lastname: "Doe", Bio: "writes books"}
	entity := req.ToEntity()

	assert.Zero(t, entity.ID, "identity is store-assigned, mapping must leave it unset")
	assert.Equal(t, "Jane", entity.Firstname)
	assert.Equal(t, "Doe", entity.Lastname)
	assert.Equal(t, "writes books", entity.Bio)
}

func TestAuthorToResponseRoundTrip(t *testing.T) {
	t.Parallel()

	a := Author{
		ID:        7,
		Firstname: "Jane",
		Lastname:  "Doe",
		Bio:       "writes books",
		Books: []Book{
			{ID: 1, Title: "First", ISBN: "978-1", AuthorID: 7},
		},
	}

	resp := a.ToResponse()
	require.NotNil(t, resp)

	assert.Equal(t, a.ID, resp.ID)
	assert.Equal(t, a.Firstname, resp.Firstname)
	assert.Equal(t, a.Lastname, resp.Lastname)
	assert.Equal(t, a.Bio, resp.Bio)
	require.Len(t, resp.Books, 1)
	assert.Equal(t, a.Books[0], resp.Books[0])
}

func TestAuthorToResponseEmptyBooks(t *testing.T) {
	t.Parallel()

	resp := (&Author{ID: 1, Firstname: "Jane", Lastname: "Doe"}).ToResponse()

	// nil slice would serialize as JSON null instead of [].
	assert.NotNil(t, resp.Books)
	assert.Empty(t, resp.Books)
}
