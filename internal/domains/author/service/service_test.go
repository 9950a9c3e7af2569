package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog-api/internal/domains/author/model"
)

// fakeRepo implements shared.Repository[model.Author] in memory and
// records which calls were made.
type fakeRepo struct {
	authors map[int64]model.Author
	nextID  int64

	updateCalled bool
	deleteCalled bool

	failWrites bool
	err        error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{authors: map[int64]model.Author{}, nextID: 1}
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]model.Author, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []model.Author{}
	for _, a := range f.authors {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id int64) (*model.Author, error) {
	if f.err != nil {
		return nil, f.err
	}
	a, ok := f.authors[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (f *fakeRepo) Exists(ctx context.Context, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.authors[id]
	return ok, nil
}

func (f *fakeRepo) Create(ctx context.Context, entity *model.Author) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.failWrites {
		return false, nil
	}
	entity.ID = f.nextID
	f.nextID++
	f.authors[entity.ID] = *entity
	return true, nil
}

func (f *fakeRepo) Update(ctx context.Context, entity *model.Author) (bool, error) {
	f.updateCalled = true
	if f.err != nil {
		return false, f.err
	}
	if f.failWrites {
		return false, nil
	}
	if _, ok := f.authors[entity.ID]; !ok {
		return false, nil
	}
	f.authors[entity.ID] = *entity
	return true, nil
}

func (f *fakeRepo) Delete(ctx context.Context, entity *model.Author) (bool, error) {
	f.deleteCalled = true
	if f.err != nil {
		return false, f.err
	}
	if f.failWrites {
		return false, nil
	}
	if _, ok := f.authors[entity.ID]; !ok {
		return false, nil
	}
	delete(f.authors, entity.ID)
	return true, nil
}

func TestCreateAssignsIdentity(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := NewAuthorService(repo)

	created, err := svc.Create(context.Background(), &model.CreateAuthorRequest{
		Firstname: "Jane",
		Lastname:  "Doe",
		Bio:       "",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "Jane", created.Firstname)
	assert.Equal(t, "Doe", created.Lastname)
}

func TestCreatePersistenceFailure(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	repo.failWrites = true
	svc := NewAuthorService(repo)

	_, err := svc.Create(context.Background(), &model.CreateAuthorRequest{
		Firstname: "Jane",
		Lastname:  "Doe",
	})
	assert.ErrorIs(t, err, model.ErrPersistenceFailed)
}

func TestUpdatePersistenceFailure(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	repo.authors[7] = model.Author{ID: 7, Firstname: "Jane", Lastname: "Doe"}
	repo.failWrites = true
	svc := NewAuthorService(repo)

	// Exists passes; the store then reports zero affected rows.
	err := svc.Update(context.Background(), 7, &model.UpdateAuthorRequest{
		Firstname: "Jane2",
		Lastname:  "Doe",
	})
	assert.ErrorIs(t, err, model.ErrPersistenceFailed)
}

func TestDeletePersistenceFailure(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	repo.authors[7] = model.Author{ID: 7, Firstname: "Jane", Lastname: "Doe"}
	repo.failWrites = true
	svc := NewAuthorService(repo)

	err := svc.Delete(context.Background(), 7)
	assert.ErrorIs(t, err, model.ErrPersistenceFailed)
}

func TestUpdateUsesPathIdentity(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	repo.authors[7] = model.Author{ID: 7, Firstname: "Old", Lastname: "Name"}
	svc := NewAuthorService(repo)

	err := svc.Update(context.Background(), 7, &model.UpdateAuthorRequest{
		Firstname: "Jane2",
		Lastname:  "Doe",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane2", repo.authors[7].Firstname)
	assert.Equal(t, int64(7), repo.authors[7].ID)
}

func TestUpdateMissingShortCircuits(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := NewAuthorService(repo)

	err := svc.Update(context.Background(), 7, &model.UpdateAuthorRequest{
		Firstname: "Jane2",
		Lastname:  "Doe",
	})
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
	assert.False(t, repo.updateCalled, "existence check must short-circuit before the mutation")
}

func TestDeleteMissingShortCircuits(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := NewAuthorService(repo)

	err := svc.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
	assert.False(t, repo.deleteCalled)
}

func TestDeleteThenGetNotFound(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	repo.authors[3] = model.Author{ID: 3, Firstname: "Jane", Lastname: "Doe"}
	svc := NewAuthorService(repo)

	require.NoError(t, svc.Delete(context.Background(), 3))

	_, err := svc.GetByID(context.Background(), 3)
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestGetByIDStoreError(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	repo.err = errors.New("connection reset")
	svc := NewAuthorService(repo)

	_, err := svc.GetByID(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrAuthorNotFound)
}
