package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bookcatalog-api/internal/domains/user/model"
	"bookcatalog-api/pkg/jwt"
)

// fakeRepo implements repository.RepositoryInterface in memory.
type fakeRepo struct {
	byEmail map[string]model.User
	nextID  int64
	creates int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEmail: map[string]model.User{}, nextID: 1}
}

func (f *fakeRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeRepo) Create(ctx context.Context, user *model.User) error {
	user.ID = f.nextID
	f.nextID++
	f.creates++
	f.byEmail[user.Email] = *user
	return nil
}

func testManager() *jwt.Manager {
	return jwt.NewManager("test-secret", "bookcatalog-api", 60)
}

func seedUser(t *testing.T, repo *fakeRepo, email, password, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &model.User{
		Username:     "Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}))
}

func TestLoginSuccess(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	seedUser(t, repo, "admin@bookstore.com", "P@ssw0rd!", "Administrator")

	manager := testManager()
	svc := NewUserService(repo, manager)

	resp, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "admin@bookstore.com",
		Password: "P@ssw0rd!",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)

	claims, err := manager.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "Administrator", claims.Role)
	assert.Equal(t, "admin@bookstore.com", claims.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	seedUser(t, repo, "admin@bookstore.com", "P@ssw0rd!", "Administrator")

	svc := NewUserService(repo, testManager())

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "admin@bookstore.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestLoginUnknownAccount(t *testing.T) {
	t.Parallel()

	svc := NewUserService(newFakeRepo(), testManager())

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	// Unknown account and wrong password are indistinguishable.
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestSeedIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := NewUserService(repo, testManager())

	require.NoError(t, svc.Seed(context.Background()))
	assert.Equal(t, 3, repo.creates)

	admin := repo.byEmail["admin@bookstore.com"]
	assert.Equal(t, "Administrator", admin.Role)
	assert.Equal(t, "Admin", admin.Username)

	// A second run must not duplicate accounts.
	require.NoError(t, svc.Seed(context.Background()))
	assert.Equal(t, 3, repo.creates)
}
