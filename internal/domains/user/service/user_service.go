package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"bookcatalog-api/internal/domains/user/model"
	"bookcatalog-api/internal/domains/user/repository"
	"bookcatalog-api/internal/shared/middleware"
	"bookcatalog-api/pkg/jwt"
	"bookcatalog-api/pkg/logger"
)

// ServiceInterface is the account business-logic contract.
type ServiceInterface interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Seed(ctx context.Context) error
}

type userService struct {
	repo repository.RepositoryInterface
	jwt  *jwt.Manager
}

func NewUserService(repo repository.RepositoryInterface, manager *jwt.Manager) ServiceInterface {
	return &userService{
		repo: repo,
		jwt:  manager,
	}
}

// Login verifies the credential and issues an access token carrying the
// role claim. Missing accounts and wrong passwords are indistinguishable
// to the caller.
func (s *userService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("login lookup: %w", err)
	}
	if u == nil {
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(u.ID, u.Username, u.Email, u.Role)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &model.LoginResponse{
		AccessToken: token,
		User:        *u,
	}, nil
}

// seedAccount is one bootstrap account created if its email is absent.
type seedAccount struct {
	Email    string
	Username string
	Role     string
}

var seedAccounts = []seedAccount{
	{Email: "admin@bookstore.com", Username: "Admin", Role: middleware.RoleAdministrator},
	{Email: "customer@gmail.com", Username: "JohnSmith", Role: middleware.RoleCustomer},
	{Email: "customer2@gmail.com", Username: "EricDupond", Role: middleware.RoleCustomer},
}

const seedPassword = "P@ssw0rd!"

// Seed creates the bootstrap accounts idempotently: an account already
// present is left untouched.
func (s *userService) Seed(ctx context.Context) error {
	for _, acct := range seedAccounts {
		exists, err := s.repo.ExistsByEmail(ctx, acct.Email)
		if err != nil {
			return fmt.Errorf("seed check %s: %w", acct.Email, err)
		}
		if exists {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed hash: %w", err)
		}

		u := &model.User{
			Username:     acct.Username,
			Email:        acct.Email,
			PasswordHash: string(hash),
			Role:         acct.Role,
		}
		if err := s.repo.Create(ctx, u); err != nil {
			return fmt.Errorf("seed create %s: %w", acct.Email, err)
		}

		logger.Info("seeded account", map[string]interface{}{
			"email": acct.Email,
			"role":  acct.Role,
		})
	}
	return nil
}
