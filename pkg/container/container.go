package container

import (
	"context"
	"fmt"
	"time"

	"bookcatalog-api/internal/config"
	infraCache "bookcatalog-api/internal/infrastructure/cache"
	"bookcatalog-api/internal/infrastructure/database"
	"bookcatalog-api/pkg/cache"
	"bookcatalog-api/pkg/jwt"
	"bookcatalog-api/pkg/logger"

	authorHandler "bookcatalog-api/internal/domains/author/handler"
	authorRepo "bookcatalog-api/internal/domains/author/repository"
	authorService "bookcatalog-api/internal/domains/author/service"
	bookHandler "bookcatalog-api/internal/domains/book/handler"
	bookRepo "bookcatalog-api/internal/domains/book/repository"
	bookService "bookcatalog-api/internal/domains/book/service"
	userHandler "bookcatalog-api/internal/domains/user/handler"
	userRepo "bookcatalog-api/internal/domains/user/repository"
	userService "bookcatalog-api/internal/domains/user/service"
)

// Container holds the full dependency graph. Initialization order is
// config, infrastructure, repositories, services, handlers; the process
// does not start if any stage fails.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
	UserHandler   *userHandler.UserHandler

	redis *infraCache.RedisCache
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	c.DB = database.NewPostgresDB(cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := database.Migrate(cfg.Database); err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	c.redis = infraCache.NewRedisCache(cfg.Redis)
	if err := c.redis.Ping(ctx); err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	c.Cache = c.redis

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpiryMinutes)

	authors := authorRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	books := bookRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	users := userRepo.NewPostgresRepository(c.DB.Pool)

	authorSvc := authorService.NewAuthorService(authors)
	bookSvc := bookService.NewBookService(books)
	userSvc := userService.NewUserService(users, c.JWTManager)

	// Bootstrap roles/accounts exist after every start; seeding is
	// idempotent.
	if err := userSvc.Seed(ctx); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("seed accounts: %w", err)
	}

	c.AuthorHandler = authorHandler.NewAuthorHandler(authorSvc)
	c.BookHandler = bookHandler.NewBookHandler(bookSvc)
	c.UserHandler = userHandler.NewUserHandler(userSvc)

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return c, nil
}

// Cleanup releases the database pool and the redis client.
func (c *Container) Cleanup() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			logger.Error("redis close failed", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
