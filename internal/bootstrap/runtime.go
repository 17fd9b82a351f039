// Package bootstrap prepares the store and Redis for the server process.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"postboard/internal/cache"
	"postboard/internal/config"
	"postboard/internal/database"
	"postboard/internal/observability"
	"postboard/internal/repository"
	"postboard/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedDemoData bool
}

// InitRuntime connects to the store, creates the schema, connects Redis and
// optionally seeds demo data. The returned Redis client is nil when Redis is
// not configured or unreachable.
func InitRuntime(ctx context.Context, cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := database.ApplySchema(ctx, db); err != nil {
		_ = database.Close(db)
		return nil, nil, fmt.Errorf("schema setup failed: %w", err)
	}

	r := cache.InitRedis(cfg.RedisURL)

	if opts.SeedDemoData {
		res, err := seed.Run(ctx,
			repository.NewUserRepository(db),
			repository.NewPostRepository(db),
			seed.Options{Users: cfg.SeedUsers, PostsPerUser: cfg.SeedPostsPerUser},
		)
		if err != nil {
			_ = database.Close(db)
			if r != nil {
				_ = r.Close()
			}
			return nil, nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
		observability.Logger.InfoContext(ctx, "Demo data seeded",
			slog.Int("users", res.Users),
			slog.Int("posts", res.Posts),
		)
	}

	return db, r, nil
}
