// Package seed fills a fresh store with demo users and posts. It is meant
// for local development only.
package seed

import (
	"context"
	"fmt"
	"time"

	"postboard/internal/models"
	"postboard/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
)

const maxEmailAttempts = 5

// Options controls how much demo data is generated. A zero RandSeed uses
// the current time.
type Options struct {
	Users        int
	PostsPerUser int
	RandSeed     int64
}

// Result counts what Run inserted.
type Result struct {
	Users int
	Posts int
}

// Factory builds domain entities and persists them through the repositories.
type Factory struct {
	users repository.UserRepository
	posts repository.PostRepository
	faker *gofakeit.Faker
}

// NewFactory creates a Factory writing through the given repositories.
func NewFactory(users repository.UserRepository, posts repository.PostRepository, randSeed int64) *Factory {
	if randSeed == 0 {
		randSeed = time.Now().UnixNano()
	}
	return &Factory{
		users: users,
		posts: posts,
		faker: gofakeit.New(randSeed),
	}
}

// CreateUser inserts a user with a fake name and an email not yet stored.
func (f *Factory) CreateUser(ctx context.Context) (*models.User, error) {
	for attempt := 0; attempt < maxEmailAttempts; attempt++ {
		email := f.faker.Email()
		existing, err := f.users.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			continue
		}

		user := &models.User{Name: f.faker.Name(), Email: email}
		if err := f.users.Create(ctx, user); err != nil {
			return nil, err
		}
		return user, nil
	}
	return nil, fmt.Errorf("no unused email after %d attempts", maxEmailAttempts)
}

// CreatePost inserts a post with fake content owned by user.
func (f *Factory) CreatePost(ctx context.Context, user *models.User) (*models.Post, error) {
	post := &models.Post{
		UserID:  user.ID,
		Content: f.faker.Sentence(12),
	}
	if err := f.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Run creates opts.Users users, each with opts.PostsPerUser posts.
func Run(ctx context.Context, users repository.UserRepository, posts repository.PostRepository, opts Options) (Result, error) {
	f := NewFactory(users, posts, opts.RandSeed)

	var res Result
	for i := 0; i < opts.Users; i++ {
		user, err := f.CreateUser(ctx)
		if err != nil {
			return res, fmt.Errorf("seed user %d: %w", i+1, err)
		}
		res.Users++

		for j := 0; j < opts.PostsPerUser; j++ {
			if _, err := f.CreatePost(ctx, user); err != nil {
				return res, fmt.Errorf("seed post for user %d: %w", user.ID, err)
			}
			res.Posts++
		}
	}
	return res, nil
}
