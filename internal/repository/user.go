// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"postboard/internal/models"
	"postboard/internal/observability"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type userRepository struct {
	db      *gorm.DB
	log     *observability.RepoLogger
	metrics *observability.DatabaseMetrics
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db:      db,
		log:     observability.NewRepoLogger("users"),
		metrics: observability.NewDatabaseMetrics("users"),
	}
}

// GetByID returns a NotFound AppError when no user has the id.
func (r *userRepository) GetByID(ctx context.Context, id uint) (user *models.User, err error) {
	ctx, span := observability.StartRepositorySpan(ctx, "GetByID", "users")
	defer func() { observability.EndSpan(span, internalOnly(err)) }()
	defer r.metrics.TrackQuery("select")()

	var u models.User
	if err := r.db.WithContext(ctx).Take(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError(models.MsgUserNotFound)
		}
		r.log.LogError(ctx, err, "get_by_id")
		return nil, models.NewInternalError(err)
	}
	return &u, nil
}

// GetByEmail matches the email exactly, case included. It returns (nil, nil)
// when nobody registered the address.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (user *models.User, err error) {
	ctx, span := observability.StartRepositorySpan(ctx, "GetByEmail", "users")
	defer func() { observability.EndSpan(span, err) }()
	defer r.metrics.TrackQuery("select")()

	var u models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).Take(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.log.LogError(ctx, err, "get_by_email")
		return nil, models.NewInternalError(err)
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) (err error) {
	ctx, span := observability.StartRepositorySpan(ctx, "Create", "users")
	defer func() { observability.EndSpan(span, err) }()
	defer r.metrics.TrackQuery("insert")()

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		r.log.LogError(ctx, err, "create")
		return models.NewInternalError(err)
	}
	r.log.LogCreate(ctx, map[string]any{"id": user.ID})
	return nil
}

// internalOnly drops not-found results so they are not recorded as span errors.
func internalOnly(err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
		return nil
	}
	return err
}
