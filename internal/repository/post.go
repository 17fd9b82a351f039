package repository

import (
	"context"
	"errors"

	"postboard/internal/models"
	"postboard/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	GetByUserID(ctx context.Context, userID uint) ([]models.Post, error)
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	db      *gorm.DB
	log     *observability.RepoLogger
	metrics *observability.DatabaseMetrics
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{
		db:      db,
		log:     observability.NewRepoLogger("posts"),
		metrics: observability.NewDatabaseMetrics("posts"),
	}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) (err error) {
	ctx, span := observability.StartRepositorySpan(ctx, "Create", "posts")
	defer func() { observability.EndSpan(span, err) }()
	defer r.metrics.TrackQuery("insert")()

	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		r.log.LogError(ctx, err, "create")
		return models.NewInternalError(err)
	}
	r.log.LogCreate(ctx, map[string]any{"id": post.ID, "user_id": post.UserID})
	return nil
}

// GetByID returns a NotFound AppError when no post has the id.
func (r *postRepository) GetByID(ctx context.Context, id uint) (post *models.Post, err error) {
	ctx, span := observability.StartRepositorySpan(ctx, "GetByID", "posts")
	defer func() { observability.EndSpan(span, internalOnly(err)) }()
	defer r.metrics.TrackQuery("select")()

	var p models.Post
	if err := r.db.WithContext(ctx).Take(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError(models.MsgPostNotFound)
		}
		r.log.LogError(ctx, err, "get_by_id")
		return nil, models.NewInternalError(err)
	}
	return &p, nil
}

// GetByUserID returns the user's posts in the order the store scans them.
// No ORDER BY is applied. An empty slice is not an error here.
func (r *postRepository) GetByUserID(ctx context.Context, userID uint) (posts []models.Post, err error) {
	ctx, span := observability.StartRepositorySpan(ctx, "GetByUserID", "posts")
	defer func() { observability.EndSpan(span, err) }()
	defer r.metrics.TrackQuery("select")()

	posts = []models.Post{}
	if err := r.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: "userId"}, Value: userID}).
		Find(&posts).Error; err != nil {
		r.log.LogError(ctx, err, "get_by_user_id")
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) (err error) {
	ctx, span := observability.StartRepositorySpan(ctx, "Delete", "posts")
	defer func() { observability.EndSpan(span, err) }()
	defer r.metrics.TrackQuery("delete")()

	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		r.log.LogError(ctx, err, "delete")
		return models.NewInternalError(err)
	}
	r.log.LogDelete(ctx, map[string]any{"id": id})
	return nil
}
