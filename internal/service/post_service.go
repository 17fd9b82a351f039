package service

import (
	"context"

	"postboard/internal/models"
	"postboard/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// CreatePostInput carries an already coerced author id. A zero UserID is a
// lookup miss here; callers reject falsy ids before calling CreatePost.
type CreatePostInput struct {
	UserID  uint
	Content string
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Content == "" {
		return nil, models.NewValidationError(models.MsgUserContentRequired)
	}

	if _, err := s.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	post := &models.Post{UserID: in.UserID, Content: in.Content}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post by id. The owner is not consulted.
func (s *PostService) DeletePost(ctx context.Context, postID uint) error {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, postID)
}

// ListUserPosts returns every post by the user. A user without posts is
// reported as NotFound rather than an empty list.
func (s *PostService) ListUserPosts(ctx context.Context, userID uint) ([]models.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	posts, err := s.postRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, models.NewNotFoundError(models.MsgNoPostsForUser)
	}
	return posts, nil
}
