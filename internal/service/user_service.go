// Package service holds the request sequencing for sign-up and posts:
// precondition checks, existence lookups, then the write.
package service

import (
	"context"

	"postboard/internal/models"
	"postboard/internal/repository"
	"postboard/internal/validation"
)

type UserService struct {
	userRepo repository.UserRepository
}

type SignUpInput struct {
	Name  string
	Email string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// SignUp registers a user. The duplicate check runs before the format check,
// so a malformed address that is already stored reports "already registered".
// The lookup and insert are not atomic; two concurrent sign-ups for one
// address can both succeed.
func (s *UserService) SignUp(ctx context.Context, in SignUpInput) (*models.User, error) {
	if in.Name == "" || in.Email == "" {
		return nil, models.NewValidationError(models.MsgNameEmailRequired)
	}

	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewValidationError(models.MsgEmailRegistered)
	}

	if !validation.ValidateEmail(in.Email) {
		return nil, models.NewValidationError(models.MsgInvalidEmail)
	}

	user := &models.User{Name: in.Name, Email: in.Email}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
