package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/validation"
)

var ErrUserNotFound = errors.New("user not found")

// UserService manages clinic accounts. Deleting an account also drops
// its access tokens so stale credentials cannot outlive it.
type UserService struct {
	users  repository.UserRepository
	tokens repository.TokenRepository
}

func NewUserService(users repository.UserRepository, tokens repository.TokenRepository) *UserService {
	return &UserService{users: users, tokens: tokens}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, req *dto.UserPayload) (*models.User, error) {
	if err := validation.Apply(ctx, s.rules(req, uuid.Nil, false)...); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Name:     *req.Name,
		Email:    *req.Email,
		Password: string(hash),
		Role:     *req.Role,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, req *dto.UserPayload) (*models.User, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validation.Apply(ctx, s.rules(req, id, true)...); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		updates["password"] = string(hash)
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}

	if len(updates) == 0 {
		return current, nil
	}

	if _, err := s.users.Update(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := s.users.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if n == 0 {
		return ErrUserNotFound
	}
	if err := s.tokens.DeleteForUser(ctx, id); err != nil {
		return fmt.Errorf("failed to drop tokens for deleted user: %w", err)
	}
	return nil
}

// rules builds the declarative rule set; partial relaxes required fields
// for updates and excludes the record itself from the uniqueness check.
func (s *UserService) rules(req *dto.UserPayload, exclude uuid.UUID, partial bool) []validation.Rule {
	required := validation.Required
	if partial {
		required = validation.RequiredIfPresent
	}

	rules := []validation.Rule{
		required("name", req.Name, "The name field is required"),
		validation.MaxLen("name", req.Name, 100, "The name may not be longer than 100 characters"),
		required("email", req.Email, "The email field is required"),
		validation.Email("email", req.Email, "The email must be a valid email address"),
		required("password", req.Password, "The password field is required"),
		validation.MinLen("password", req.Password, 6, "The password must be at least 6 characters"),
		required("role", req.Role, "The role field is required"),
		validation.OneOf("role", req.Role, models.Roles, "The role must be one of admin, doctor, patient, nurse"),
	}

	if req.Email != nil && *req.Email != "" {
		email := *req.Email
		rules = append(rules, validation.Unique("email", "This email is already in use", func(ctx context.Context) (bool, error) {
			return s.users.EmailAvailable(ctx, email, exclude)
		}))
	}

	return rules
}
