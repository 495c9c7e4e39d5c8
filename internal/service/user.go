package service

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/iroha-labs/palette-server/internal/color"
	"github.com/iroha-labs/palette-server/internal/validation"
)

// Placeholder values returned by UserService.Get.
const (
	placeholderName  = "John Doe"
	placeholderEmail = "john@example.com"
	createdUserID    = 1
)

// User is the public user representation.
type User struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	AvatarColor string `json:"avatar_color"`
}

// UserInput carries the writable user fields.
type UserInput struct {
	Name  string `json:"name" validate:"required,notblank,min=2,max=100"`
	Email string `json:"email" validate:"required,email"`
}

// UserService is a stub: nothing is persisted, writes echo their input.
type UserService struct {
	validator *validation.Validator
	logger    *slog.Logger
}

// NewUserService creates a new user service.
func NewUserService(v *validation.Validator, logger *slog.Logger) *UserService {
	if v == nil {
		v = validation.New()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &UserService{
		validator: v,
		logger:    logger,
	}
}

// List returns all users. There are none.
func (s *UserService) List(_ context.Context) []User {
	return []User{}
}

// Get returns a placeholder user carrying id.
func (s *UserService) Get(_ context.Context, id int64) (*User, error) {
	return newUser(id, placeholderName, placeholderEmail), nil
}

// Create validates in and echoes it back as user 1.
func (s *UserService) Create(ctx context.Context, in UserInput) (*User, error) {
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "user created", "id", createdUserID)
	return newUser(createdUserID, in.Name, in.Email), nil
}

// Update validates in and echoes it back under id.
func (s *UserService) Update(ctx context.Context, id int64, in UserInput) (*User, error) {
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "user updated", "id", id)
	return newUser(id, in.Name, in.Email), nil
}

// Delete accepts any id.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "user deleted", "id", id)
	return nil
}

func newUser(id int64, name, email string) *User {
	return &User{
		ID:          id,
		Name:        name,
		Email:       email,
		AvatarColor: color.ForUser(strconv.FormatInt(id, 10)),
	}
}
