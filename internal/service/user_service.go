// Package service contains the business rules sitting between handlers and repositories.
package service

import (
	"context"

	"bitacora/internal/models"
	"bitacora/internal/repository"
	"bitacora/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo repository.UserRepository
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type UpdateUserInput struct {
	UserID   uint
	Name     string
	Email    string
	Password string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register validates every field, hashes the password, and creates the user.
// A duplicate email yields a conflict error.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	var v validation.Violations
	v.Check("name", validation.ValidateName(in.Name))
	v.Check("email", validation.ValidateEmail(in.Email))
	v.Check("password", validation.ValidatePassword(in.Password))
	if err := v.Err(); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Email is already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate looks up a user by email and checks the password hash. The
// returned error is identical whether the email is unknown or the password
// mismatches, so callers cannot probe for registered addresses.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	return user, nil
}

// GetUser returns a user by id, or a not-found error.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateUser applies a partial update of {name, email, password}. Supplying
// none of them is a validation failure and performs no mutation. A supplied
// password is rehashed before storage.
func (s *UserService) UpdateUser(ctx context.Context, in UpdateUserInput) (*models.User, error) {
	if in.Name == "" && in.Email == "" && in.Password == "" {
		return nil, models.NewValidationError("At least one of name, email, or password is required")
	}

	var v validation.Violations
	if in.Name != "" {
		v.Check("name", validation.ValidateName(in.Name))
	}
	if in.Email != "" {
		v.Check("email", validation.ValidateEmail(in.Email))
	}
	if in.Password != "" {
		v.Check("password", validation.ValidatePassword(in.Password))
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Password != "" {
		hashed, hashErr := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			return nil, models.NewInternalError(hashErr)
		}
		user.Password = string(hashed)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user row. It is idempotent on the store's
// affected-row count: a zero count means the row was already gone.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	affected, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.NewNotFoundError("User", id)
	}
	return nil
}
