package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"DocTrackerGo/config"
	"DocTrackerGo/models"
	"DocTrackerGo/store"
	"DocTrackerGo/utils"
)

var errInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthorized)

type UserService struct {
	users store.Store[models.User]
}

func NewUserService(users store.Store[models.User]) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Register(ctx context.Context, req models.RegisterRequest, now time.Time) (*models.User, error) {
	email := normalizeEmail(req.Email)
	if _, err := s.findByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email already in use", ErrConflict)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           utils.GenerateID(),
		Username:     strings.TrimSpace(req.Username),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now.UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email already in use", ErrConflict)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	config.Logger.Infow("user registered", "userID", user.ID, "email", email)
	return user, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.findByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPassword(user.PasswordHash, password) {
		return nil, errInvalidCredentials
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, userID string) (*models.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, validationError("please provide data to update")
	}
	return s.users.Update(ctx, userID, map[string]any{models.FieldUsername: username})
}

func (s *UserService) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !utils.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		return fmt.Errorf("%w: current password is incorrect", ErrUnauthorized)
	}
	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = s.users.Update(ctx, userID, map[string]any{models.FieldPasswordHash: hash})
	return err
}

// SetAdmin grants or revokes the admin role for the account with email.
func (s *UserService) SetAdmin(ctx context.Context, email string, admin bool) (*models.User, error) {
	user, err := s.findByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	return s.users.Update(ctx, user.ID, map[string]any{models.FieldIsAdmin: admin})
}

func (s *UserService) findByEmail(ctx context.Context, email string) (*models.User, error) {
	return store.First(ctx, s.users, store.Query{
		Conditions: []store.Condition{store.Where(models.FieldEmail, store.Eq, email)},
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
