package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/desenroladireito/desenrola-direito/internal/apperror"
	"github.com/desenroladireito/desenrola-direito/internal/model"
)

// User operations exist in the data model but no route exposes them — the
// original shipped the same dormant scaffolding, and we keep it without
// inventing an authentication design around it. One deliberate change:
// passwords are bcrypt-hashed instead of stored in plaintext.

const MinPasswordLength = 8

func (s *ContentService) CreateUser(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperror.ValidationFailed("username", "username is required")
	}
	if len(password) < MinPasswordLength {
		return nil, apperror.ValidationFailed("password", fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}

	if _, err := s.repo.UserByUsername(ctx, username); err == nil {
		return nil, apperror.Conflict("user", username)
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return nil, fmt.Errorf("checking username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{Username: username, Password: string(hash)}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		s.logger.Error("failed to create user", slog.String("username", username), slog.String("error", err.Error()))
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info("user created", slog.Int("id", user.ID), slog.String("username", user.Username))
	return user, nil
}

func (s *ContentService) UserByID(ctx context.Context, id int) (*model.User, error) {
	return s.repo.UserByID(ctx, id)
}

func (s *ContentService) UserByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.repo.UserByUsername(ctx, strings.TrimSpace(username))
}
