// Package services implements the coursehub use cases on top of a
// repomanager.RepositoryManager. Services return the sentinel errors from
// internal/common so transports can map them without inspecting strings.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/coursehub/internal/common"
	"github.com/dmitrijs2005/coursehub/internal/server/auth"
	"github.com/dmitrijs2005/coursehub/internal/server/config"
	"github.com/dmitrijs2005/coursehub/internal/server/models"
	"github.com/dmitrijs2005/coursehub/internal/server/password"
	"github.com/dmitrijs2005/coursehub/internal/server/repositories/repomanager"
)

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type UserService struct {
	repomanager           repomanager.RepositoryManager
	hasher                password.Hasher
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	// dummyHash is verified against when the email is unknown so both
	// login failure paths cost one hash computation.
	dummyHash string
}

func NewUserService(m repomanager.RepositoryManager, hasher password.Hasher, cfg *config.Config) (*UserService, error) {
	filler, err := common.MakeRandHexString(16)
	if err != nil {
		return nil, err
	}
	dummy, err := hasher.Hash(filler)
	if err != nil {
		return nil, fmt.Errorf("error preparing dummy hash: %w", err)
	}

	return &UserService{
		repomanager:           m,
		hasher:                hasher,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		dummyHash:             dummy,
	}, nil
}

// NormalizeEmail is the canonical form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (string, error) {
	user := &models.User{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     NormalizeEmail(in.Email),
	}

	if err := s.validateRegistration(user, in.Password); err != nil {
		return "", err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	user.PasswordHash = hash

	user, err = s.repomanager.Users().Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return "", err
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return user.ID, nil
}

func (s *UserService) validateRegistration(user *models.User, pw string) error {
	switch {
	case user.FirstName == "":
		return fmt.Errorf("%w: first name is required", common.ErrValidation)
	case user.LastName == "":
		return fmt.Errorf("%w: last name is required", common.ErrValidation)
	case user.Email == "" || !strings.Contains(user.Email, "@"):
		return fmt.Errorf("%w: a valid email is required", common.ErrValidation)
	case pw == "":
		return fmt.Errorf("%w: password is required", common.ErrValidation)
	}

	if _, ok := s.hasher.(*password.BcryptHasher); ok && len(pw) > password.MaxBcryptPasswordLength {
		return fmt.Errorf("%w: password must be at most %d bytes", common.ErrValidation, password.MaxBcryptPasswordLength)
	}
	return nil
}

// Login returns a signed session token. Unknown email and wrong password
// both yield common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, pw string) (string, error) {
	email = NormalizeEmail(email)
	if email == "" || pw == "" {
		return "", fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	user, err := s.repomanager.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			_, _ = s.hasher.Verify(pw, s.dummyHash)
			return "", common.ErrInvalidCredentials
		}
		return "", fmt.Errorf("error loading user: %w", err)
	}

	ok, err := s.hasher.Verify(pw, user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		return "", common.ErrInvalidCredentials
	}

	identity := auth.Identity{UserID: user.ID, Email: user.Email, FirstName: user.FirstName}
	token, err := auth.GenerateToken(identity, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}
	return token, nil
}

// Profile returns the user without its password hash.
func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repomanager.Users().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	user.PasswordHash = ""
	return user, nil
}
