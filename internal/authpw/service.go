// Package authpw provides email/password authentication. Creating an
// account also runs the identity-linking pass that promotes any pending
// invitations carrying the new account's email.
package authpw

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"memorylane/api/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrEmailExists        = errors.New("email already registered")
	ErrMissingFields      = errors.New("email, password, and profile name are required")
)

// UserStore defines the storage interface for auth
type UserStore interface {
	CreateUser(ctx context.Context, user store.User) (store.User, int, error)
	GetUserByEmail(ctx context.Context, email string) (store.User, error)
}

type Service struct {
	store UserStore
}

func NewService(store UserStore) *Service {
	return &Service{store: store}
}

// SignUpRequest contains sign-up parameters
type SignUpRequest struct {
	Email       string
	Password    string
	ProfileName string
}

// SignUpResponse contains sign-up result. LinkedInvites is how many pending
// invitations matched the new account's email and were confirmed.
type SignUpResponse struct {
	User          store.User
	LinkedInvites int
}

// SignUp creates a new account. The user row and the invitation-linking
// update commit or roll back together.
func (s *Service) SignUp(ctx context.Context, req SignUpRequest) (*SignUpResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	profileName := strings.TrimSpace(req.ProfileName)
	if email == "" || req.Password == "" || profileName == "" {
		return nil, ErrMissingFields
	}
	if len(req.Password) < 8 {
		return nil, ErrWeakPassword
	}

	if _, err := s.store.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, linked, err := s.store.CreateUser(ctx, store.User{
		Username:     email,
		Email:        email,
		PasswordHash: string(hash),
		ProfileName:  profileName,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailConflict) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	slog.Info("user created", "user_id", user.ID, "linked_invites", linked)

	return &SignUpResponse{User: user, LinkedInvites: linked}, nil
}

// SignInRequest contains sign-in parameters
type SignInRequest struct {
	Email    string
	Password string
}

// SignIn authenticates a user
func (s *Service) SignIn(ctx context.Context, req SignInRequest) (store.User, error) {
	if req.Email == "" || req.Password == "" {
		return store.User{}, ErrInvalidCredentials
	}

	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return store.User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return store.User{}, ErrInvalidCredentials
	}

	return user, nil
}
