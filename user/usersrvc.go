// Package user implements registration, login and token refresh on top
// of the store and auth primitives.
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/ejapp/backend/auth"
	"github.com/ejapp/backend/store"
)

type UserSrvc struct {
	store *store.Store
	jwt   *auth.Tokenizer
}

func NewUserSrvc(s *store.Store, t *auth.Tokenizer) *UserSrvc {
	return &UserSrvc{store: s, jwt: t}
}

// Register creates a user keyed by email and hands out a token pair.
func (s *UserSrvc) Register(ctx context.Context, email, password string) (auth.TokenPair, error) {
	_, err := s.store.UserByEmail(ctx, email)
	if err == nil {
		return auth.TokenPair{}, newErrEmailExists()
	}
	if !errors.Is(err, store.ErrNotFound) {
		return auth.TokenPair{}, newErrInternalSE().SetDebug(fmt.Errorf("lookup user by email: %w", err))
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return auth.TokenPair{}, newErrInternalSE().SetDebug(fmt.Errorf("hash password: %w", err))
	}
	u, err := s.store.CreateUser(ctx, email, hash)
	if err != nil {
		return auth.TokenPair{}, newErrInternalSE().SetDebug(fmt.Errorf("create user: %w", err))
	}

	pair, err := s.jwt.IssuePair(u.Email)
	if err != nil {
		return auth.TokenPair{}, newErrInternalSE().SetDebug(fmt.Errorf("issue tokens: %w", err))
	}
	return pair, nil
}

// Login verifies credentials and hands out a fresh token pair.
func (s *UserSrvc) Login(ctx context.Context, email, password string) (auth.TokenPair, error) {
	u, err := s.store.UserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return auth.TokenPair{}, newErrInvalidCredentials()
	}
	if err != nil {
		return auth.TokenPair{}, newErrInternalSE().SetDebug(fmt.Errorf("lookup user by email: %w", err))
	}
	if !auth.VerifyPassword(password, u.HashedPassword) {
		return auth.TokenPair{}, newErrInvalidCredentials()
	}

	pair, err := s.jwt.IssuePair(u.Email)
	if err != nil {
		return auth.TokenPair{}, newErrInternalSE().SetDebug(fmt.Errorf("issue tokens: %w", err))
	}
	return pair, nil
}

// Refresh re-issues a token pair from a valid refresh token.
func (s *UserSrvc) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	sub, err := s.jwt.Subject(refreshToken)
	if errors.Is(err, auth.ErrTokenExpired) {
		return auth.TokenPair{}, newErrRefreshTokenExpired()
	}
	if err != nil {
		return auth.TokenPair{}, newErrTokenInvalid()
	}

	pair, err := s.jwt.IssuePair(sub)
	if err != nil {
		return auth.TokenPair{}, newErrInternalSE().SetDebug(fmt.Errorf("issue tokens: %w", err))
	}
	return pair, nil
}

// Authenticate resolves an access token to the stored user record.
func (s *UserSrvc) Authenticate(ctx context.Context, accessToken string) (store.User, error) {
	sub, err := s.jwt.Subject(accessToken)
	if err != nil {
		return store.User{}, newErrTokenInvalid()
	}
	u, err := s.store.UserByEmail(ctx, sub)
	if errors.Is(err, store.ErrNotFound) {
		return store.User{}, newErrUserNotFound()
	}
	if err != nil {
		return store.User{}, newErrInternalSE().SetDebug(fmt.Errorf("lookup user by email: %w", err))
	}
	return u, nil
}
