// Package auth provides the authentication primitives the HTTP layer
// builds on: signed time-limited token pairs and bcrypt password
// hashing.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token decode failures are collapsed into two distinguishable cases so
// callers can tell an expired-but-genuine token from garbage.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// TokenPair is what a successful register/login/refresh hands out.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Tokenizer issues and verifies HS256-signed tokens carrying the
// subject identifier.
type Tokenizer struct {
	key             []byte
	accessLifetime  time.Duration
	refreshLifetime time.Duration
}

func NewTokenizer(key []byte, accessLifetime, refreshLifetime time.Duration) *Tokenizer {
	return &Tokenizer{
		key:             key,
		accessLifetime:  accessLifetime,
		refreshLifetime: refreshLifetime,
	}
}

// IssuePair signs a short-lived access token and a longer-lived refresh
// token for the subject.
func (t *Tokenizer) IssuePair(subject string) (TokenPair, error) {
	access, err := t.issue(subject, t.accessLifetime)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := t.issue(subject, t.refreshLifetime)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (t *Tokenizer) issue(subject string, lifetime time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(lifetime)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.key)
}

// Subject verifies a token and returns its subject. Expired tokens
// fail with ErrTokenExpired; everything else (bad signature, malformed,
// missing subject) fails with ErrTokenInvalid.
func (t *Tokenizer) Subject(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return t.key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}
