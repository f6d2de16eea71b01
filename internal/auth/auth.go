// Package auth admits API clients by a shared app secret and carries the
// calling user through the request context.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// SecretHashCost is the bcrypt cost of app secret hashes.
const SecretHashCost = 12

var (
	ErrMissingSecret = errors.New("missing app secret")
	ErrInvalidSecret = errors.New("invalid app secret")
	ErrMissingUser   = errors.New("missing user id")
	ErrInvalidUser   = errors.New("invalid user id")
)

type userIDKey struct{}

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserID returns the user admitted for the request.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok && id > 0
}

func ParseUserID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrMissingUser
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidUser
	}
	return id, nil
}

// SecretChecker verifies app secrets against a bcrypt hash. A secret that
// passed once is remembered, bcrypt is too slow to run on every request.
type SecretChecker struct {
	hash string

	mu       sync.RWMutex
	verified map[string]bool
}

func NewSecretChecker(hash string) *SecretChecker {
	return &SecretChecker{
		hash:     hash,
		verified: make(map[string]bool),
	}
}

func (c *SecretChecker) Check(secret string) error {
	if secret == "" {
		return ErrMissingSecret
	}

	c.mu.RLock()
	ok := c.verified[secret]
	c.mu.RUnlock()
	if ok {
		return nil
	}

	if c.hash == "" || bcrypt.CompareHashAndPassword([]byte(c.hash), []byte(secret)) != nil {
		return ErrInvalidSecret
	}

	c.mu.Lock()
	c.verified[secret] = true
	c.mu.Unlock()
	return nil
}

// HashSecret produces the value expected in GYMCOACH_APP_SECRET_HASH.
func HashSecret(secret string) (string, error) {
	if secret == "" {
		return "", ErrMissingSecret
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), SecretHashCost)
	if err != nil {
		return "", fmt.Errorf("hash app secret: %w", err)
	}
	return string(hash), nil
}
