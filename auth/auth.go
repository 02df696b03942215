// Package auth checks admin credentials and issues the signed tokens kept in the
// auth-token cookie.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rpupo63/ai-portfolio-site/errs"
	"github.com/rpupo63/ai-portfolio-site/models"
)

// UserFinder loads stored credentials. It returns nil, nil for an unknown email.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type Authenticator struct {
	users   UserFinder
	secret  []byte
	ttl     time.Duration
	now     func() time.Time
	compare func(hash, password string) bool
}

type Option func(*Authenticator)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Authenticator) {
		a.now = now
	}
}

func WithTTL(ttl time.Duration) Option {
	return func(a *Authenticator) {
		a.ttl = ttl
	}
}

func New(users UserFinder, secret string, opts ...Option) (*Authenticator, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must not be empty")
	}

	a := &Authenticator{
		users:   users,
		secret:  []byte(secret),
		ttl:     TokenTTL,
		now:     time.Now,
		compare: CheckPassword,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// SignIn returns the user for a matching email and password. Unknown emails and
// wrong passwords both yield errs.ErrInvalidCredentials.
func (a *Authenticator) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	user, err := a.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		a.compare(dummyHash, password)
		return nil, errs.ErrInvalidCredentials
	}
	if !a.compare(user.PasswordHash, password) {
		return nil, errs.ErrInvalidCredentials
	}
	return user, nil
}

// SignToken issues a token carrying the user's id, email and role.
func (a *Authenticator) SignToken(user *models.User) (string, error) {
	return a.signClaims(user.ID.String(), user.Email, user.Role)
}

// TTL is the lifetime of issued tokens.
func (a *Authenticator) TTL() time.Duration {
	return a.ttl
}
