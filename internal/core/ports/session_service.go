package ports

import (
	"context"

	"github.com/propelrent/rentwise/internal/core/domain"
)

// LoginInput is what the login form submits.
type LoginInput struct {
	UserType string
	Email    string
	Password string
}

// LoginResult carries the signed session token and the new session.
type LoginResult struct {
	Token   string
	Session *domain.Session
}

// SessionService drives the shell: login -> welcome -> dashboard -> logout.
type SessionService interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	Current(ctx context.Context, sessionID string) (*domain.Session, error)
	Continue(ctx context.Context, sessionID string) (*domain.Session, error)
	Logout(ctx context.Context, sessionID string) error
}
