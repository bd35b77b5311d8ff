package ports

import (
	"context"

	"github.com/propelrent/rentwise/internal/core/domain"
)

// SessionStore holds live sessions. A missing session means logged out.
type SessionStore interface {
	Save(ctx context.Context, s *domain.Session) error
	// Get returns domain.ErrSessionNotFound when the session does not exist.
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
