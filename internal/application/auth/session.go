package auth

import (
	"context"
	"time"

	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// SessionStore holds the authenticated principal for the lifetime of a session.
// Set persists the principal, Clear removes it, and Current returns the stored
// principal or nil when there is none. Malformed stored data is treated as
// "none", never as an error: a corrupt session must force re-login, not crash.
type SessionStore interface {
	Set(ctx context.Context, p *entity.Principal, ttl time.Duration) error
	Clear(ctx context.Context, sessionID string) error
	Current(ctx context.Context, sessionID string) (*entity.Principal, error)
}
