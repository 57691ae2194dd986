package gateway

import (
	"context"

	"github.com/kaede/talent-match-go/internal/domain"
)

// Authenticator is the slice of the gateway that owns identity truth.
// Every call is a single attempt: no retry, no coalescing.
type Authenticator interface {
	// GetCurrentSession returns the restored session, or nil when the
	// process starts unauthenticated. A nil error with a nil session is the
	// normal signed-out result, not a failure.
	GetCurrentSession(ctx context.Context) (*domain.Session, error)
	SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error)
	// SignUp may return a nil session with a nil error while the
	// confirmation e-mail is pending.
	SignUp(ctx context.Context, email, password string) (*domain.Session, error)
	SignOut(ctx context.Context) error
}

// ProfileStore is the record storage slice of the gateway.
type ProfileStore interface {
	// SelectVerifiedProfiles returns the browsable listing. Order is
	// whatever the gateway returns; it carries no meaning.
	SelectVerifiedProfiles(ctx context.Context) ([]*domain.Profile, error)
	// SelectProfile returns *errors.NotFoundError for the benign
	// missing-record case, which callers recover from locally.
	SelectProfile(ctx context.Context, id string) (*domain.Profile, error)
	// UpsertProfile inserts or replaces the record keyed by its ID.
	UpsertProfile(ctx context.Context, profile *domain.Profile) error
}

// SessionEvents exposes the gateway's auth-change stream.
type SessionEvents interface {
	OnSessionChanged(callback SessionCallback) *Subscription
}
