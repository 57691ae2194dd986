package state

import (
	"context"
	stderrors "errors"
	"sync"

	"github.com/kaede/talent-match-go/internal/domain"
	"github.com/kaede/talent-match-go/internal/gateway"
	"github.com/kaede/talent-match-go/pkg/errors"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

// ProfileCache holds the browsable listing plus the signed-in user's own
// profile. Refresh recomputes both from the gateway; it is idempotent and
// safe to run redundantly, and overlapping refreshes resolve last-write-wins.
type ProfileCache struct {
	store  gateway.ProfileStore
	logger *zap.Logger

	mu      sync.RWMutex
	listing []*domain.Profile
	own     *domain.Profile
}

func NewProfileCache(store gateway.ProfileStore, logger *zap.Logger) *ProfileCache {
	return &ProfileCache{
		store:  store,
		logger: logger,
	}
}

// Refresh issues the two independent reads: the verified listing, and the
// identity's own profile when signed in. Errors degrade per policy — the
// listing fetch failure is logged and leaves the previous snapshot, the
// benign missing own-profile becomes a local draft, and any other
// own-profile error keeps the stale value. Nothing is retried.
func (c *ProfileCache) Refresh(ctx context.Context, session *domain.Session) {
	var wg conc.WaitGroup

	wg.Go(func() {
		c.refreshListing(ctx)
	})
	wg.Go(func() {
		c.refreshOwnProfile(ctx, session)
	})

	wg.Wait()
}

func (c *ProfileCache) refreshListing(ctx context.Context) {
	profiles, err := c.store.SelectVerifiedProfiles(ctx)
	if err != nil {
		c.logger.Error("Failed to fetch talent listing", zap.Error(err))
		return
	}

	for _, p := range profiles {
		p.ApplyDefaults()
	}

	c.mu.Lock()
	c.listing = profiles
	c.mu.Unlock()
}

func (c *ProfileCache) refreshOwnProfile(ctx context.Context, session *domain.Session) {
	if session == nil {
		c.mu.Lock()
		c.own = nil
		c.mu.Unlock()
		return
	}

	profile, err := c.store.SelectProfile(ctx, session.UserID)
	if err != nil {
		var notFound *errors.NotFoundError
		if stderrors.As(err, &notFound) {
			profile = domain.NewDraftProfile(session.UserID)
		} else {
			c.logger.Error("Failed to fetch own profile, keeping previous value", zap.Error(err))
			return
		}
	}

	profile.ApplyDefaults()

	c.mu.Lock()
	c.own = profile
	c.mu.Unlock()
}

// Listing returns the current snapshot of verified profiles.
func (c *ProfileCache) Listing() []*domain.Profile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	listing := make([]*domain.Profile, len(c.listing))
	copy(listing, c.listing)
	return listing
}

// OwnProfile returns the signed-in user's profile (possibly an unsaved
// draft), or nil when signed out.
func (c *ProfileCache) OwnProfile() *domain.Profile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.own
}
