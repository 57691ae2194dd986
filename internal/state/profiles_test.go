package state

import (
	"context"
	"fmt"
	"testing"

	"github.com/kaede/talent-match-go/internal/domain"
	"github.com/kaede/talent-match-go/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubStore struct {
	listing    []*domain.Profile
	listingErr error
	own        *domain.Profile
	ownErr     error
}

func (s *stubStore) SelectVerifiedProfiles(ctx context.Context) ([]*domain.Profile, error) {
	if s.listingErr != nil {
		return nil, s.listingErr
	}
	return s.listing, nil
}

func (s *stubStore) SelectProfile(ctx context.Context, id string) (*domain.Profile, error) {
	if s.ownErr != nil {
		return nil, s.ownErr
	}
	return s.own, nil
}

func (s *stubStore) UpsertProfile(ctx context.Context, profile *domain.Profile) error {
	return nil
}

func signedIn(userID string) *domain.Session {
	return &domain.Session{UserID: userID, Email: userID + "@example.com", AccessToken: "token"}
}

func TestRefreshPopulatesListing(t *testing.T) {
	store := &stubStore{listing: []*domain.Profile{
		{ID: "t1", FullName: "Aoi", IsVerified: true},
		{ID: "t2", FullName: "Ren", IsVerified: true, SubscriptionPlan: domain.PlanPremium},
	}}
	cache := NewProfileCache(store, zap.NewNop())

	cache.Refresh(context.Background(), nil)

	listing := cache.Listing()
	require.Len(t, listing, 2)
	// Defaults are applied at the cache boundary.
	assert.Equal(t, domain.PlanFree, listing[0].SubscriptionPlan)
	assert.Equal(t, domain.PlanPremium, listing[1].SubscriptionPlan)
	assert.Nil(t, cache.OwnProfile())
}

func TestRefreshKeepsListingOnError(t *testing.T) {
	store := &stubStore{listing: []*domain.Profile{{ID: "t1", FullName: "Aoi"}}}
	cache := NewProfileCache(store, zap.NewNop())
	cache.Refresh(context.Background(), nil)
	require.Len(t, cache.Listing(), 1)

	store.listingErr = fmt.Errorf("gateway unreachable")
	cache.Refresh(context.Background(), nil)

	assert.Len(t, cache.Listing(), 1, "a failed fetch keeps the previous snapshot")
}

func TestRefreshSynthesizesDraftWhenOwnProfileMissing(t *testing.T) {
	store := &stubStore{ownErr: errors.NewNotFoundError("profile", "u1")}
	cache := NewProfileCache(store, zap.NewNop())

	cache.Refresh(context.Background(), signedIn("u1"))

	own := cache.OwnProfile()
	require.NotNil(t, own, "a missing row becomes a local draft")
	assert.Equal(t, "u1", own.ID)
	assert.Equal(t, domain.PlanFree, own.SubscriptionPlan)
	assert.False(t, own.HasListing())
}

func TestRefreshKeepsStaleOwnProfileOnError(t *testing.T) {
	store := &stubStore{own: &domain.Profile{ID: "u1", FullName: "Aoi"}}
	cache := NewProfileCache(store, zap.NewNop())
	cache.Refresh(context.Background(), signedIn("u1"))
	require.NotNil(t, cache.OwnProfile())

	store.ownErr = fmt.Errorf("gateway unreachable")
	cache.Refresh(context.Background(), signedIn("u1"))

	own := cache.OwnProfile()
	require.NotNil(t, own, "a failed fetch keeps the stale value")
	assert.Equal(t, "Aoi", own.FullName)
}

func TestRefreshClearsOwnProfileWhenSignedOut(t *testing.T) {
	store := &stubStore{own: &domain.Profile{ID: "u1", FullName: "Aoi"}}
	cache := NewProfileCache(store, zap.NewNop())
	cache.Refresh(context.Background(), signedIn("u1"))
	require.NotNil(t, cache.OwnProfile())

	cache.Refresh(context.Background(), nil)

	assert.Nil(t, cache.OwnProfile(), "signing out clears the own-profile entry")
}

func TestListingReturnsCopy(t *testing.T) {
	store := &stubStore{listing: []*domain.Profile{{ID: "t1"}, {ID: "t2"}}}
	cache := NewProfileCache(store, zap.NewNop())
	cache.Refresh(context.Background(), nil)

	listing := cache.Listing()
	listing[0] = nil

	assert.NotNil(t, cache.Listing()[0], "callers must not be able to mutate the snapshot slice")
}
