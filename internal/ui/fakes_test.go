package ui

import (
	"context"

	"github.com/kaede/talent-match-go/internal/domain"
	"github.com/kaede/talent-match-go/internal/gateway"
	"github.com/kaede/talent-match-go/internal/state"
	"go.uber.org/zap"
)

// fakeAuth satisfies gateway.Authenticator with canned responses.
type fakeAuth struct {
	session    *domain.Session
	signInErr  error
	signUpErr  error
	signOutErr error

	signInCalls  int
	signUpCalls  int
	signOutCalls int
}

func (f *fakeAuth) GetCurrentSession(ctx context.Context) (*domain.Session, error) {
	return f.session, nil
}

func (f *fakeAuth) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	f.signInCalls++
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	return f.session, nil
}

func (f *fakeAuth) SignUp(ctx context.Context, email, password string) (*domain.Session, error) {
	f.signUpCalls++
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return f.session, nil
}

func (f *fakeAuth) SignOut(ctx context.Context) error {
	f.signOutCalls++
	return f.signOutErr
}

// fakeStore satisfies gateway.ProfileStore.
type fakeStore struct {
	listing    []*domain.Profile
	own        *domain.Profile
	selectErr  error
	profileErr error
	upsertErr  error

	upserted []*domain.Profile
}

func (f *fakeStore) SelectVerifiedProfiles(ctx context.Context) ([]*domain.Profile, error) {
	if f.selectErr != nil {
		return nil, f.selectErr
	}
	return f.listing, nil
}

func (f *fakeStore) SelectProfile(ctx context.Context, id string) (*domain.Profile, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.own, nil
}

func (f *fakeStore) UpsertProfile(ctx context.Context, profile *domain.Profile) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserted = append(f.upserted, profile)
	return nil
}

func newTestModel(auth *fakeAuth, store *fakeStore) Model {
	logger := zap.NewNop()
	broker := gateway.NewSessionBroker()
	session := state.NewSessionState(auth, broker, logger)
	session.Load(context.Background())
	cache := state.NewProfileCache(store, logger)

	return NewModel(Deps{
		Auth:             auth,
		Store:            store,
		Session:          session,
		Cache:            cache,
		Logger:           logger,
		DefaultAvatarURL: "https://example.com/default.png",
	})
}

func sampleProfile(id, name string, price int) *domain.Profile {
	p := &domain.Profile{
		ID:               id,
		FullName:         name,
		Category:         domain.CategoryVoiceActor,
		Bio:              "bio for " + name,
		PricePerProject:  price,
		SubscriptionPlan: domain.PlanFree,
		IsVerified:       true,
	}
	return p
}
