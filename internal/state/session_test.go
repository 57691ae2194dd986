package state

import (
	"context"
	"fmt"
	"testing"

	"github.com/kaede/talent-match-go/internal/domain"
	"github.com/kaede/talent-match-go/internal/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAuth struct {
	session *domain.Session
	err     error
}

func (s *stubAuth) GetCurrentSession(ctx context.Context) (*domain.Session, error) {
	return s.session, s.err
}

func (s *stubAuth) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	return s.session, s.err
}

func (s *stubAuth) SignUp(ctx context.Context, email, password string) (*domain.Session, error) {
	return s.session, s.err
}

func (s *stubAuth) SignOut(ctx context.Context) error {
	return s.err
}

func TestLoadRestoresSession(t *testing.T) {
	auth := &stubAuth{session: signedIn("u1")}
	state := NewSessionState(auth, gateway.NewSessionBroker(), zap.NewNop())

	state.Load(context.Background())

	require.True(t, state.SignedIn())
	assert.Equal(t, "u1", state.Session().UserID)
}

func TestLoadFailureStartsSignedOut(t *testing.T) {
	auth := &stubAuth{err: fmt.Errorf("gateway unreachable")}
	state := NewSessionState(auth, gateway.NewSessionBroker(), zap.NewNop())

	state.Load(context.Background())

	assert.False(t, state.SignedIn(), "a failed restore is signed out, not fatal")
}

func TestSubscribeAppliesEvents(t *testing.T) {
	broker := gateway.NewSessionBroker()
	state := NewSessionState(&stubAuth{}, broker, zap.NewNop())

	var notified []*domain.Session
	state.SetNotify(func(s *domain.Session) {
		notified = append(notified, s)
	})
	state.Subscribe()
	defer state.Close()

	broker.Emit(domain.SessionEvent{Type: domain.SessionSignedIn, Session: signedIn("u1")})
	require.True(t, state.SignedIn())
	assert.Equal(t, "u1", state.Session().UserID)

	broker.Emit(domain.SessionEvent{Type: domain.SessionSignedOut})
	assert.False(t, state.SignedIn(), "sign-out clears the identity")

	require.Len(t, notified, 2)
	assert.NotNil(t, notified[0])
	assert.Nil(t, notified[1])
}

func TestTokenRefreshReplacesSession(t *testing.T) {
	broker := gateway.NewSessionBroker()
	state := NewSessionState(&stubAuth{}, broker, zap.NewNop())
	state.Subscribe()
	defer state.Close()

	broker.Emit(domain.SessionEvent{Type: domain.SessionSignedIn, Session: signedIn("u1")})
	refreshed := signedIn("u1")
	refreshed.AccessToken = "token-2"
	broker.Emit(domain.SessionEvent{Type: domain.SessionTokenRefresh, Session: refreshed})

	require.True(t, state.SignedIn())
	assert.Equal(t, "token-2", state.Session().AccessToken)
}

func TestCloseCancelsSubscription(t *testing.T) {
	broker := gateway.NewSessionBroker()
	state := NewSessionState(&stubAuth{}, broker, zap.NewNop())
	state.Subscribe()

	require.Equal(t, 1, broker.SubscriberCount())
	state.Close()
	assert.Equal(t, 0, broker.SubscriberCount(), "a closed container must not be notified")

	broker.Emit(domain.SessionEvent{Type: domain.SessionSignedIn, Session: signedIn("u1")})
	assert.False(t, state.SignedIn())
}
