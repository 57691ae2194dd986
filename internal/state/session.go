package state

import (
	"context"
	"sync"

	"github.com/kaede/talent-match-go/internal/domain"
	"github.com/kaede/talent-match-go/internal/gateway"
	"go.uber.org/zap"
)

// SessionState holds the current authenticated identity, or none. It is
// populated once at startup and then overwritten by every auth-change event
// until Close releases the subscription.
type SessionState struct {
	auth   gateway.Authenticator
	events gateway.SessionEvents
	logger *zap.Logger

	mu      sync.RWMutex
	session *domain.Session

	sub    *gateway.Subscription
	notify func(*domain.Session)
}

func NewSessionState(auth gateway.Authenticator, events gateway.SessionEvents, logger *zap.Logger) *SessionState {
	return &SessionState{
		auth:   auth,
		events: events,
		logger: logger,
	}
}

// SetNotify registers the hosting UI's change callback. It must be set
// before Subscribe; events arriving with no notify target are still applied
// to the state, just not pushed anywhere.
func (s *SessionState) SetNotify(notify func(*domain.Session)) {
	s.mu.Lock()
	s.notify = notify
	s.mu.Unlock()
}

// Load performs the one synchronous-from-the-caller's-perspective fetch of
// the current session. A failure starts the process signed out; it is
// logged, not fatal.
func (s *SessionState) Load(ctx context.Context) {
	session, err := s.auth.GetCurrentSession(ctx)
	if err != nil {
		s.logger.Warn("Failed to restore session, starting signed out", zap.Error(err))
		session = nil
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	if session != nil {
		s.logger.Info("Session restored", zap.String("user_id", session.UserID))
	}
}

// Subscribe establishes the standing subscription to gateway auth-change
// notifications. Each event overwrites the current identity and re-notifies.
func (s *SessionState) Subscribe() {
	if s.sub != nil {
		return
	}
	s.sub = s.events.OnSessionChanged(func(event domain.SessionEvent) {
		s.apply(event)
	})
}

func (s *SessionState) apply(event domain.SessionEvent) {
	s.mu.Lock()
	switch event.Type {
	case domain.SessionSignedOut:
		s.session = nil
	default:
		s.session = event.Session
	}
	session := s.session
	notify := s.notify
	s.mu.Unlock()

	s.logger.Info("Session changed", zap.String("event", string(event.Type)))

	if notify != nil {
		notify(session)
	}
}

// Session returns the current identity, or nil when signed out.
func (s *SessionState) Session() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *SessionState) SignedIn() bool {
	return s.Session() != nil
}

// Close releases the auth-change subscription. Must be called when the
// hosting UI unmounts so a disposed container is never notified.
func (s *SessionState) Close() {
	if s.sub != nil {
		s.sub.Cancel()
		s.sub = nil
	}
}
