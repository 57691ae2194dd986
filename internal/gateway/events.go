package gateway

import (
	"sync"

	"github.com/kaede/talent-match-go/internal/domain"
)

// SessionCallback receives auth-change notifications.
type SessionCallback func(event domain.SessionEvent)

type sessionCallbackEntry struct {
	id       int
	callback SessionCallback
}

// Subscription is the handle returned by OnSessionChanged. Cancel must be
// called when the subscriber unmounts so a disposed container is never
// notified; cancelling twice is harmless.
type Subscription struct {
	cancel   func()
	stopOnce sync.Once
}

func (s *Subscription) Cancel() {
	if s == nil {
		return
	}
	s.stopOnce.Do(s.cancel)
}

// SessionBroker fans auth-change events out to subscribers. Both the REST
// client (after its own sign-in/sign-out calls) and the realtime socket
// (for changes originating elsewhere) publish through the same broker, so
// subscribers see one ordered stream.
type SessionBroker struct {
	callbacks      []sessionCallbackEntry
	nextCallbackID int
	mu             sync.RWMutex
}

func NewSessionBroker() *SessionBroker {
	return &SessionBroker{
		callbacks:      make([]sessionCallbackEntry, 0),
		nextCallbackID: 1,
	}
}

func (b *SessionBroker) OnSessionChanged(callback SessionCallback) *Subscription {
	b.mu.Lock()
	id := b.nextCallbackID
	b.nextCallbackID++
	b.callbacks = append(b.callbacks, sessionCallbackEntry{
		id:       id,
		callback: callback,
	})
	b.mu.Unlock()

	return &Subscription{
		cancel: func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			for i, entry := range b.callbacks {
				if entry.id == id {
					b.callbacks = append(b.callbacks[:i], b.callbacks[i+1:]...)
					break
				}
			}
		},
	}
}

func (b *SessionBroker) Emit(event domain.SessionEvent) {
	b.mu.RLock()
	callbacks := make([]sessionCallbackEntry, len(b.callbacks))
	copy(callbacks, b.callbacks)
	b.mu.RUnlock()

	for _, entry := range callbacks {
		entry.callback(event)
	}
}

// SubscriberCount is used by tests and teardown checks.
func (b *SessionBroker) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.callbacks)
}
