package gateway

import (
	"testing"

	"github.com/kaede/talent-match-go/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrokerFansOutToAllSubscribers(t *testing.T) {
	broker := NewSessionBroker()

	var first, second []domain.SessionEventType
	broker.OnSessionChanged(func(e domain.SessionEvent) {
		first = append(first, e.Type)
	})
	broker.OnSessionChanged(func(e domain.SessionEvent) {
		second = append(second, e.Type)
	})

	broker.Emit(domain.SessionEvent{Type: domain.SessionSignedIn})
	broker.Emit(domain.SessionEvent{Type: domain.SessionSignedOut})

	expected := []domain.SessionEventType{domain.SessionSignedIn, domain.SessionSignedOut}
	assert.Equal(t, expected, first)
	assert.Equal(t, expected, second)
}

func TestSubscriptionCancelStopsDelivery(t *testing.T) {
	broker := NewSessionBroker()

	calls := 0
	sub := broker.OnSessionChanged(func(domain.SessionEvent) {
		calls++
	})

	broker.Emit(domain.SessionEvent{Type: domain.SessionSignedIn})
	require.Equal(t, 1, calls)

	sub.Cancel()
	broker.Emit(domain.SessionEvent{Type: domain.SessionSignedOut})
	assert.Equal(t, 1, calls, "a cancelled subscription must not be notified")
	assert.Equal(t, 0, broker.SubscriberCount())
}

func TestSubscriptionCancelIsIdempotent(t *testing.T) {
	broker := NewSessionBroker()

	subA := broker.OnSessionChanged(func(domain.SessionEvent) {})
	subB := broker.OnSessionChanged(func(domain.SessionEvent) {})
	require.Equal(t, 2, broker.SubscriberCount())

	subA.Cancel()
	subA.Cancel()

	assert.Equal(t, 1, broker.SubscriberCount(), "double cancel must not evict other subscribers")
	subB.Cancel()
	assert.Equal(t, 0, broker.SubscriberCount())
}

func TestNilSubscriptionCancelIsSafe(t *testing.T) {
	var sub *Subscription
	sub.Cancel()
}
