package gateway

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kaede/talent-match-go/internal/domain"
	"go.uber.org/zap"
)

type RealtimeState int

const (
	RealtimeDisconnected RealtimeState = iota
	RealtimeConnecting
	RealtimeConnected
	RealtimeReconnecting
	RealtimeFailed
)

func (s RealtimeState) String() string {
	switch s {
	case RealtimeDisconnected:
		return "disconnected"
	case RealtimeConnecting:
		return "connecting"
	case RealtimeConnected:
		return "connected"
	case RealtimeReconnecting:
		return "reconnecting"
	case RealtimeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Realtime listens to the gateway's auth-change broadcast channel and feeds
// events into the shared session broker. Changes the client makes itself are
// emitted locally by the REST client, so a dropped socket degrades to
// "no remote notifications" rather than a broken UI.
type Realtime struct {
	wsURL                string
	conn                 *websocket.Conn
	state                RealtimeState
	stateMu              sync.RWMutex
	broker               *SessionBroker
	reconnectAttempts    int
	maxReconnectAttempts int
	reconnectDelay       time.Duration
	logger               *zap.Logger
	stopCh               chan struct{}
	stopOnce             sync.Once
	listenerWg           sync.WaitGroup
}

func NewRealtime(wsURL string, broker *SessionBroker, maxReconnectAttempts int, reconnectDelay time.Duration, logger *zap.Logger) *Realtime {
	return &Realtime{
		wsURL:                wsURL,
		state:                RealtimeDisconnected,
		broker:               broker,
		maxReconnectAttempts: maxReconnectAttempts,
		reconnectDelay:       reconnectDelay,
		logger:               logger,
		stopCh:               make(chan struct{}),
	}
}

func (r *Realtime) Connect(ctx context.Context) error {
	r.stateMu.Lock()
	if r.state == RealtimeConnected || r.state == RealtimeConnecting {
		r.stateMu.Unlock()
		r.logger.Warn("Realtime channel already connected or connecting")
		return nil
	}
	r.stateMu.Unlock()

	r.setState(RealtimeConnecting)

	dialer := websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second

	conn, _, err := dialer.DialContext(ctx, r.wsURL, nil)
	if err != nil {
		r.logger.Error("Failed to connect realtime channel", zap.Error(err))
		r.setState(RealtimeFailed)
		r.scheduleReconnect(ctx)
		return err
	}

	r.conn = conn
	r.setState(RealtimeConnected)
	r.reconnectAttempts = 0

	r.logger.Info("Realtime channel connected", zap.String("url", r.wsURL))

	r.listenerWg.Add(1)
	go r.listen(ctx)

	return nil
}

func (r *Realtime) listen(ctx context.Context) {
	defer r.listenerWg.Done()
	defer r.logger.Info("Realtime listener stopped")

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stopCh:
			return
		default:
			if r.conn == nil {
				return
			}

			_, msgBytes, err := r.conn.ReadMessage()
			if err != nil {
				r.logger.Error("Realtime read error", zap.Error(err))
				r.setState(RealtimeDisconnected)
				r.scheduleReconnect(ctx)
				return
			}

			r.handleFrame(msgBytes)
		}
	}
}

func (r *Realtime) handleFrame(data []byte) {
	var event domain.SessionEvent
	if err := json.Unmarshal(data, &event); err != nil {
		dataStr := string(data)
		if len(dataStr) > 200 {
			dataStr = dataStr[:200]
		}
		r.logger.Error("Failed to parse realtime frame",
			zap.Error(err),
			zap.String("data", dataStr),
		)
		return
	}

	if event.Type == "" {
		return
	}

	r.broker.Emit(event)
}

func (r *Realtime) scheduleReconnect(ctx context.Context) {
	r.reconnectAttempts++

	if r.reconnectAttempts > r.maxReconnectAttempts {
		r.logger.Error("Max realtime reconnect attempts reached",
			zap.Int("attempts", r.reconnectAttempts),
		)
		r.setState(RealtimeFailed)
		return
	}

	r.setState(RealtimeReconnecting)

	r.logger.Info("Scheduling realtime reconnect",
		zap.Int("attempt", r.reconnectAttempts),
		zap.Int("max", r.maxReconnectAttempts),
		zap.Duration("delay", r.reconnectDelay),
	)

	go func() {
		select {
		case <-time.After(r.reconnectDelay):
			if err := r.Connect(ctx); err != nil {
				r.logger.Error("Realtime reconnect failed", zap.Error(err))
			}
		case <-ctx.Done():
			return
		}
	}()
}

func (r *Realtime) setState(newState RealtimeState) {
	r.stateMu.Lock()
	oldState := r.state
	r.state = newState
	r.stateMu.Unlock()

	if oldState != newState {
		r.logger.Info("Realtime state changed",
			zap.String("from", oldState.String()),
			zap.String("to", newState.String()),
		)
	}
}

func (r *Realtime) GetState() RealtimeState {
	r.stateMu.RLock()
	defer r.stateMu.RUnlock()
	return r.state
}

func (r *Realtime) IsConnected() bool {
	return r.GetState() == RealtimeConnected
}

func (r *Realtime) Disconnect() error {
	r.stopOnce.Do(func() {
		close(r.stopCh)
	})

	if r.conn != nil {
		if err := r.conn.Close(); err != nil {
			r.logger.Error("Failed to close realtime channel", zap.Error(err))
			return err
		}
		r.conn = nil
	}

	r.reconnectAttempts = 0
	r.setState(RealtimeDisconnected)
	r.logger.Info("Realtime channel disconnected")

	done := make(chan struct{})
	go func() {
		r.listenerWg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		r.logger.Warn("Timeout waiting for realtime listener to stop")
	}

	return nil
}
