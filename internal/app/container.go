package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kaede/talent-match-go/internal/config"
	"github.com/kaede/talent-match-go/internal/domain"
	"github.com/kaede/talent-match-go/internal/gateway"
	"github.com/kaede/talent-match-go/internal/state"
	"github.com/kaede/talent-match-go/internal/ui"
	"go.uber.org/zap"
)

// Container bundles the assembled gateway clients and state containers for
// constructing the terminal UI.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	Session *state.SessionState
	Cache   *state.ProfileCache

	auth     gateway.Authenticator
	store    gateway.ProfileStore
	realtime *gateway.Realtime

	closers []func()
}

// Build assembles the gateway clients and state containers. All heavy-weight
// initialization (session restore, optional database pool, realtime socket)
// is performed here so NewProgram stays focused on UI wiring.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	broker := gateway.NewSessionBroker()

	rest := gateway.NewRestClient(gateway.RestConfig{
		BaseURL:     cfg.Gateway.BaseURL,
		AnonKey:     cfg.Gateway.AnonKey,
		SessionFile: sessionFilePath(logger),
	}, broker, logger)

	// The REST client always handles auth; profile reads and writes go to
	// Postgres directly when a database host is configured.
	var store gateway.ProfileStore = rest
	if cfg.UseDirectDatabase() {
		pg, pgErr := gateway.NewPostgresStore(gateway.PostgresConfig{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			Database: cfg.Database.Database,
		}, logger)
		if pgErr != nil {
			return nil, fmt.Errorf("failed to create postgres store: %w", pgErr)
		}
		closers = append(closers, func() {
			_ = pg.Close()
		})
		store = pg
		logger.Info("Using direct database profile store",
			zap.String("host", cfg.Database.Host))
	}

	var realtime *gateway.Realtime
	if cfg.Gateway.WSURL != "" {
		realtime = gateway.NewRealtime(cfg.Gateway.WSURL, broker, 5, 5*time.Second, logger)
	}

	session := state.NewSessionState(rest, rest, logger)
	session.Load(ctx)
	closers = append(closers, session.Close)

	cache := state.NewProfileCache(store, logger)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Session:  session,
		Cache:    cache,
		auth:     rest,
		store:    store,
		realtime: realtime,
		closers:  closers,
	}, nil
}

// NewProgram wires the UI to the state containers and returns a program
// ready to Run. Session changes are pushed into the program's message loop;
// the realtime socket, when configured, feeds the same broker the local auth
// operations do.
func (c *Container) NewProgram(ctx context.Context) *tea.Program {
	model := ui.NewModel(ui.Deps{
		Auth:             c.auth,
		Store:            c.store,
		Session:          c.Session,
		Cache:            c.Cache,
		Logger:           c.Logger,
		DefaultAvatarURL: c.Config.UI.DefaultAvatarURL,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())

	c.Session.SetNotify(func(session *domain.Session) {
		program.Send(ui.SessionChangedMsg{Session: session})
	})
	c.Session.Subscribe()

	if c.realtime != nil {
		go func() {
			if err := c.realtime.Connect(ctx); err != nil {
				c.Logger.Warn("Realtime auth events unavailable", zap.Error(err))
			}
		}()
	}

	return program
}

// Shutdown releases the subscription, the realtime socket and any database
// pool, in reverse construction order.
func (c *Container) Shutdown() {
	if c.realtime != nil {
		c.realtime.Disconnect()
	}
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// sessionFilePath places the persisted session under the user config dir.
// Falling back to empty disables persistence rather than failing startup.
func sessionFilePath(logger *zap.Logger) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		logger.Warn("No user config dir, session will not persist", zap.Error(err))
		return ""
	}
	return filepath.Join(dir, "talentmatch", "session.json")
}
