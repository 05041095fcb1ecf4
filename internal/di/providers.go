package di

import (
	"fmt"

	"github.com/kcaldas/termfolio/pkg/catalog"
	"github.com/kcaldas/termfolio/pkg/clock"
	"github.com/kcaldas/termfolio/pkg/config"
	"github.com/kcaldas/termfolio/pkg/events"
	"github.com/kcaldas/termfolio/pkg/logging"
	"github.com/kcaldas/termfolio/pkg/metrics"
	"github.com/kcaldas/termfolio/pkg/preferences"
	"github.com/kcaldas/termfolio/pkg/server"
	"github.com/kcaldas/termfolio/pkg/session"
)

// LocalSessionID identifies the single session driven by the TUI and the CLI
const LocalSessionID = "local"

// Shared event bus instance
var eventBus = events.NewEventBus()

func ProvideEventBus() events.EventBus {
	return eventBus
}

func ProvidePublisher() events.Publisher {
	return eventBus
}

func ProvideSubscriber() events.Subscriber {
	return eventBus
}

func ProvideConfigManager() config.Manager {
	return config.NewConfigManager()
}

// ProvideCatalog loads TERMFOLIO_CATALOG when set, the embedded catalog otherwise
func ProvideCatalog(cfg config.Manager) (*catalog.Catalog, error) {
	path := cfg.GetStringWithDefault(config.EnvCatalog, "")
	cat, err := catalog.LoadOrDefault(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}

// ProvideFileStore keeps the local theme next to the other settings files
func ProvideFileStore() (preferences.Store, error) {
	dir, err := config.EnsureHomeDir()
	if err != nil {
		return nil, err
	}
	return preferences.NewFileStore(dir), nil
}

func ProvideLocalSession(cat *catalog.Catalog, store preferences.Store, publisher events.Publisher) *session.Session {
	return session.New(session.Options{
		ID:        LocalSessionID,
		Catalog:   cat,
		Store:     store,
		Publisher: publisher,
		Logger:    logging.NewComponentLogger("session"),
	})
}

// ProvideSessionFactory builds server sessions whose theme lives in the bolt database
func ProvideSessionFactory(cat *catalog.Catalog, db *preferences.BoltDB, publisher events.Publisher) session.Factory {
	return func(id string) (*session.Session, error) {
		return session.New(session.Options{
			ID:        id,
			Catalog:   cat,
			Store:     db.For(id),
			Publisher: publisher,
			Logger:    logging.NewComponentLogger("session"),
		}), nil
	}
}

// ProvideSessionManager drops the stored theme once a session is gone
func ProvideSessionManager(factory session.Factory, db *preferences.BoltDB, publisher events.Publisher) *session.Manager {
	logger := logging.NewComponentLogger("session-manager")
	return session.NewManager(factory, publisher, session.WithRemoveHook(func(id string) {
		if err := db.Delete(id); err != nil {
			logger.Warn("failed to delete session preferences", "session", id, "error", err)
		}
	}))
}

func ProvideMetrics(sub events.Subscriber) *metrics.Metrics {
	m := metrics.New()
	m.Subscribe(sub)
	return m
}

func ProvideServer(manager *session.Manager, m *metrics.Metrics) (server.Server, error) {
	return server.NewServer(server.Config{
		Logger:   logging.NewComponentLogger("http"),
		Sessions: manager,
		Metrics:  m,
		Clock:    clock.SystemClock{},
	})
}
