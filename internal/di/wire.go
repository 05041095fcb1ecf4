//go:build wireinject

package di

import (
	"github.com/google/wire"
	"github.com/kcaldas/termfolio/pkg/preferences"
	"github.com/kcaldas/termfolio/pkg/server"
	"github.com/kcaldas/termfolio/pkg/session"
)

// Wire set for the catalog and its configuration
var CatalogWireSet = wire.NewSet(
	ProvideConfigManager,
	ProvideCatalog,
)

// InitializeLocalSession builds the session used by the TUI and the CLI
func InitializeLocalSession() (*session.Session, error) {
	wire.Build(CatalogWireSet, ProvideFileStore, ProvidePublisher, ProvideLocalSession)
	return nil, nil
}

// InitializeSessionManager builds the multi-session manager for the HTTP server
func InitializeSessionManager(db *preferences.BoltDB) (*session.Manager, error) {
	wire.Build(CatalogWireSet, ProvidePublisher, ProvideSessionFactory, ProvideSessionManager)
	return nil, nil
}

// InitializeServer builds the HTTP API around an existing session manager
func InitializeServer(manager *session.Manager) (server.Server, error) {
	wire.Build(ProvideSubscriber, ProvideMetrics, ProvideServer)
	return nil, nil
}
