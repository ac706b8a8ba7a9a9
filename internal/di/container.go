// Package di provides dependency injection configuration for the kanban server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/npaulus/kanban-server/internal/config"
	"github.com/npaulus/kanban-server/internal/di/providers"
	"github.com/npaulus/kanban-server/internal/kanban"
	"github.com/npaulus/kanban-server/internal/logger"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideSlogLogger)

	// Persistence layer
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideWriter)

	// Board state
	do.Provide(injector, providers.ProvideEngine)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.WriterHandle](injector)
	_ = do.MustInvoke[*kanban.Container](injector)
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
