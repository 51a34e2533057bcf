// Package di provides dependency injection configuration for the Neuron Spark server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/neuronspark/spark-server/internal/config"
	"github.com/neuronspark/spark-server/internal/di/providers"
	"github.com/neuronspark/spark-server/internal/logger"
	"github.com/neuronspark/spark-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Business services
	do.Provide(injector, providers.ProvideProfileService)
	do.Provide(injector, providers.ProvideProgramService)
	do.Provide(injector, providers.ProvideRoomService)
	do.Provide(injector, providers.ProvideMessageService)

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

	_ = do.MustInvoke[*service.ProfileService](injector)
	_ = do.MustInvoke[*service.ProgramService](injector)
	_ = do.MustInvoke[*service.RoomService](injector)
	_ = do.MustInvoke[*service.MessageService](injector)

	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
