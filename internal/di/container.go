// Package di provides dependency injection configuration for the palette server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/iroha-labs/palette-server/internal/api"
	"github.com/iroha-labs/palette-server/internal/config"
	"github.com/iroha-labs/palette-server/internal/di/providers"
	"github.com/iroha-labs/palette-server/internal/logger"
	"github.com/iroha-labs/palette-server/internal/service"
	"github.com/iroha-labs/palette-server/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
// args are the command-line flags passed to config.LoadConfig.
func NewContainer(args []string) *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ConfigProvider(args))
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideValidator)

	// Sake catalog
	do.Provide(injector, providers.ProvideSakeCatalog)
	do.Provide(injector, providers.ProvideCatalogWatcher)

	// Business services
	do.Provide(injector, providers.ProvidePaletteService)
	do.Provide(injector, providers.ProvideSakeService)
	do.Provide(injector, providers.ProvideUserService)

	// Server
	do.Provide(injector, providers.ProvideRateLimiter)
	do.Provide(injector, providers.ProvideAPIServer)
	do.Provide(injector, providers.ProvideHTTPServer)

	// Discovery
	do.Provide(injector, providers.ProvideInstanceID)
	do.Provide(injector, providers.ProvideMDNSService)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	if err := Prepare(injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.HTTPServerHandle](injector); err != nil {
		return err
	}
	_, err := do.Invoke[*providers.MDNSServiceHandle](injector)
	return err
}

// Prepare initializes everything except the listening HTTP server.
func Prepare(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*validation.Validator](injector)
	_ = do.MustInvoke[providers.InstanceID](injector)

	if _, err := do.Invoke[*providers.CatalogHandle](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.CatalogWatcherHandle](injector); err != nil {
		return err
	}

	// Business services
	_ = do.MustInvoke[*service.PaletteService](injector)
	_ = do.MustInvoke[*service.SakeService](injector)
	_ = do.MustInvoke[*service.UserService](injector)

	_ = do.MustInvoke[*providers.RateLimiterHandle](injector)
	_ = do.MustInvoke[*api.Server](injector)

	return nil
}
