// Package providers contains dependency injection providers for the palette server.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/iroha-labs/palette-server/internal/config"
	"github.com/iroha-labs/palette-server/internal/logger"
	"github.com/iroha-labs/palette-server/internal/validation"
)

// ConfigProvider returns a provider that loads configuration from args.
func ConfigProvider(args []string) do.Provider[*config.Config] {
	return func(do.Injector) (*config.Config, error) {
		return config.LoadConfig(args)
	}
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.App.Environment == "development",
		Environment: cfg.App.Environment,
	})

	log.Info("Starting palette server",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"default_angle", cfg.Palette.DefaultAngle,
		"sake_catalog", catalogSource(cfg),
	)

	return log, nil
}

// ProvideValidator provides the shared struct validator.
func ProvideValidator(do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

func catalogSource(cfg *config.Config) string {
	if cfg.Sake.CatalogPath == "" {
		return "embedded"
	}
	return cfg.Sake.CatalogPath
}
