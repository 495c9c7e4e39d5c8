package providers

import (
	"github.com/samber/do/v2"

	"github.com/iroha-labs/palette-server/internal/config"
	"github.com/iroha-labs/palette-server/internal/logger"
	"github.com/iroha-labs/palette-server/internal/service"
	"github.com/iroha-labs/palette-server/internal/validation"
)

// ProvidePaletteService provides the palette service.
func ProvidePaletteService(i do.Injector) (*service.PaletteService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewPaletteService(log.Logger, cfg), nil
}

// ProvideSakeService provides the sake service.
func ProvideSakeService(i do.Injector) (*service.SakeService, error) {
	catalogHandle := do.MustInvoke[*CatalogHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewSakeService(catalogHandle.Catalog, log.Logger), nil
}

// ProvideUserService provides the user service.
func ProvideUserService(i do.Injector) (*service.UserService, error) {
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewUserService(v, log.Logger), nil
}
