package providers

import (
	"github.com/samber/do/v2"

	"github.com/iroha-labs/palette-server/internal/config"
	"github.com/iroha-labs/palette-server/internal/logger"
	"github.com/iroha-labs/palette-server/internal/sake"
)

// CatalogHandle wraps the sake catalog with shutdown capability.
type CatalogHandle struct {
	*sake.Catalog
}

// Shutdown implements do.Shutdownable.
func (h *CatalogHandle) Shutdown() error {
	return h.Close()
}

// ProvideSakeCatalog loads the sake catalog and builds its search index.
func ProvideSakeCatalog(i do.Injector) (*CatalogHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	catalog, err := sake.Open(cfg.Sake.CatalogPath, log.Logger)
	if err != nil {
		return nil, err
	}

	indexed, _ := catalog.IndexedCount()
	log.Info("Sake catalog loaded",
		"source", catalogSource(cfg),
		"sakes", catalog.Len(),
		"indexed", indexed,
	)

	return &CatalogHandle{Catalog: catalog}, nil
}

// CatalogWatcherHandle wraps the catalog file watcher. Watcher is nil when
// watching is disabled.
type CatalogWatcherHandle struct {
	*sake.Watcher
}

// Shutdown implements do.Shutdownable.
func (h *CatalogWatcherHandle) Shutdown() error {
	if h.Watcher == nil {
		return nil
	}
	return h.Stop()
}

// ProvideCatalogWatcher starts reloading the catalog file on change when
// enabled in config.
func ProvideCatalogWatcher(i do.Injector) (*CatalogWatcherHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	catalogHandle := do.MustInvoke[*CatalogHandle](i)

	if !cfg.Sake.WatchCatalog {
		log.Debug("Sake catalog watching disabled")
		return &CatalogWatcherHandle{}, nil
	}

	w, err := sake.NewWatcher(catalogHandle.Catalog, cfg.Sake.CatalogPath, sake.DefaultDebounce, log.Logger)
	if err != nil {
		return nil, err
	}
	w.Start()

	log.Info("Sake catalog watcher started", "path", cfg.Sake.CatalogPath)

	return &CatalogWatcherHandle{Watcher: w}, nil
}
