package providers

import (
	"strconv"

	"github.com/samber/do/v2"

	"github.com/iroha-labs/palette-server/internal/api"
	"github.com/iroha-labs/palette-server/internal/config"
	"github.com/iroha-labs/palette-server/internal/id"
	"github.com/iroha-labs/palette-server/internal/logger"
	"github.com/iroha-labs/palette-server/internal/mdns"
)

// InstanceID identifies this server process on the local network.
// It is regenerated on every start.
type InstanceID string

// ProvideInstanceID generates the server instance ID.
func ProvideInstanceID(i do.Injector) (InstanceID, error) {
	log := do.MustInvoke[*logger.Logger](i)

	instanceID, err := id.Generate("srv")
	if err != nil {
		return "", err
	}
	log.Info("Server instance", "instance_id", instanceID)

	return InstanceID(instanceID), nil
}

// MDNSServiceHandle wraps mdns.Service with Shutdownable.
type MDNSServiceHandle struct {
	*mdns.Service
	started bool
}

// Started reports whether the advertisement is live.
func (h *MDNSServiceHandle) Started() bool {
	return h.started
}

// Shutdown implements do.Shutdownable.
func (h *MDNSServiceHandle) Shutdown() error {
	if h.started && h.Service != nil {
		h.Stop()
	}
	return nil
}

// ProvideMDNSService advertises the HTTP server via mDNS when enabled.
func ProvideMDNSService(i do.Injector) (*MDNSServiceHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	instanceID := do.MustInvoke[InstanceID](i)

	if !cfg.Server.AdvertiseMDNS {
		log.Info("mDNS advertisement disabled by configuration")
		return &MDNSServiceHandle{}, nil
	}

	port, err := strconv.Atoi(cfg.Server.Port)
	if err != nil {
		log.Warn("Server port is not numeric, skipping mDNS", "port", cfg.Server.Port)
		return &MDNSServiceHandle{}, nil
	}

	svc := mdns.NewService(log.Logger)
	ad := mdns.Advertisement{
		ID:      string(instanceID),
		Name:    cfg.Server.Name,
		Version: api.Version,
		Port:    port,
	}
	if err := svc.Start(ad); err != nil {
		// Non-fatal: the server works without discovery.
		log.Warn("mDNS advertisement unavailable", "error", err)
		return &MDNSServiceHandle{Service: svc}, nil
	}

	return &MDNSServiceHandle{Service: svc, started: true}, nil
}
