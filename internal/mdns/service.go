// Package mdns advertises the palette server on the local network.
package mdns

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/hashicorp/mdns"
)

const (
	// ServiceType is the mDNS service type for palette servers.
	ServiceType = "_palette._tcp"

	// APIVersion is the API version advertised in TXT records.
	APIVersion = "v1"
)

// Advertisement is what the server announces about itself.
type Advertisement struct {
	ID      string
	Name    string
	Version string
	Port    int
}

// TXTRecords returns the key=value records announced alongside the service.
func (a Advertisement) TXTRecords() []string {
	return []string{
		fmt.Sprintf("id=%s", a.ID),
		fmt.Sprintf("name=%s", a.Name),
		fmt.Sprintf("version=%s", a.Version),
		fmt.Sprintf("api=%s", APIVersion),
	}
}

// Service manages mDNS advertisement for the server.
type Service struct {
	server *mdns.Server
	logger *slog.Logger
	mu     sync.Mutex
}

// NewService creates a new mDNS service.
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		logger: logger,
	}
}

// Start begins advertising ad. Call it once the HTTP server is listening.
// Errors are usually non-fatal: multicast is often missing in containers.
func (s *Service) Start(ad Advertisement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		_ = s.server.Shutdown()
		s.server = nil
	}

	host, err := os.Hostname()
	if err != nil {
		host = "palette-server"
	}

	service, err := mdns.NewMDNSService(host, ServiceType, "", "", ad.Port, nil, ad.TXTRecords())
	if err != nil {
		return fmt.Errorf("create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return fmt.Errorf("start mDNS server: %w", err)
	}
	s.server = server

	s.logger.Info("mDNS advertisement started",
		"service", ServiceType,
		"port", ad.Port,
		"name", ad.Name,
		"id", ad.ID,
	)

	return nil
}

// Running reports whether an advertisement is active.
func (s *Service) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.server != nil
}

// Stop stops advertising. Safe to call multiple times or if not started.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		_ = s.server.Shutdown()
		s.server = nil
		s.logger.Info("mDNS advertisement stopped")
	}
}
