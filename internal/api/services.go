package api

import (
	"github.com/iroha-labs/palette-server/internal/service"
)

// Services groups all business logic services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Palette *service.PaletteService
	Sake    *service.SakeService
	User    *service.UserService
}
