package service

import (
	"context"
	"log/slog"
	"slices"

	"github.com/iroha-labs/palette-server/internal/color"
	"github.com/iroha-labs/palette-server/internal/config"
	"github.com/iroha-labs/palette-server/internal/metrics"
)

// PaletteService handles palette generation and colour lookups.
type PaletteService struct {
	logger       *slog.Logger
	defaultAngle int
}

// NewPaletteService creates a new palette service.
func NewPaletteService(logger *slog.Logger, cfg *config.Config) *PaletteService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	angle := color.DefaultAngle
	if cfg != nil {
		angle = cfg.Palette.DefaultAngle
	}
	return &PaletteService{
		logger:       logger,
		defaultAngle: angle,
	}
}

// GenerateInput is the raw, unparsed form of a palette request.
type GenerateInput struct {
	BaseColor string
	Kinds     []string
	// Angle overrides the configured default when set.
	Angle *int
}

// PaletteResult is a generated palette together with the resolved request.
type PaletteResult struct {
	Base    color.Color
	Kinds   []color.Kind
	Angle   int
	Palette color.Palette
}

// Generate parses in and derives the palette.
func (s *PaletteService) Generate(ctx context.Context, in GenerateInput) (*PaletteResult, error) {
	base, err := s.parse(in.BaseColor)
	if err != nil {
		return nil, err
	}

	kinds, err := color.ParseKinds(in.Kinds)
	if err != nil {
		return nil, err
	}

	angle := s.defaultAngle
	if in.Angle != nil {
		angle = *in.Angle
	}

	palette := color.GeneratePalette(color.PaletteRequest{
		Base:  base,
		Kinds: kinds,
		Angle: angle,
	})

	resolved := make([]color.Kind, 0, len(color.AllKinds))
	for _, k := range color.AllKinds {
		if len(kinds) == 0 || slices.Contains(kinds, k) {
			resolved = append(resolved, k)
		}
	}
	for _, k := range resolved {
		metrics.PalettesGenerated.WithLabelValues(k.String()).Inc()
	}

	s.logger.DebugContext(ctx, "palette generated",
		"base", base.Hex(),
		"kinds", len(resolved),
		"angle", angle,
		"colors", len(palette),
	)

	return &PaletteResult{
		Base:    base,
		Kinds:   resolved,
		Angle:   angle,
		Palette: palette,
	}, nil
}

// ColorInfo describes a single colour.
type ColorInfo struct {
	Color         color.Color
	HSL           color.HSL
	Complementary color.Color
}

// Describe parses hex and returns its HSL form and complement.
func (s *PaletteService) Describe(_ context.Context, hex string) (*ColorInfo, error) {
	c, err := s.parse(hex)
	if err != nil {
		return nil, err
	}
	return &ColorInfo{
		Color:         c,
		HSL:           c.HSL(),
		Complementary: color.Complementary(c),
	}, nil
}

func (s *PaletteService) parse(hex string) (color.Color, error) {
	c, err := color.ParseHex(hex)
	if err != nil {
		metrics.InvalidColors.Inc()
		return color.Color{}, err
	}
	return c, nil
}
