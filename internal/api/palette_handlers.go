package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/iroha-labs/palette-server/internal/errors"
	"github.com/iroha-labs/palette-server/internal/service"
)

func (s *Server) registerPaletteRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "generatePalette",
		Method:      http.MethodGet,
		Path:        "/api/v1/palette/generate",
		Summary:     "Generate palette",
		Description: "Derives complementary, analogous and triadic colours from a base colour. The base colour is always first.",
		Tags:        []string{"Palette"},
	}, s.handleGeneratePalette)
}

// GeneratePaletteInput contains parameters for generating a palette.
type GeneratePaletteInput struct {
	BaseColor string `query:"baseColor" required:"true" doc:"Base colour as #RRGGBB or RRGGBB" example:"#3B82F6"`
	Kinds     string `query:"kinds" doc:"Comma-separated relations: complementary, analogous, triadic. Empty means all." example:"complementary,triadic"`
	Angle     string `query:"angle" pattern:"^-?[0-9]+$" doc:"Analogous hue offset in degrees. Defaults to the server setting." example:"30"`
}

// PaletteResponse contains a generated palette in API responses.
type PaletteResponse struct {
	BaseColor string   `json:"base_color" doc:"Normalised base colour"`
	Kinds     []string `json:"kinds" doc:"Relations included, in output order"`
	Angle     int      `json:"angle" doc:"Analogous angle used"`
	Palette   []string `json:"palette" doc:"Base colour followed by each derived colour"`
}

// PaletteOutput wraps the palette response for Huma.
type PaletteOutput struct {
	Body PaletteResponse
}

func (s *Server) handleGeneratePalette(ctx context.Context, input *GeneratePaletteInput) (*PaletteOutput, error) {
	in := service.GenerateInput{
		BaseColor: input.BaseColor,
		Kinds:     splitKinds(input.Kinds),
	}

	if input.Angle != "" {
		angle, err := strconv.Atoi(input.Angle)
		if err != nil {
			return nil, apiError(domainerrors.ValidationWithDetails("invalid angle",
				map[string]string{"angle": "must be an integer"}))
		}
		in.Angle = &angle
	}

	result, err := s.services.Palette.Generate(ctx, in)
	if err != nil {
		return nil, apiError(err)
	}

	kinds := make([]string, len(result.Kinds))
	for i, k := range result.Kinds {
		kinds[i] = k.String()
	}

	return &PaletteOutput{
		Body: PaletteResponse{
			BaseColor: result.Base.Hex(),
			Kinds:     kinds,
			Angle:     result.Angle,
			Palette:   result.Palette.Hex(),
		},
	}, nil
}

// splitKinds splits a comma-separated list, dropping empty entries.
func splitKinds(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var kinds []string
	for part := range strings.SplitSeq(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			kinds = append(kinds, part)
		}
	}
	return kinds
}
