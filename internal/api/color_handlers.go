package api

import (
	"context"
	"math"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerColorRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getColor",
		Method:      http.MethodGet,
		Path:        "/api/v1/colors/{hex}",
		Summary:     "Describe colour",
		Description: "Returns the RGB and HSL forms of a colour together with its complement",
		Tags:        []string{"Palette"},
	}, s.handleGetColor)
}

// GetColorInput contains parameters for describing a colour.
type GetColorInput struct {
	Hex string `path:"hex" doc:"Colour as RRGGBB (URL-encode a leading #)" example:"3B82F6"`
}

// RGBResponse is a colour's 8-bit channels.
type RGBResponse struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSLResponse is a colour's hue in degrees and saturation/lightness in percent.
type HSLResponse struct {
	H float64 `json:"h" doc:"Hue in degrees [0,360)"`
	S float64 `json:"s" doc:"Saturation in percent"`
	L float64 `json:"l" doc:"Lightness in percent"`
}

// ColorResponse describes one colour in API responses.
type ColorResponse struct {
	Hex           string      `json:"hex"`
	RGB           RGBResponse `json:"rgb"`
	HSL           HSLResponse `json:"hsl"`
	Complementary string      `json:"complementary"`
}

// ColorOutput wraps the colour response for Huma.
type ColorOutput struct {
	Body ColorResponse
}

func (s *Server) handleGetColor(ctx context.Context, input *GetColorInput) (*ColorOutput, error) {
	info, err := s.services.Palette.Describe(ctx, input.Hex)
	if err != nil {
		return nil, apiError(err)
	}

	return &ColorOutput{
		Body: ColorResponse{
			Hex: info.Color.Hex(),
			RGB: RGBResponse{R: info.Color.R, G: info.Color.G, B: info.Color.B},
			HSL: HSLResponse{
				H: round1(info.HSL.H),
				S: round1(info.HSL.S * 100),
				L: round1(info.HSL.L * 100),
			},
			Complementary: info.Complementary.Hex(),
		},
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
