package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/iroha-labs/palette-server/internal/color"
	"github.com/iroha-labs/palette-server/internal/service"
)

type generateOptions struct {
	kinds []string
	angle int
}

// generateJSON matches the data payload of GET /api/v1/palette/generate.
type generateJSON struct {
	BaseColor string   `json:"base_color"`
	Kinds     []string `json:"kinds"`
	Angle     int      `json:"angle"`
	Palette   []string `json:"palette"`
}

func newGenerateCmd(a *app) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate <hex>",
		Short: "Generate a palette from a base colour",
		Long: `Generate a palette from a base colour.

The base colour is always first, followed by the complementary colour, the
analogous pair (+angle, -angle) and the triadic pair (+120, -120). Use --kinds
to restrict the relations; output order never depends on the flag order.`,
		Example: `  palette generate '#3B82F6'
  palette generate 3b82f6 --kinds complementary,triadic
  palette generate 3b82f6 --kinds analogous --angle 15 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := service.GenerateInput{
				BaseColor: args[0],
				Kinds:     opts.kinds,
			}
			if cmd.Flags().Changed("angle") {
				in.Angle = &opts.angle
			}

			result, err := a.palette.Generate(cmd.Context(), in)
			if err != nil {
				return err
			}

			if a.opts.json {
				return writeGenerateJSON(cmd.OutOrStdout(), result)
			}
			renderPalette(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&opts.kinds, "kinds", "k", nil,
		"Relations to include: complementary, analogous, triadic (default all)")
	cmd.Flags().IntVarP(&opts.angle, "angle", "a", color.DefaultAngle,
		"Analogous hue offset in degrees")

	return cmd
}

func writeGenerateJSON(w io.Writer, result *service.PaletteResult) error {
	kinds := make([]string, len(result.Kinds))
	for i, k := range result.Kinds {
		kinds[i] = k.String()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(generateJSON{
		BaseColor: result.Base.Hex(),
		Kinds:     kinds,
		Angle:     result.Angle,
		Palette:   result.Palette.Hex(),
	})
}

// paletteLabels names each palette entry in output order.
func paletteLabels(kinds []color.Kind, angle int) []string {
	labels := []string{"base"}
	for _, k := range color.AllKinds {
		if !slices.Contains(kinds, k) {
			continue
		}
		switch k {
		case color.KindComplementary:
			labels = append(labels, "complementary")
		case color.KindAnalogous:
			labels = append(labels,
				fmt.Sprintf("analogous %+d°", angle),
				fmt.Sprintf("analogous %+d°", -angle))
		case color.KindTriadic:
			labels = append(labels, "triadic +120°", "triadic -120°")
		}
	}
	return labels
}
