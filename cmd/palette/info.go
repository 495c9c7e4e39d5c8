package main

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/spf13/cobra"
)

type infoJSON struct {
	Hex           string     `json:"hex"`
	RGB           [3]uint8   `json:"rgb"`
	HSL           [3]float64 `json:"hsl"`
	Complementary string     `json:"complementary"`
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "info <hex>",
		Short:   "Describe a colour",
		Long:    "Show a colour's RGB channels, HSL form (degrees and percent) and complement.",
		Example: "  palette info '#3B82F6'",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := a.palette.Describe(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			h := round1(info.HSL.H)
			s := round1(info.HSL.S * 100)
			l := round1(info.HSL.L * 100)

			out := cmd.OutOrStdout()
			if a.opts.json {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(infoJSON{
					Hex:           info.Color.Hex(),
					RGB:           [3]uint8{info.Color.R, info.Color.G, info.Color.B},
					HSL:           [3]float64{h, s, l},
					Complementary: info.Complementary.Hex(),
				})
			}

			fmt.Fprintln(out, swatchLine(info.Color, "colour"))
			fmt.Fprintf(out, "  rgb  %d, %d, %d\n", info.Color.R, info.Color.G, info.Color.B)
			fmt.Fprintf(out, "  hsl  %.1f°, %.1f%%, %.1f%%\n", h, s, l)
			fmt.Fprintln(out, swatchLine(info.Complementary, "complementary"))
			return nil
		},
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
