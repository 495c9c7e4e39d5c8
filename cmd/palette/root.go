package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/iroha-labs/palette-server/internal/logger"
	"github.com/iroha-labs/palette-server/internal/service"
)

type rootOptions struct {
	verbose bool
	json    bool
}

// app carries state shared by subcommands.
type app struct {
	opts    rootOptions
	logger  *slog.Logger
	palette *service.PaletteService
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Colour palettes from a base colour",
		Long: `palette derives complementary, analogous and triadic colours from a
base colour and renders them as terminal swatches.

Colours are given as #RRGGBB or RRGGBB, case-insensitive.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelWarn
			if a.opts.verbose {
				level = slog.LevelDebug
			}
			a.logger = logger.New(logger.Config{
				Writer: cmd.ErrOrStderr(),
				Level:  level,
			}).Logger
			a.palette = service.NewPaletteService(a.logger, nil)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&a.opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&a.opts.json, "json", false, "Output JSON instead of swatches")

	cmd.AddCommand(newGenerateCmd(a))
	cmd.AddCommand(newInfoCmd(a))

	return cmd
}
