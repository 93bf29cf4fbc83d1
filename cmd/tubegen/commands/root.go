// Package commands implements the tubegen subcommands.
package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/tubegen/internal/config"
	"github.com/Faultbox/tubegen/internal/logger"
)

var (
	flags *config.Flags
	cfg   *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tubegen",
	Short: "Generate tube meshes from polylines",
	Long: `tubegen sweeps a ring of vertices along a subdivided polyline and writes
the resulting tube mesh as Wavefront OBJ or a msgpack buffer snapshot.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		logger.Sync()
	},
}

func init() {
	flags = config.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(markersCmd)
	rootCmd.AddCommand(watchCmd)
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// setup loads the configuration and initializes logging for every subcommand.
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(flags)
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return err
	}

	logger.Debug("config loaded",
		zap.String("command", cmd.Name()),
		zap.String("path", config.Path(flags)),
		zap.Int("controls", len(cfg.Polyline)),
	)
	return cfg.Validate()
}
