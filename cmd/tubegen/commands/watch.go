package commands

import (
	"context"
	"errors"
	"io"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/tubegen/internal/config"
	"github.com/Faultbox/tubegen/internal/logger"
	"github.com/Faultbox/tubegen/pkg/tube"
)

var errNoConfigFile = errors.New("watch needs a config file (--config or ./tubegen.yaml)")

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild whenever the config file changes the tube shape",
	Long: `Watch the config file and rewrite the output whenever a change
affects the tube shape.

Only control points, segments, subdivisions and widths are compared.
Edits that only touch uv_scale or inside are picked up by the next
shape change or the next build.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.Path(flags)
		if path == "" {
			return errNoConfigFile
		}

		r := newRenderer(cfg)
		if err := writeMesh(cfg, r, cmd.OutOrStdout()); err != nil {
			return err
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()

		// Watch the directory: editors often replace the file instead of writing it.
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			return err
		}
		logger.Info("watching config", zap.String("path", path))

		return watchLoop(cmd.Context(), watcher, path, r, cmd.OutOrStdout())
	},
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, r *tube.Renderer, stdout io.Writer) error {
	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			if _, err := reload(r, stdout); err != nil {
				logger.Warn("reload failed", zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
		}
	}
}

// reload re-reads the configuration, pushes it into the renderer and writes
// the mesh if the shape changed. It reports whether a rebuild happened.
func reload(r *tube.Renderer, stdout io.Writer) (bool, error) {
	next, err := config.Load(flags)
	if err != nil {
		return false, err
	}
	if err := next.Validate(); err != nil {
		return false, err
	}
	cfg = next

	r.SetPositions(cfg.Positions())
	r.SetParams(cfg.Tube)
	r.SetShowNodes(cfg.Nodes.Show)

	if !r.Tick() {
		logger.Debug("config changed without shape change")
		return false, nil
	}
	if err := writeMesh(cfg, r, stdout); err != nil {
		return true, err
	}
	logger.Info("mesh rebuilt",
		zap.String("path", cfg.Output.Path),
		zap.Int("vertices", r.Mesh().VertexCount()),
	)
	return true, nil
}
