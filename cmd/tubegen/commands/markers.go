package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/tubegen/internal/export"
	"github.com/Faultbox/tubegen/internal/logger"
	"github.com/Faultbox/tubegen/pkg/tube"
)

var markersCmd = &cobra.Command{
	Use:   "markers",
	Short: "Write the control point debug markers as OBJ lines",
	Long: `Write one wire sphere per control point as OBJ line elements.

Marker radii follow the tube width, indexed against the raw control
points. Markers are always written, regardless of nodes.show.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := newRenderer(cfg)
		r.SetShowNodes(true)

		lines := markerLines(cfg, r)
		w, closeFn, err := openOutput(cfg.Output.Path, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if err := export.WriteOBJ(w, &tube.Mesh{}, export.OBJOptions{Name: "markers", Lines: lines}); err != nil {
			closeFn()
			return err
		}

		logger.Info("markers written",
			zap.String("path", cfg.Output.Path),
			zap.Int("markers", len(r.DebugMarkers())),
		)
		return closeFn()
	},
}
