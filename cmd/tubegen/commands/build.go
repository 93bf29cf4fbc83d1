package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/tubegen/internal/logger"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the tube mesh and write it to the output file",
	Long: `Generate the tube mesh and write it to the output file.

The format is taken from --format, or from the output extension
(.obj for Wavefront OBJ, .mpk for a msgpack buffer snapshot).
Use -o - to write to stdout.

Example:
  tubegen build -c tunnel.yaml -o tunnel.obj --inside
  tubegen build --segments 16 --subdivisions 6 -o - > tube.obj`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := newRenderer(cfg)
		if err := writeMesh(cfg, r, cmd.OutOrStdout()); err != nil {
			return err
		}

		m := r.Mesh()
		logger.Info("mesh written",
			zap.String("path", cfg.Output.Path),
			zap.Int("vertices", m.VertexCount()),
			zap.Int("triangles", m.TriangleCount()),
		)
		return nil
	},
}
