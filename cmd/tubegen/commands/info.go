package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/tubegen/internal/cli"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print a summary of the generated mesh",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := newRenderer(cfg)
		s := cli.Summarize(objectName(cfg.Output.Path), r)
		_, err := fmt.Fprint(cmd.OutOrStdout(), cli.RenderSummary(cli.NewStyles(cli.DefaultTheme), s))
		return err
	},
}
