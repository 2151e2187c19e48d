package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/responsive/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the terminal size live",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plain, _ := cmd.Flags().GetBool("plain")
			debug, _ := cmd.Flags().GetBool("debug")
			traceFile, _ := cmd.Flags().GetString("trace")

			return c.app.Watch(cmd.Context(), configPath(cmd), app.WatchOptions{
				Plain:     plain,
				Debug:     debug,
				TraceFile: traceFile,
			})
		},
	}
	cmd.Flags().BoolP("plain", "p", false, "Print one line per change instead of the interactive view")
	cmd.Flags().BoolP("debug", "d", false, "Log every snapshot (implies --plain)")
	cmd.Flags().StringP("trace", "t", "", "Record snapshots on a progrock trace in this file")
	return cmd
}
