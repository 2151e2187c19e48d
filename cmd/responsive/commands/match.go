package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/responsive/internal/ui/style"
)

func (c *CLI) newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Evaluate the breakpoints for a viewport size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			width, _ := cmd.Flags().GetInt("width")
			height, _ := cmd.Flags().GetInt("height")
			asJSON, _ := cmd.Flags().GetBool("json")

			snap, err := c.app.Match(configPath(cmd), width, height)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(snap)
			}

			_, err = fmt.Fprintf(out, "%s %s (orientation %s, mobile %t)\n",
				style.Arrow, snap.MediaType(), snap.Orientation(), snap.IsMobile())
			return err
		},
	}
	cmd.Flags().IntP("width", "W", 0, "Viewport width")
	cmd.Flags().IntP("height", "H", 0, "Viewport height")
	cmd.Flags().Bool("json", false, "Print the snapshot as JSON")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}
