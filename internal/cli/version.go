package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/fwkit/internal/buildinfo"
)

func versionCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(buildinfo.Fields())
			case "pretty", "":
				_, err := fmt.Fprintln(w, buildinfo.String())
				return err
			default:
				return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
			}
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}
