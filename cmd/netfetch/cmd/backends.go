package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/netfetch/netfetch"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "Report which downloader tools are available",
	Long: `Probe each supported downloader backend, in preference order, and
report whether its tool is present on this system. The same probe drives
backend selection under the "auto" policy.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, b := range netfetch.DefaultBackends() {
			status := "absent"
			if netfetch.Probe(b) {
				status = "present"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", b.Name(), status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backendsCmd)
}
