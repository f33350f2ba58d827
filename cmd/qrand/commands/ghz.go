package commands

import (
	"github.com/spf13/cobra"
)

// ghz: run the alternate chain-entanglement program.
func ghzCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ghz",
		Short: "Prepare and measure a 9-qubit entangled chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx.GHZ.Run()
			return appCtx.Sink.Flush()
		},
	}
}
