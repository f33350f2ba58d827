package commands

import (
	"github.com/spf13/cobra"
)

// sample: run the rejection sampler and emit the accepted bits.
func sampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Draw a 9-bit integer of at least 500 by rejection sampling",
		RunE:  runSample,
	}
}

func runSample(cmd *cobra.Command, args []string) error {
	appCtx.Sampler.Run()
	if err := appCtx.Sink.Flush(); err != nil {
		return err
	}
	logger.Debug().
		Uint64("gates", appCtx.Backend.Gates()).
		Uint64("measurements", appCtx.Backend.Measurements()).
		Msg("backend totals")
	return nil
}
