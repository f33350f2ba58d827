package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"qrand/internal/app"
)

var (
	seed    uint64
	verbose bool
	appCtx  *app.Wire
	logger  zerolog.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:   "qrand",
		Short: "Quantum rejection-sampling demo driver",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()

			wire, err := app.NewWire(app.Config{
				Seed: seed,
				Out:  os.Stdout,
				Log:  logger,
			})
			if err != nil {
				return err
			}
			appCtx = wire
			return nil
		},
		// Bare invocation runs the sampling program.
		RunE: runSample,
	}

	root.PersistentFlags().Uint64Var(&seed, "seed", 0, "measurement seed for reproducible runs (0 = random)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log rejected attempts")

	root.AddCommand(sampleCmd(), ghzCmd())
	return root.Execute()
}
