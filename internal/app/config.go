package app

import (
	"io"

	"github.com/rs/zerolog"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Qubits    int            // register width; 0 means the default 9
	Threshold int            // sampler acceptance bound; 0 means the default 500
	Seed      uint64         // backend keystream seed; 0 draws a random key
	Out       io.Writer      // output stream destination; nil means os.Stdout
	Log       zerolog.Logger // injected logger; zero value logs nothing useful
}
