package app

import (
	"os"

	"qrand/internal/output"
	"qrand/internal/program"
	"qrand/internal/sim"
)

// Wire bundles the backend, sink, and programs for the CLI.
type Wire struct {
	Backend *sim.Backend
	Sink    *output.LineSink
	Sampler *program.Sampler
	GHZ     *program.GHZ
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	qubits := cfg.Qubits
	if qubits == 0 {
		qubits = program.DefaultQubits
	}
	threshold := cfg.Threshold
	if threshold == 0 {
		threshold = program.DefaultThreshold
	}

	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	sink := output.NewLineSink(out)

	backend, err := sim.New(sim.Config{
		Qubits: qubits,
		Seed:   cfg.Seed,
		Sink:   sink,
	})
	if err != nil {
		return nil, err
	}

	return &Wire{
		Backend: backend,
		Sink:    sink,
		Sampler: program.NewSamplerWith(backend, qubits, threshold, cfg.Log),
		GHZ:     program.NewGHZWith(backend, qubits, cfg.Log),
	}, nil
}
