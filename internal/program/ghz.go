package program

import (
	"github.com/rs/zerolog"

	"qrand/internal/domain"
	"qrand/internal/gate"
)

// GHZ prepares a chain-entangled state over the register and measures
// every qubit once.
type GHZ struct {
	back   domain.Intrinsics
	qubits int
	log    zerolog.Logger
}

// NewGHZ returns the chain program over back with the default width.
func NewGHZ(back domain.Intrinsics, log zerolog.Logger) *GHZ {
	return &GHZ{back: back, qubits: DefaultQubits, log: log}
}

// NewGHZWith returns the chain program with an explicit width.
func NewGHZWith(back domain.Intrinsics, qubits int, log zerolog.Logger) *GHZ {
	return &GHZ{back: back, qubits: qubits, log: log}
}

// Run executes the program once.
//
// Qubit 0 gets a Hadamard, then each CNOT(i, i+1) extends the
// entanglement one link down the chain in increasing order; each link
// depends on the one before it. Measurement then walks the register
// from the highest index down to 0, recording each slot immediately
// after measuring it.
func (g *GHZ) Run() {
	gate.H(g.back, 0)
	for i := 0; i < g.qubits-1; i++ {
		gate.CNOT(g.back, domain.Qubit(i), domain.Qubit(i+1))
	}

	g.back.RecordArray(g.qubits, "")
	for i := g.qubits - 1; i >= 0; i-- {
		gate.MResetZ(g.back, domain.Qubit(i), domain.Result(i))
		gate.Record(g.back, domain.Result(i))
	}
	g.log.Info().Int("qubits", g.qubits).Msg("chain program complete")
}
