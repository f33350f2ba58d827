package program

import (
	"github.com/rs/zerolog"

	"qrand/internal/domain"
	"qrand/internal/gate"
)

const (
	// DefaultQubits is the register width of the shipped programs.
	DefaultQubits = 9

	// DefaultThreshold is the smallest sample the sampler accepts.
	DefaultThreshold = 500
)

// Sampler draws a uniform qubits-wide integer and retries until it is
// at least threshold, then records the accepted sample most-significant
// slot first.
type Sampler struct {
	back      domain.Intrinsics
	qubits    int
	threshold int
	log       zerolog.Logger
}

// NewSampler returns a sampler over back with the default width and
// threshold.
func NewSampler(back domain.Intrinsics, log zerolog.Logger) *Sampler {
	return &Sampler{
		back:      back,
		qubits:    DefaultQubits,
		threshold: DefaultThreshold,
		log:       log,
	}
}

// NewSamplerWith returns a sampler with an explicit width and
// threshold. Only construction varies; run semantics are identical.
func NewSamplerWith(back domain.Intrinsics, qubits, threshold int, log zerolog.Logger) *Sampler {
	return &Sampler{back: back, qubits: qubits, threshold: threshold, log: log}
}

// Run executes the program and returns the accepted sample.
//
// Each attempt applies a Hadamard to every qubit in increasing index
// order, then measures qubit i into slot i for i ascending, placing
// each bit at position i of the sample. Attempts below the threshold
// are discarded whole; nothing is recorded for them. The loop carries
// no iteration cap: termination is probabilistic and a cap would
// change the program's observable semantics.
//
// Once an attempt is accepted, Run records an array header and then
// every slot from highest index down to 0, so consumers read the
// stream most-significant bit first.
func (s *Sampler) Run() int {
	attempts := 0
	value := 0
	for {
		for i := 0; i < s.qubits; i++ {
			gate.H(s.back, domain.Qubit(i))
		}
		value = 0
		for i := 0; i < s.qubits; i++ {
			bit := gate.MResetZ(s.back, domain.Qubit(i), domain.Result(i))
			value |= int(bit) << i
		}
		attempts++
		if value >= s.threshold {
			break
		}
		s.log.Debug().Int("value", value).Int("attempt", attempts).Msg("sample rejected")
	}
	s.log.Info().Int("value", value).Int("attempts", attempts).Msg("sample accepted")

	s.back.RecordArray(s.qubits, "")
	for i := s.qubits - 1; i >= 0; i-- {
		gate.Record(s.back, domain.Result(i))
	}
	return value
}
