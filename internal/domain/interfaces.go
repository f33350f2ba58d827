package domain

// Intrinsics is the fixed operation set a quantum backend exposes. The
// program only ever calls these seven operations; it never implements
// gate semantics itself.
//
// Every call is synchronous and succeeds for valid operands. An invalid
// qubit or slot index is a fatal condition owned by the backend; no
// operation here reports a recoverable error.
type Intrinsics interface {
	// X applies an unconditional bit-flip gate to q.
	X(q Qubit)

	// H applies a Hadamard transform to q.
	H(q Qubit)

	// CZ applies a controlled phase gate to target, conditioned on
	// control.
	CZ(control, target Qubit)

	// MResetZ measures q in the computational basis, stores the
	// outcome in r, and resets q to |0>.
	MResetZ(q Qubit, r Result)

	// ReadBit returns the bit most recently stored in r. No side
	// effect.
	ReadBit(r Result) Bit

	// RecordArray appends an array header to the output stream,
	// announcing a group of size scalar outputs.
	RecordArray(size int, label string)

	// RecordResult appends the bit stored in r to the output stream.
	RecordResult(r Result, label string)
}

// Sink receives the recorded output stream. Entries are append-only and
// immutable; the order of calls is the only ordering consumers may rely
// on.
type Sink interface {
	Array(size int, label string)
	Result(b Bit, label string)
}
