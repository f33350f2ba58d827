package gate

import "qrand/internal/domain"

// X flips q.
func X(b domain.Intrinsics, q domain.Qubit) { b.X(q) }

// H puts q through a Hadamard transform.
func H(b domain.Intrinsics, q domain.Qubit) { b.H(q) }

// CNOT flips target conditioned on control, decomposed as
// H(target), CZ(control, target), H(target). The order is part of the
// gate's meaning: target must be rotated into the X basis before the
// phase gate and back out after it.
func CNOT(b domain.Intrinsics, control, target domain.Qubit) {
	b.H(target)
	b.CZ(control, target)
	b.H(target)
}

// MResetZ measures q into slot r, resets q, and returns the measured
// bit. Measurement and readback are never separated: the returned bit
// is exactly the value now stored in r.
func MResetZ(b domain.Intrinsics, q domain.Qubit, r domain.Result) domain.Bit {
	b.MResetZ(q, r)
	return b.ReadBit(r)
}

// Record appends slot r's stored bit to the output stream with no
// label. r must have been measured at least once in the current run.
func Record(b domain.Intrinsics, r domain.Result) {
	b.RecordResult(r, "")
}
