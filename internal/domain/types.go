package domain

// Qubit names one qubit owned by the backend. Qubits are never created
// or destroyed here; the backend defines the valid index range.
type Qubit int

// Result names the classical slot holding one measured bit. Distinct
// from Qubit so the two index spaces cannot be mixed, even though this
// program always pairs slot i with qubit i.
type Result int

// Bit is a single classical measurement outcome.
type Bit uint8

const (
	Zero Bit = 0
	One  Bit = 1
)
