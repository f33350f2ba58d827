// Package gate provides the composite gate vocabulary circuit programs
// are written in, hiding the raw intrinsic calling convention.
//
// The backend's native two-operand primitive set is Hadamard plus
// controlled phase, so CNOT exists only as the H·CZ·H decomposition.
package gate
