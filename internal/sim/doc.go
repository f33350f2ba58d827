// Package sim is the reference backend.
//
// It implements the intrinsic contract as a classical oracle: gates
// are accepted and counted, measurement draws one pseudo-random bit
// per call, and slots hold the drawn bits. It does not simulate
// quantum state numerically; the outcome distribution is outside the
// contract the programs rely on.
package sim
