// Package program holds the circuit programs the CLI can run.
//
//   - Sampler prepares a uniform superposition over nine qubits and
//     rejection-samples until the measured integer clears a threshold.
//   - GHZ entangles the nine qubits into a chain state and measures
//     every qubit once.
//
// Both programs are written purely in the gate vocabulary; the backend
// and the output stream behind it are injected.
package program
