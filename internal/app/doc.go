// Package app wires the backend, output sink, and circuit programs
// from Config, exposing them via the Wire struct for commands to use.
package app
