// Package commands defines the qrand CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - sample  Draw a 9-bit integer of at least 500 by rejection sampling
//   - ghz     Prepare and measure a 9-qubit entangled chain
//
// Running the bare binary runs sample. Output records go to stdout as
// tab-separated OUTPUT lines; logs go to stderr.
package commands
