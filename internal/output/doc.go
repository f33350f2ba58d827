// Package output implements the recorded output stream.
//
// LineSink writes the tab-separated OUTPUT line format consumers of
// the program parse; Memory captures entries for inspection.
package output
