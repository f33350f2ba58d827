// Package qtest provides a scripted backend double for tests.
//
// The double replays a fixed sequence of measurement outcomes, records
// every intrinsic call in order, and captures the recorded output
// stream, so tests can assert exact call traces and output ordering.
package qtest
