package output

import (
	"bufio"
	"fmt"
	"io"

	"qrand/internal/domain"
)

// LineSink writes output records as text lines:
//
//	OUTPUT\tARRAY\t<size>[\t<label>]
//	OUTPUT\tRESULT\t<0|1>[\t<label>]
//
// The label column is omitted for the null label. Record operations
// never fail at the stream contract level; writer errors are held and
// surfaced by Flush.
type LineSink struct {
	w   *bufio.Writer
	err error
}

// NewLineSink returns a sink writing to w.
func NewLineSink(w io.Writer) *LineSink {
	return &LineSink{w: bufio.NewWriter(w)}
}

var _ domain.Sink = (*LineSink)(nil)

// Array appends an array header for a group of size results.
func (s *LineSink) Array(size int, label string) {
	s.line("ARRAY", fmt.Sprintf("%d", size), label)
}

// Result appends one measured bit.
func (s *LineSink) Result(b domain.Bit, label string) {
	s.line("RESULT", fmt.Sprintf("%d", b), label)
}

// Flush drains buffered records and returns the first error seen on
// the underlying writer.
func (s *LineSink) Flush() error {
	if s.err != nil {
		return s.err
	}
	return s.w.Flush()
}

func (s *LineSink) line(kind, value, label string) {
	if s.err != nil {
		return
	}
	var err error
	if label == "" {
		_, err = fmt.Fprintf(s.w, "OUTPUT\t%s\t%s\n", kind, value)
	} else {
		_, err = fmt.Fprintf(s.w, "OUTPUT\t%s\t%s\t%s\n", kind, value, label)
	}
	if err != nil {
		s.err = err
	}
}

// Entry is one captured output record.
type Entry struct {
	Kind  string // "array" or "result"
	Size  int
	Bit   domain.Bit
	Label string
}

// Memory is an in-memory sink for inspection in tests and wiring
// checks. Entries are append-only.
type Memory struct {
	Entries []Entry
}

var _ domain.Sink = (*Memory)(nil)

func (m *Memory) Array(size int, label string) {
	m.Entries = append(m.Entries, Entry{Kind: "array", Size: size, Label: label})
}

func (m *Memory) Result(b domain.Bit, label string) {
	m.Entries = append(m.Entries, Entry{Kind: "result", Bit: b, Label: label})
}
