package output_test

import (
	"bytes"
	"errors"
	"testing"

	"qrand/internal/domain"
	"qrand/internal/output"
)

func TestLineSink_Format(t *testing.T) {
	var buf bytes.Buffer
	s := output.NewLineSink(&buf)

	s.Array(9, "")
	s.Result(domain.One, "")
	s.Result(domain.Zero, "r0")
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	want := "OUTPUT\tARRAY\t9\n" +
		"OUTPUT\tRESULT\t1\n" +
		"OUTPUT\tRESULT\t0\tr0\n"
	if got := buf.String(); got != want {
		t.Fatalf("stream = %q, want %q", got, want)
	}
}

func TestLineSink_HoldsWriterError(t *testing.T) {
	s := output.NewLineSink(failWriter{})

	// Enough records to force the buffer through the failing writer.
	for i := 0; i < 4096; i++ {
		s.Result(domain.One, "")
	}
	if err := s.Flush(); err == nil {
		t.Fatalf("Flush returned nil, want writer error")
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errWrite
}

var errWrite = errors.New("sink: write failed")

func TestMemory_AppendsInOrder(t *testing.T) {
	var m output.Memory
	m.Array(2, "")
	m.Result(domain.Zero, "")
	m.Result(domain.One, "")

	if len(m.Entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(m.Entries))
	}
	if m.Entries[0].Kind != "array" || m.Entries[0].Size != 2 {
		t.Fatalf("entry 0 = %+v, want array header of 2", m.Entries[0])
	}
	if m.Entries[1].Bit != domain.Zero || m.Entries[2].Bit != domain.One {
		t.Fatalf("result entries out of order: %+v", m.Entries[1:])
	}
}
