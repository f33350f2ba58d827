package qtest

import (
	"fmt"

	"qrand/internal/domain"
)

// Call is one recorded intrinsic invocation.
type Call struct {
	Op    string
	Args  []int
	Label string
}

// String renders a call as "op arg arg", ignoring the label. Traces
// compare well as strings.
func (c Call) String() string {
	s := c.Op
	for _, a := range c.Args {
		s += fmt.Sprintf(" %d", a)
	}
	return s
}

// Output is one captured entry of the recorded output stream.
type Output struct {
	Kind  string // "array" or "result"
	Size  int    // array header size
	Slot  domain.Result
	Bit   domain.Bit
	Label string
}

// Backend is a scripted Intrinsics double. Successive MResetZ calls
// return the scripted bits in order; running past the script is a test
// bug and panics. Reading or recording a slot that was never measured
// panics too, so ordering violations surface immediately.
type Backend struct {
	script []domain.Bit
	next   int
	slots  map[domain.Result]domain.Bit

	Calls   []Call
	Outputs []Output
}

// NewBackend returns a double whose measurements yield bits in order.
func NewBackend(bits ...domain.Bit) *Backend {
	return &Backend{
		script: bits,
		slots:  make(map[domain.Result]domain.Bit),
	}
}

var _ domain.Intrinsics = (*Backend)(nil)

func (b *Backend) X(q domain.Qubit) {
	b.record("x", int(q))
}

func (b *Backend) H(q domain.Qubit) {
	b.record("h", int(q))
}

func (b *Backend) CZ(control, target domain.Qubit) {
	b.record("cz", int(control), int(target))
}

func (b *Backend) MResetZ(q domain.Qubit, r domain.Result) {
	if b.next >= len(b.script) {
		panic(fmt.Sprintf("qtest: measurement %d exceeds script of %d bits", b.next+1, len(b.script)))
	}
	b.slots[r] = b.script[b.next]
	b.next++
	b.record("mresetz", int(q), int(r))
}

func (b *Backend) ReadBit(r domain.Result) domain.Bit {
	bit, ok := b.slots[r]
	if !ok {
		panic(fmt.Sprintf("qtest: read of unmeasured slot %d", r))
	}
	b.record("read", int(r))
	return bit
}

func (b *Backend) RecordArray(size int, label string) {
	b.Calls = append(b.Calls, Call{Op: "record_array", Args: []int{size}, Label: label})
	b.Outputs = append(b.Outputs, Output{Kind: "array", Size: size, Label: label})
}

func (b *Backend) RecordResult(r domain.Result, label string) {
	bit, ok := b.slots[r]
	if !ok {
		panic(fmt.Sprintf("qtest: record of unmeasured slot %d", r))
	}
	b.Calls = append(b.Calls, Call{Op: "record_result", Args: []int{int(r)}, Label: label})
	b.Outputs = append(b.Outputs, Output{Kind: "result", Slot: r, Bit: bit, Label: label})
}

// Measured reports how many scripted measurements have been consumed.
func (b *Backend) Measured() int { return b.next }

// Trace returns every recorded call rendered as strings.
func (b *Backend) Trace() []string {
	out := make([]string, len(b.Calls))
	for i, c := range b.Calls {
		out[i] = c.String()
	}
	return out
}

func (b *Backend) record(op string, args ...int) {
	b.Calls = append(b.Calls, Call{Op: op, Args: args})
}
