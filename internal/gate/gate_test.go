package gate_test

import (
	"reflect"
	"testing"

	"qrand/internal/domain"
	"qrand/internal/gate"
	"qrand/internal/qtest"
)

func TestCNOT_Decomposition(t *testing.T) {
	cases := []struct {
		control, target domain.Qubit
	}{
		{0, 1},
		{3, 7},
		{8, 0},
	}
	for _, tc := range cases {
		b := qtest.NewBackend()
		gate.CNOT(b, tc.control, tc.target)

		want := []string{
			qtest.Call{Op: "h", Args: []int{int(tc.target)}}.String(),
			qtest.Call{Op: "cz", Args: []int{int(tc.control), int(tc.target)}}.String(),
			qtest.Call{Op: "h", Args: []int{int(tc.target)}}.String(),
		}
		if got := b.Trace(); !reflect.DeepEqual(got, want) {
			t.Fatalf("CNOT(%d,%d) trace = %v, want %v", tc.control, tc.target, got, want)
		}
	}
}

func TestSingleQubitGatesForwardToBackend(t *testing.T) {
	b := qtest.NewBackend()

	gate.H(b, 5)
	gate.X(b, 2)

	want := []string{"h 5", "x 2"}
	if got := b.Trace(); !reflect.DeepEqual(got, want) {
		t.Fatalf("trace = %v, want %v", got, want)
	}
}

func TestMResetZ_MeasuresThenReads(t *testing.T) {
	b := qtest.NewBackend(domain.One)

	bit := gate.MResetZ(b, 4, 4)
	if bit != domain.One {
		t.Fatalf("MResetZ returned %d, want 1", bit)
	}

	want := []string{"mresetz 4 4", "read 4"}
	if got := b.Trace(); !reflect.DeepEqual(got, want) {
		t.Fatalf("trace = %v, want %v", got, want)
	}
}

func TestMResetZ_ReturnsStoredBit(t *testing.T) {
	b := qtest.NewBackend(domain.Zero, domain.One)

	if bit := gate.MResetZ(b, 0, 0); bit != domain.Zero {
		t.Fatalf("first measurement = %d, want 0", bit)
	}
	if bit := gate.MResetZ(b, 1, 1); bit != domain.One {
		t.Fatalf("second measurement = %d, want 1", bit)
	}
	// Readback must match what the slot holds, not re-measure.
	if bit := b.ReadBit(0); bit != domain.Zero {
		t.Fatalf("slot 0 re-read = %d, want 0", bit)
	}
}

func TestRecord_ForwardsSlotWithNullLabel(t *testing.T) {
	b := qtest.NewBackend(domain.One)
	gate.MResetZ(b, 2, 2)

	gate.Record(b, 2)

	if len(b.Outputs) != 1 {
		t.Fatalf("got %d outputs, want 1", len(b.Outputs))
	}
	out := b.Outputs[0]
	if out.Kind != "result" || out.Slot != 2 || out.Bit != domain.One || out.Label != "" {
		t.Fatalf("unexpected output %+v", out)
	}
}

func TestRecord_UnmeasuredSlotPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("recording an unmeasured slot did not panic")
		}
	}()
	gate.Record(qtest.NewBackend(), 5)
}
