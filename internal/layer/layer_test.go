package layer

import (
	"errors"
	"testing"

	"github.com/keybowio/keybow/internal/action"
)

// recorder is a test action that records which reactions fired.
type recorder struct {
	events []string
	name   string
}

func (r *recorder) OnPress(action.Key)   { r.events = append(r.events, r.name+":press") }
func (r *recorder) OnRelease(action.Key) { r.events = append(r.events, r.name+":release") }
func (r *recorder) OnHold(action.Key)    { r.events = append(r.events, r.name+":hold") }
func (r *recorder) OnUpdate(action.Key)  { r.events = append(r.events, r.name+":update") }

// fakePad is a scriptable Pad.
type fakePad struct {
	pressEdges map[int]bool
	relEdges   map[int]bool
	holdEdges  map[int]bool
	leds       map[int][3]uint8
	indicators map[string]bool
}

func newFakePad() *fakePad {
	return &fakePad{
		pressEdges: make(map[int]bool),
		relEdges:   make(map[int]bool),
		holdEdges:  make(map[int]bool),
		leds:       make(map[int][3]uint8),
		indicators: make(map[string]bool),
	}
}

func (p *fakePad) PressedEdge(i int) bool      { return p.pressEdges[i] }
func (p *fakePad) ReleasedEdge(i int) bool     { return p.relEdges[i] }
func (p *fakePad) HoldEdge(i int) bool         { return p.holdEdges[i] }
func (p *fakePad) SetLED(i int, r, g, b uint8) { p.leds[i] = [3]uint8{r, g, b} }
func (p *fakePad) Indicator(name string) bool  { return p.indicators[name] }

// matrixOf builds a 4x4 matrix filled with fresh recorders and returns
// the recorder declared at visual row/col for inspection.
func matrixOf(t *testing.T) ([][]action.Action, [4][4]*recorder) {
	t.Helper()
	var recs [4][4]*recorder
	rows := make([][]action.Action, 4)
	for r := 0; r < 4; r++ {
		rows[r] = make([]action.Action, 4)
		for c := 0; c < 4; c++ {
			rec := &recorder{name: string(rune('a'+r)) + string(rune('0'+c))}
			recs[r][c] = rec
			rows[r][c] = rec
		}
	}
	return rows, recs
}

func TestNewValidatesShape(t *testing.T) {
	tests := []struct {
		name string
		rows [][]action.Action
	}{
		{"nil", nil},
		{"three rows", make([][]action.Action, 3)},
		{"short row", func() [][]action.Action {
			rows, _ := matrixOf(t)
			rows[2] = rows[2][:3]
			return rows
		}()},
		{"nil cell", func() [][]action.Action {
			rows, _ := matrixOf(t)
			rows[1][1] = nil
			return rows
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.rows); !errors.Is(err, ErrBadMatrix) {
				t.Errorf("New() error = %v, want ErrBadMatrix", err)
			}
		})
	}
}

func TestReverseMapsFirstPhysicalRowToLastDeclaredRow(t *testing.T) {
	rows, recs := matrixOf(t)
	l, err := New(rows) // reverse defaults true
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Hook(newFakePad()); err != nil {
		t.Fatal(err)
	}

	// Physical index 0 is grid row 0; with reversal that is the last
	// declared row.
	if err := l.Press(0); err != nil {
		t.Fatal(err)
	}
	if got := recs[3][0].events; len(got) != 1 || got[0] != "d0:press" {
		t.Errorf("last declared row did not receive the press: %v", got)
	}
	if got := recs[0][0].events; len(got) != 0 {
		t.Errorf("first declared row should be untouched, got %v", got)
	}
}

func TestWithoutReverseKeepsDeclaredOrder(t *testing.T) {
	rows, recs := matrixOf(t)
	l, err := New(rows, WithReverse(false))
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Hook(newFakePad()); err != nil {
		t.Fatal(err)
	}

	if err := l.Press(0); err != nil {
		t.Fatal(err)
	}
	if got := recs[0][0].events; len(got) != 1 || got[0] != "a0:press" {
		t.Errorf("declared row 0 did not receive the press: %v", got)
	}
}

func TestUpdateOrdersEdgesBeforeUpdate(t *testing.T) {
	rows, recs := matrixOf(t)
	l, err := New(rows, WithReverse(false))
	if err != nil {
		t.Fatal(err)
	}
	pad := newFakePad()
	if err := l.Hook(pad); err != nil {
		t.Fatal(err)
	}

	pad.pressEdges[5] = true
	pad.holdEdges[5] = true
	if err := l.Update(); err != nil {
		t.Fatal(err)
	}

	// Index 5 is row 1 col 1.
	want := []string{"b1:press", "b1:hold", "b1:update"}
	got := recs[1][1].events
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("events = %v, want %v", got, want)
		}
	}

	// Every other key sees exactly one update and no edges.
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if r == 1 && c == 1 {
				continue
			}
			ev := recs[r][c].events
			if len(ev) != 1 || ev[0] != recs[r][c].name+":update" {
				t.Errorf("key (%d,%d) events = %v, want one update", r, c, ev)
			}
		}
	}
}

func TestUpdateDeliversExactlyOneUpdatePerCycle(t *testing.T) {
	rows, recs := matrixOf(t)
	l, err := New(rows, WithReverse(false))
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Hook(newFakePad()); err != nil {
		t.Fatal(err)
	}

	for cycle := 0; cycle < 3; cycle++ {
		if err := l.Update(); err != nil {
			t.Fatal(err)
		}
	}
	if got := len(recs[2][3].events); got != 3 {
		t.Errorf("3 cycles produced %d updates", got)
	}
}

func TestDirectDispatchOutOfRange(t *testing.T) {
	rows, _ := matrixOf(t)
	l, err := New(rows)
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Hook(newFakePad()); err != nil {
		t.Fatal(err)
	}

	for _, index := range []int{-1, 16} {
		if err := l.Press(index); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Press(%d) error = %v, want ErrIndexOutOfRange", index, err)
		}
		if err := l.Release(index); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Release(%d) error = %v, want ErrIndexOutOfRange", index, err)
		}
	}
}

func TestDispatchBeforeHook(t *testing.T) {
	rows, _ := matrixOf(t)
	l, err := New(rows)
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Update(); !errors.Is(err, ErrNotHooked) {
		t.Errorf("Update() before Hook error = %v, want ErrNotHooked", err)
	}
	if err := l.Press(0); !errors.Is(err, ErrNotHooked) {
		t.Errorf("Press() before Hook error = %v, want ErrNotHooked", err)
	}
}

func TestKeyContextBridgesLEDAndIndicator(t *testing.T) {
	rows := make([][]action.Action, 4)
	for r := range rows {
		rows[r] = make([]action.Action, 4)
		for c := range rows[r] {
			rows[r][c] = action.Disabled(action.Off)
		}
	}
	// Index 6: mirror caps-lock.
	rows[1][2] = action.NewMirror("caps-lock", action.RGB(1, 2, 3), action.RGB(40, 50, 60))

	l, err := New(rows, WithReverse(false))
	if err != nil {
		t.Fatal(err)
	}
	pad := newFakePad()
	pad.indicators["caps-lock"] = true
	if err := l.Hook(pad); err != nil {
		t.Fatal(err)
	}
	if err := l.Update(); err != nil {
		t.Fatal(err)
	}
	if got := pad.leds[6]; got != [3]uint8{40, 50, 60} {
		t.Errorf("LED for key 6 = %v, want the on color", got)
	}
}
