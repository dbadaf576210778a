package layer

import (
	"errors"
	"fmt"

	"github.com/keybowio/keybow/internal/action"
)

// Construction and dispatch errors.
var (
	ErrBadMatrix = errors.New("action matrix must be 4x4 with no nil cells")
	ErrNotHooked = errors.New("layer is not hooked to a pad")
)

// Pad is what the layer needs from the hardware side: per-cycle edge
// state, the LED output, and host indicator reads. The matrix driver and
// indicator source satisfy it together.
type Pad interface {
	PressedEdge(index int) bool
	ReleasedEdge(index int) bool
	HoldEdge(index int) bool
	SetLED(index int, r, g, b uint8)
	Indicator(name string) bool
}

// Layer is an immutable 4x4 grid of actions addressed by key index.
type Layer struct {
	matrix  [GridHeight][GridWidth]action.Action
	reverse bool

	pad  Pad
	keys [NumKeys]keyContext
}

// Option configures Layer construction.
type Option func(*Layer)

// WithReverse controls row reversal at construction. The default (true)
// matches boards whose physical numbering runs opposite to the visual
// keymap; pass false for boards wired the other way.
func WithReverse(reverse bool) Option {
	return func(l *Layer) {
		l.reverse = reverse
	}
}

// New builds a layer from four rows of four actions, top row first as
// written in the keymap source. Row order is reversed unless disabled
// via WithReverse(false).
func New(rows [][]action.Action, opts ...Option) (*Layer, error) {
	l := &Layer{reverse: true}
	for _, opt := range opts {
		opt(l)
	}

	if len(rows) != GridHeight {
		return nil, fmt.Errorf("%w: got %d rows", ErrBadMatrix, len(rows))
	}
	for r, row := range rows {
		if len(row) != GridWidth {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrBadMatrix, r, len(row))
		}
		for c, a := range row {
			if a == nil {
				return nil, fmt.Errorf("%w: nil action at row %d col %d", ErrBadMatrix, r, c)
			}
			dst := r
			if l.reverse {
				dst = GridHeight - 1 - r
			}
			l.matrix[dst][c] = a
		}
	}
	return l, nil
}

// Hook binds the layer to a pad once at startup, building the per-key
// context each action receives. Must be called before Update or the
// direct dispatch paths.
func (l *Layer) Hook(pad Pad) error {
	if pad == nil {
		return ErrNotHooked
	}
	l.pad = pad
	for i := range l.keys {
		l.keys[i] = keyContext{index: i, pad: pad}
	}
	return nil
}

// At returns the action at a physical key index.
func (l *Layer) At(index int) (action.Action, error) {
	row, col, err := IndexToGrid(index)
	if err != nil {
		return nil, err
	}
	return l.matrix[row][col], nil
}

// Update runs one polling cycle. For every key, in index order: the
// press or release edge if one fired, the hold edge if it fired, then
// exactly one OnUpdate. Edges strictly precede the update for a key.
func (l *Layer) Update() error {
	if l.pad == nil {
		return ErrNotHooked
	}
	for i := 0; i < NumKeys; i++ {
		row, col, _ := IndexToGrid(i)
		a := l.matrix[row][col]
		k := &l.keys[i]

		if l.pad.PressedEdge(i) {
			a.OnPress(k)
		}
		if l.pad.ReleasedEdge(i) {
			a.OnRelease(k)
		}
		if l.pad.HoldEdge(i) {
			a.OnHold(k)
		}
		a.OnUpdate(k)
	}
	return nil
}

// Press dispatches a press edge directly to the action at index. This is
// the integration path for callers that manage their own callback wiring
// and only need dispatch-by-index.
func (l *Layer) Press(index int) error {
	return l.dispatch(index, action.Action.OnPress)
}

// Release dispatches a release edge directly to the action at index.
func (l *Layer) Release(index int) error {
	return l.dispatch(index, action.Action.OnRelease)
}

// Hold dispatches a hold edge directly to the action at index.
func (l *Layer) Hold(index int) error {
	return l.dispatch(index, action.Action.OnHold)
}

func (l *Layer) dispatch(index int, fire func(action.Action, action.Key)) error {
	if l.pad == nil {
		return ErrNotHooked
	}
	a, err := l.At(index)
	if err != nil {
		return err
	}
	fire(a, &l.keys[index])
	return nil
}

// keyContext implements action.Key for one physical key, bridging the
// action model to the pad.
type keyContext struct {
	index int
	pad   Pad
}

func (k *keyContext) Index() int {
	return k.index
}

func (k *keyContext) SetLED(c action.Color) {
	k.pad.SetLED(k.index, c.R, c.G, c.B)
}

func (k *keyContext) Indicator(name string) bool {
	return k.pad.Indicator(name)
}
