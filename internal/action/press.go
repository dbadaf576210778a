package action

import (
	"github.com/keybowio/keybow/internal/input/chord"
	"github.com/keybowio/keybow/internal/input/key"
)

// Press transmits a parsed chord when its key is pressed. Holding the
// key does not repeat the chord; release and update are no-ops.
type Press struct {
	base
	chord chord.Chord
	sink  Sink
}

// NewPress parses the chord specification and binds it to the sink.
// Parsing happens here, once: an unresolvable token fails construction
// and never reaches the polling loop.
func NewPress(spec string, resolver key.Resolver, sink Sink) (*Press, error) {
	parsed, err := chord.Parse(spec, resolver)
	if err != nil {
		return nil, err
	}
	return &Press{chord: parsed, sink: sink}, nil
}

// Chord returns the parsed chord, mainly for logging.
func (p *Press) Chord() chord.Chord {
	return p.chord
}

// OnPress sends each group in order, one full press-and-release
// transaction per group. Transport errors are the sink's problem; the
// action fires and forgets.
func (p *Press) OnPress(Key) {
	for _, group := range p.chord {
		_ = p.sink.SendChord(group)
	}
}
