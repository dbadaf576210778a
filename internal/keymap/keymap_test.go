package keymap

import (
	"errors"
	"testing"

	"github.com/keybowio/keybow/internal/action"
	"github.com/keybowio/keybow/internal/input/key"
	"github.com/keybowio/keybow/internal/layer"
)

// fakeSink satisfies action.Sink for builds.
type fakeSink struct {
	sent [][]key.Code
}

func (s *fakeSink) SendChord(codes []key.Code) error {
	group := make([]key.Code, len(codes))
	copy(group, codes)
	s.sent = append(s.sent, group)
	return nil
}

func deps() Deps {
	return Deps{Resolver: key.NewUSLayout(), Sink: &fakeSink{}}
}

const sampleTOML = `
neutral = "purple"

[colors]
purple = "#241E2F"
pink = "#FF98BA"
white = "#FFFCFE"

[[keys]]
row = 3
col = 1

[[keys.actions]]
kind = "mirror"
indicator = "caps-lock"
off = "purple"
on = "pink"

[[keys.actions]]
kind = "press"
chord = "ctrl-alt-M"

[[keys]]
row = 3
col = 3

[[keys.actions]]
kind = "light"
color = "purple"

[[keys.actions]]
kind = "press"
chord = "ctrl-alt-cmd-C"
`

func TestParseTOMLAndBuild(t *testing.T) {
	def, err := ParseTOML([]byte(sampleTOML))
	if err != nil {
		t.Fatalf("ParseTOML() error: %v", err)
	}
	if len(def.Keys) != 2 {
		t.Fatalf("got %d key defs, want 2", len(def.Keys))
	}

	l, err := def.Build(deps())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if l == nil {
		t.Fatal("Build() returned nil layer")
	}
}

func TestBuildWiresPressThroughSink(t *testing.T) {
	def, err := ParseTOML([]byte(sampleTOML))
	if err != nil {
		t.Fatal(err)
	}
	sink := &fakeSink{}
	l, err := def.Build(Deps{Resolver: key.NewUSLayout(), Sink: sink})
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Hook(nopPad{}); err != nil {
		t.Fatal(err)
	}

	// Declared row 3 col 1; rows reverse by default, so the physical
	// index is row 0 col 1 = 1.
	if err := l.Press(1); err != nil {
		t.Fatal(err)
	}
	if len(sink.sent) != 1 {
		t.Fatalf("sent %d groups, want 1", len(sink.sent))
	}
	want := []key.Code{key.CodeLeftCtrl, key.CodeLeftAlt, key.CodeM}
	for i := range want {
		if sink.sent[0][i] != want[i] {
			t.Fatalf("group = %v, want %v", sink.sent[0], want)
		}
	}
}

func TestBuildUnassignedCellsAreDisabled(t *testing.T) {
	def, err := ParseTOML([]byte(sampleTOML))
	if err != nil {
		t.Fatal(err)
	}
	l, err := def.Build(deps())
	if err != nil {
		t.Fatal(err)
	}
	pad := &ledPad{}
	if err := l.Hook(pad); err != nil {
		t.Fatal(err)
	}
	if err := l.Update(); err != nil {
		t.Fatal(err)
	}
	// Key 15 was never assigned: neutral purple.
	if got := pad.leds[15]; got != [3]uint8{0x24, 0x1E, 0x2F} {
		t.Errorf("unassigned key LED = %v, want neutral purple", got)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
		want error
	}{
		{
			"unknown kind",
			Definition{Keys: []KeyDef{{Row: 0, Col: 0, Actions: []ActionDef{{Kind: "blink"}}}}},
			ErrUnknownKind,
		},
		{
			"unknown color",
			Definition{Keys: []KeyDef{{Row: 0, Col: 0, Actions: []ActionDef{{Kind: "light", Color: "mauve"}}}}},
			ErrUnknownColor,
		},
		{
			"unknown indicator",
			Definition{Keys: []KeyDef{{Row: 0, Col: 0, Actions: []ActionDef{{Kind: "mirror", Indicator: "wifi"}}}}},
			ErrUnknownIndicator,
		},
		{
			"bad chord token",
			Definition{Keys: []KeyDef{{Row: 0, Col: 0, Actions: []ActionDef{{Kind: "press", Chord: "ctrl-unicorn"}}}}},
			nil, // wrapped chord error; just must fail
		},
		{
			"missing chord",
			Definition{Keys: []KeyDef{{Row: 0, Col: 0, Actions: []ActionDef{{Kind: "press"}}}}},
			ErrMissingField,
		},
		{
			"empty cell",
			Definition{Keys: []KeyDef{{Row: 0, Col: 0}}},
			ErrNoActions,
		},
		{
			"duplicate cell",
			Definition{Keys: []KeyDef{
				{Row: 1, Col: 1, Actions: []ActionDef{{Kind: "disabled"}}},
				{Row: 1, Col: 1, Actions: []ActionDef{{Kind: "disabled"}}},
			}},
			ErrDuplicateCell,
		},
		{
			"cell out of grid",
			Definition{Keys: []KeyDef{{Row: 4, Col: 0, Actions: []ActionDef{{Kind: "disabled"}}}}},
			layer.ErrIndexOutOfRange,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.def.Build(deps())
			if err == nil {
				t.Fatal("Build() should fail")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Build() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBuildActionsAreNotShared(t *testing.T) {
	// Two cells with identical toggle definitions must not share latch
	// state.
	def := Definition{
		Colors: map[string]string{"off": "#000000", "on": "#FFFFFF"},
		Keys: []KeyDef{
			{Row: 0, Col: 0, Actions: []ActionDef{{Kind: "toggle", Off: "off", On: "on"}}},
			{Row: 0, Col: 1, Actions: []ActionDef{{Kind: "toggle", Off: "off", On: "on"}}},
		},
	}
	reverse := false
	def.Reverse = &reverse

	l, err := def.Build(deps())
	if err != nil {
		t.Fatal(err)
	}
	pad := &ledPad{}
	if err := l.Hook(pad); err != nil {
		t.Fatal(err)
	}

	if err := l.Press(0); err != nil {
		t.Fatal(err)
	}
	if err := l.Update(); err != nil {
		t.Fatal(err)
	}
	if pad.leds[0] != [3]uint8{0xFF, 0xFF, 0xFF} {
		t.Error("pressed toggle should be on")
	}
	if pad.leds[1] == [3]uint8{0xFF, 0xFF, 0xFF} {
		t.Error("sibling toggle shares latch state")
	}
}

func TestDefinitionReverseOverride(t *testing.T) {
	reverse := false
	def := Definition{
		Reverse: &reverse,
		Colors:  map[string]string{"on": "#FFFFFF"},
		Keys: []KeyDef{
			{Row: 0, Col: 0, Actions: []ActionDef{{Kind: "light", Color: "on"}}},
		},
	}
	l, err := def.Build(deps())
	if err != nil {
		t.Fatal(err)
	}
	pad := &ledPad{}
	if err := l.Hook(pad); err != nil {
		t.Fatal(err)
	}
	if err := l.Update(); err != nil {
		t.Fatal(err)
	}
	// Without reversal, declared row 0 stays at physical row 0.
	if pad.leds[0] != [3]uint8{0xFF, 0xFF, 0xFF} {
		t.Errorf("key 0 LED = %v, want white", pad.leds[0])
	}
}

// nopPad discards LED writes and reads no indicators.
type nopPad struct{}

func (nopPad) PressedEdge(int) bool            { return false }
func (nopPad) ReleasedEdge(int) bool           { return false }
func (nopPad) HoldEdge(int) bool               { return false }
func (nopPad) SetLED(int, uint8, uint8, uint8) {}
func (nopPad) Indicator(string) bool           { return false }

// ledPad records LED writes per key.
type ledPad struct {
	leds [16][3]uint8
}

func (p *ledPad) PressedEdge(int) bool  { return false }
func (p *ledPad) ReleasedEdge(int) bool { return false }
func (p *ledPad) HoldEdge(int) bool     { return false }
func (p *ledPad) SetLED(i int, r, g, b uint8) {
	if i >= 0 && i < 16 {
		p.leds[i] = [3]uint8{r, g, b}
	}
}
func (p *ledPad) Indicator(string) bool { return false }

var _ action.Sink = (*fakeSink)(nil)
