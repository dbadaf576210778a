package keymap

import (
	"errors"
	"fmt"

	"github.com/keybowio/keybow/internal/action"
	"github.com/keybowio/keybow/internal/input/key"
	"github.com/keybowio/keybow/internal/layer"
)

// Validation errors.
var (
	ErrUnknownKind      = errors.New("unknown action kind")
	ErrUnknownColor     = errors.New("unknown color")
	ErrUnknownIndicator = errors.New("unknown indicator")
	ErrDuplicateCell    = errors.New("cell assigned twice")
	ErrNoActions        = errors.New("cell has no actions")
	ErrMissingField     = errors.New("missing field")
)

// knownIndicators are the host indicator names Mirror may reference.
var knownIndicators = map[string]bool{
	"caps-lock":   true,
	"num-lock":    true,
	"scroll-lock": true,
}

// Definition is the declarative keymap: named colors plus per-cell
// action lists. Cells not listed get the neutral light.
type Definition struct {
	// Reverse overrides the layer's row-reversal default (true) when
	// set.
	Reverse *bool `toml:"reverse"`

	// Neutral is the color for unassigned keys; defaults to unlit.
	Neutral string `toml:"neutral"`

	// Colors maps names to hex values usable anywhere a color is
	// expected.
	Colors map[string]string `toml:"colors"`

	// Keys assigns actions to grid cells.
	Keys []KeyDef `toml:"keys"`
}

// KeyDef assigns one grid cell its action stack.
type KeyDef struct {
	Row     int         `toml:"row"`
	Col     int         `toml:"col"`
	Actions []ActionDef `toml:"actions"`
}

// ActionDef describes one action in a cell's stack.
type ActionDef struct {
	// Kind selects the variant: press, light, switch, toggle, mirror,
	// or disabled.
	Kind string `toml:"kind"`

	// Chord is the chord specification for press.
	Chord string `toml:"chord"`

	// Indicator is the host indicator name for mirror.
	Indicator string `toml:"indicator"`

	// Color is the fixed color for light.
	Color string `toml:"color"`

	// Off and On are the state colors for switch, toggle, and mirror.
	Off string `toml:"off"`
	On  string `toml:"on"`
}

// Deps are the collaborator handles actions need at construction.
type Deps struct {
	Resolver key.Resolver
	Sink     action.Sink
}

// Build validates the definition and constructs the Layer. Every error
// is a configuration error: it names the offending cell and halts
// startup before the polling loop.
func (d *Definition) Build(deps Deps) (*layer.Layer, error) {
	neutral, err := d.resolveColor(d.Neutral, action.Off)
	if err != nil {
		return nil, fmt.Errorf("neutral: %w", err)
	}

	rows := make([][]action.Action, layer.GridHeight)
	for r := range rows {
		rows[r] = make([]action.Action, layer.GridWidth)
		for c := range rows[r] {
			rows[r][c] = action.Disabled(neutral)
		}
	}

	seen := make(map[int]bool)
	for _, kd := range d.Keys {
		index, err := layer.GridToIndex(kd.Row, kd.Col)
		if err != nil {
			return nil, err
		}
		if seen[index] {
			return nil, fmt.Errorf("%w: row %d col %d", ErrDuplicateCell, kd.Row, kd.Col)
		}
		seen[index] = true

		stacked, err := d.buildCell(kd, deps)
		if err != nil {
			return nil, fmt.Errorf("row %d col %d: %w", kd.Row, kd.Col, err)
		}
		rows[kd.Row][kd.Col] = stacked
	}

	var opts []layer.Option
	if d.Reverse != nil {
		opts = append(opts, layer.WithReverse(*d.Reverse))
	}
	return layer.New(rows, opts...)
}

// buildCell constructs one cell's action stack.
func (d *Definition) buildCell(kd KeyDef, deps Deps) (action.Action, error) {
	if len(kd.Actions) == 0 {
		return nil, ErrNoActions
	}
	actions := make([]action.Action, 0, len(kd.Actions))
	for _, ad := range kd.Actions {
		a, err := d.buildAction(ad, deps)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return action.Combine(actions...), nil
}

// buildAction constructs one action from its definition.
func (d *Definition) buildAction(ad ActionDef, deps Deps) (action.Action, error) {
	switch ad.Kind {
	case "press":
		if ad.Chord == "" {
			return nil, fmt.Errorf("%w: press needs a chord", ErrMissingField)
		}
		return action.NewPress(ad.Chord, deps.Resolver, deps.Sink)

	case "light":
		c, err := d.resolveColor(ad.Color, action.Color{})
		if err != nil {
			return nil, err
		}
		return action.NewAlwaysOn(c), nil

	case "switch":
		off, on, err := d.resolveStateColors(ad)
		if err != nil {
			return nil, err
		}
		return action.NewSwitchWhenPressed(off, on), nil

	case "toggle":
		off, on, err := d.resolveStateColors(ad)
		if err != nil {
			return nil, err
		}
		return action.NewToggleWhenPressed(off, on), nil

	case "mirror":
		if !knownIndicators[ad.Indicator] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownIndicator, ad.Indicator)
		}
		off, on, err := d.resolveStateColors(ad)
		if err != nil {
			return nil, err
		}
		return action.NewMirror(ad.Indicator, off, on), nil

	case "disabled":
		neutral, err := d.resolveColor(d.Neutral, action.Off)
		if err != nil {
			return nil, err
		}
		return action.Disabled(neutral), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, ad.Kind)
	}
}

func (d *Definition) resolveStateColors(ad ActionDef) (off, on action.Color, err error) {
	off, err = d.resolveColor(ad.Off, action.Color{})
	if err != nil {
		return
	}
	on, err = d.resolveColor(ad.On, action.Color{})
	return
}

// resolveColor resolves a color reference: empty uses the fallback, a
// name in Colors uses its value, anything else must parse as hex.
func (d *Definition) resolveColor(ref string, fallback action.Color) (action.Color, error) {
	if ref == "" {
		return fallback, nil
	}
	if hex, ok := d.Colors[ref]; ok {
		c, err := action.ParseHex(hex)
		if err != nil {
			return action.Color{}, fmt.Errorf("color %q: %w", ref, err)
		}
		return c, nil
	}
	c, err := action.ParseHex(ref)
	if err != nil {
		return action.Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, ref)
	}
	return c, nil
}
