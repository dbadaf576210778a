package action

// AlwaysOn lights the key with a fixed color every cycle. It doubles as
// the conventional "disabled" marker for unassigned keys, usually with
// the pad's neutral color.
type AlwaysOn struct {
	base
	color Color
}

// NewAlwaysOn creates a constant light.
func NewAlwaysOn(c Color) *AlwaysOn {
	return &AlwaysOn{color: c}
}

// OnUpdate applies the stored color.
func (a *AlwaysOn) OnUpdate(k Key) {
	k.SetLED(a.color)
}

// Disabled returns the no-op action for an unassigned key.
func Disabled(neutral Color) Action {
	return NewAlwaysOn(neutral)
}

// SwitchWhenPressed is level-triggered: the LED shows the on color while
// the key is physically held and reverts on release. Press and release
// store the color; OnUpdate applies whatever is stored, so a missed
// update between the edges cannot strand the LED.
type SwitchWhenPressed struct {
	base
	off, on Color
	current Color
}

// NewSwitchWhenPressed creates a level-triggered light.
func NewSwitchWhenPressed(off, on Color) *SwitchWhenPressed {
	return &SwitchWhenPressed{off: off, on: on, current: off}
}

// OnPress stores the on color.
func (s *SwitchWhenPressed) OnPress(Key) {
	s.current = s.on
}

// OnRelease stores the off color.
func (s *SwitchWhenPressed) OnRelease(Key) {
	s.current = s.off
}

// OnUpdate applies the stored color.
func (s *SwitchWhenPressed) OnUpdate(k Key) {
	k.SetLED(s.current)
}

// ToggleWhenPressed is edge-triggered: each press flips a private latch
// between the off and on colors. The latch persists across cycles until
// the next press edge; release does not touch it.
type ToggleWhenPressed struct {
	base
	off, on Color
	latched bool
}

// NewToggleWhenPressed creates an edge-triggered latch light.
func NewToggleWhenPressed(off, on Color) *ToggleWhenPressed {
	return &ToggleWhenPressed{off: off, on: on}
}

// OnPress flips the latch.
func (t *ToggleWhenPressed) OnPress(Key) {
	t.latched = !t.latched
}

// OnUpdate applies the latched color.
func (t *ToggleWhenPressed) OnUpdate(k Key) {
	if t.latched {
		k.SetLED(t.on)
	} else {
		k.SetLED(t.off)
	}
}

// Mirror projects a named host indicator (a lock LED the host reports)
// onto the key's LED. It reads the indicator fresh every cycle and holds
// no state of its own.
type Mirror struct {
	base
	indicator string
	off, on   Color
}

// NewMirror creates an indicator-mirroring light.
func NewMirror(indicator string, off, on Color) *Mirror {
	return &Mirror{indicator: indicator, off: off, on: on}
}

// Indicator returns the mirrored indicator name.
func (m *Mirror) Indicator() string {
	return m.indicator
}

// OnUpdate applies the color for the indicator's current state.
func (m *Mirror) OnUpdate(k Key) {
	if k.Indicator(m.indicator) {
		k.SetLED(m.on)
	} else {
		k.SetLED(m.off)
	}
}
