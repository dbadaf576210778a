package driver

import (
	"sync"
	"time"
)

// DefaultHoldAfter is how long a key must stay down before the hold edge
// fires, matching the Keybow firmware's hold time.
const DefaultHoldAfter = 750 * time.Millisecond

// RGB is one staged LED color.
type RGB struct {
	R, G, B uint8
}

// State tracks key levels fed by a driver's reader goroutine and turns
// them into per-cycle edge snapshots for the polling loop.
//
// Feed may be called from any goroutine; everything else belongs to the
// loop goroutine. Scan samples levels, so a press-and-release pair that
// completes entirely between two scans is not observable — the same
// property a hardware matrix polled at the cycle rate has.
type State struct {
	mu        sync.Mutex
	live      []bool
	pressedAt []time.Time

	prev      []bool
	pressed   []bool
	pressEdge []bool
	relEdge   []bool
	holdEdge  []bool
	holdFired []bool
	downSince []time.Time

	leds []RGB

	holdAfter time.Duration
	now       func() time.Time
}

// NewState creates edge tracking for numKeys keys. holdAfter <= 0 uses
// DefaultHoldAfter.
func NewState(numKeys int, holdAfter time.Duration) *State {
	if holdAfter <= 0 {
		holdAfter = DefaultHoldAfter
	}
	return &State{
		live:      make([]bool, numKeys),
		pressedAt: make([]time.Time, numKeys),
		prev:      make([]bool, numKeys),
		pressed:   make([]bool, numKeys),
		pressEdge: make([]bool, numKeys),
		relEdge:   make([]bool, numKeys),
		holdEdge:  make([]bool, numKeys),
		holdFired: make([]bool, numKeys),
		downSince: make([]time.Time, numKeys),
		leds:      make([]RGB, numKeys),
		holdAfter: holdAfter,
		now:       time.Now,
	}
}

// SetClock overrides the time source. Tests use it to cross the hold
// threshold deterministically.
func (s *State) SetClock(now func() time.Time) {
	s.now = now
}

// NumKeys returns the tracked key count.
func (s *State) NumKeys() int {
	return len(s.live)
}

// Feed records a level transition from the hardware side. Out-of-range
// indices are ignored; a driver feeding garbage is a bug, but the loop
// must not die for it.
func (s *State) Feed(index int, pressed bool) {
	if index < 0 || index >= len(s.live) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.live[index] == pressed {
		return
	}
	s.live[index] = pressed
	if pressed {
		s.pressedAt[index] = s.now()
	}
}

// Scan snapshots the live levels into the cycle's pressed/edge state.
func (s *State) Scan() {
	s.mu.Lock()
	copy(s.pressed, s.live)
	copy(s.downSince, s.pressedAt)
	s.mu.Unlock()

	now := s.now()
	for i := range s.pressed {
		s.pressEdge[i] = s.pressed[i] && !s.prev[i]
		s.relEdge[i] = !s.pressed[i] && s.prev[i]
		s.holdEdge[i] = false

		if s.pressEdge[i] {
			s.holdFired[i] = false
		}
		if s.pressed[i] && !s.holdFired[i] && now.Sub(s.downSince[i]) >= s.holdAfter {
			s.holdEdge[i] = true
			s.holdFired[i] = true
		}
	}
	copy(s.prev, s.pressed)
}

// Pressed reports the level state as of the last Scan.
func (s *State) Pressed(index int) bool {
	return index >= 0 && index < len(s.pressed) && s.pressed[index]
}

// PressedEdge reports a press transition captured by the last Scan.
func (s *State) PressedEdge(index int) bool {
	return index >= 0 && index < len(s.pressEdge) && s.pressEdge[index]
}

// ReleasedEdge reports a release transition captured by the last Scan.
func (s *State) ReleasedEdge(index int) bool {
	return index >= 0 && index < len(s.relEdge) && s.relEdge[index]
}

// HoldEdge reports the once-per-press hold threshold crossing.
func (s *State) HoldEdge(index int) bool {
	return index >= 0 && index < len(s.holdEdge) && s.holdEdge[index]
}

// SetLED stages a key's LED color.
func (s *State) SetLED(index int, r, g, b uint8) {
	if index < 0 || index >= len(s.leds) {
		return
	}
	s.leds[index] = RGB{R: r, G: g, B: b}
}

// LED returns a key's staged LED color.
func (s *State) LED(index int) RGB {
	if index < 0 || index >= len(s.leds) {
		return RGB{}
	}
	return s.leds[index]
}
