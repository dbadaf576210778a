// Package sim is a terminal pad simulator. It renders the 4x4 grid with
// its LED colors using tcell and maps the host keyboard onto the 16 key
// indices, so a keymap can be exercised without Keybow hardware.
//
// Bindings: rows 1234 / qwer / asdf / zxcv map to indices 0..15 top to
// bottom. F1/F2/F3 toggle the caps-lock, num-lock, and scroll-lock
// indicators locally. Esc or Ctrl-C requests quit.
//
// Terminals report key presses but not releases, so a press is
// simulated as a short tap: the release is fed automatically after the
// tap duration. Holding a key therefore arrives as repeated taps, which
// is enough to exercise press-edge behavior, though not hold edges.
package sim

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/keybowio/keybow/internal/driver"
	"github.com/keybowio/keybow/internal/input/key"
)

// tapDuration is how long a simulated press stays down.
const tapDuration = 150 * time.Millisecond

// keyForRune maps host keyboard runes to pad indices, mirroring the
// physical 4x4 arrangement on the left of a QWERTY board.
var keyForRune = map[rune]int{
	'1': 0, '2': 1, '3': 2, '4': 3,
	'q': 4, 'w': 5, 'e': 6, 'r': 7,
	'a': 8, 's': 9, 'd': 10, 'f': 11,
	'z': 12, 'x': 13, 'c': 14, 'v': 15,
}

// Sim implements driver.Matrix, driver.HIDSink, and driver.Indicators
// on top of a tcell screen.
type Sim struct {
	*driver.State

	screen tcell.Screen

	mu         sync.Mutex
	indicators map[string]bool
	lastChord  string

	quit     chan struct{}
	quitOnce sync.Once
}

// New creates the simulator on a fresh tcell screen.
func New(holdAfter time.Duration) (*Sim, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Sim{
		State:      driver.NewState(16, holdAfter),
		screen:     screen,
		indicators: make(map[string]bool),
		quit:       make(chan struct{}),
	}, nil
}

// Init initializes the screen and starts the event reader.
func (s *Sim) Init() error {
	if err := s.screen.Init(); err != nil {
		return err
	}
	go s.readEvents()
	return nil
}

// Close restores the terminal.
func (s *Sim) Close() error {
	s.quitOnce.Do(func() { close(s.quit) })
	s.screen.Fini()
	return nil
}

// QuitRequested closes when the user asked to leave the simulator.
func (s *Sim) QuitRequested() <-chan struct{} {
	return s.quit
}

// readEvents feeds host key events into the matrix state machine.
func (s *Sim) readEvents() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			s.handleKey(ev)
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

func (s *Sim) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		s.quitOnce.Do(func() { close(s.quit) })
	case tcell.KeyF1:
		s.toggleIndicator("caps-lock")
	case tcell.KeyF2:
		s.toggleIndicator("num-lock")
	case tcell.KeyF3:
		s.toggleIndicator("scroll-lock")
	case tcell.KeyRune:
		if index, ok := keyForRune[ev.Rune()]; ok {
			s.tap(index)
		}
	}
}

// tap simulates a press with an automatic release, since terminals do
// not deliver key-up events.
func (s *Sim) tap(index int) {
	s.Feed(index, true)
	time.AfterFunc(tapDuration, func() {
		s.Feed(index, false)
	})
}

func (s *Sim) toggleIndicator(name string) {
	s.mu.Lock()
	s.indicators[name] = !s.indicators[name]
	s.mu.Unlock()
}

// Indicator implements driver.Indicators with the locally toggled state.
func (s *Sim) Indicator(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indicators[name]
}

// SendChord renders the chord in the status line instead of reaching a
// real HID transport.
func (s *Sim) SendChord(codes []key.Code) error {
	names := make([]string, 0, len(codes))
	for _, c := range codes {
		names = append(names, c.String())
	}
	s.mu.Lock()
	s.lastChord = strings.Join(names, "-")
	s.mu.Unlock()
	return nil
}

// Flush draws the pad: one cell block per key in its LED color, the
// indicator states, and the last transmitted chord.
func (s *Sim) Flush() error {
	s.screen.Clear()

	for i := 0; i < s.NumKeys(); i++ {
		led := s.LED(i)
		row, col := i/4, i%4
		style := tcell.StyleDefault.
			Background(tcell.NewRGBColor(int32(led.R), int32(led.G), int32(led.B)))
		if s.Pressed(i) {
			style = style.Foreground(tcell.ColorWhite).Bold(true)
		}
		s.drawKey(col*6+1, row*3+1, i, style)
	}

	s.mu.Lock()
	lastChord := s.lastChord
	caps := s.indicators["caps-lock"]
	num := s.indicators["num-lock"]
	scroll := s.indicators["scroll-lock"]
	s.mu.Unlock()

	status := fmt.Sprintf("caps:%s num:%s scroll:%s", mark(caps), mark(num), mark(scroll))
	s.drawText(1, 13, status)
	if lastChord != "" {
		s.drawText(1, 14, "sent: "+lastChord)
	}
	s.drawText(1, 16, "1234/qwer/asdf/zxcv press keys  F1-F3 toggle locks  Esc quits")

	s.screen.Show()
	return nil
}

// drawKey paints a 5x2 block for one key with its index label.
func (s *Sim) drawKey(x, y, index int, style tcell.Style) {
	label := fmt.Sprintf("%2d", index)
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 5; dx++ {
			r := ' '
			if dy == 0 && dx < len(label) {
				r = rune(label[dx])
			}
			s.screen.SetContent(x+dx, y+dy, r, nil, style)
		}
	}
}

func (s *Sim) drawText(x, y int, text string) {
	for i, r := range text {
		s.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

func mark(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
