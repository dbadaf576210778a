package chord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/keybowio/keybow/internal/input/key"
)

// Parse errors.
var (
	ErrEmptySpec    = errors.New("empty chord specification")
	ErrEmptyToken   = errors.New("empty token in chord specification")
	ErrUnknownToken = errors.New("unknown chord token")
)

// Group is one simultaneous set of usage codes, pressed together and
// released together as a single HID transaction.
type Group []key.Code

// Chord is an ordered sequence of Groups transmitted left to right.
type Chord []Group

// specials is the fixed built-in token table. It is consulted before the
// layout resolver, so "space" is always the space bar and never a
// five-character name lookup.
var specials = map[string]key.Code{
	"alt":    key.CodeLeftAlt,
	"cmd":    key.CodeLeftGUI,
	"ctrl":   key.CodeLeftCtrl,
	"option": key.CodeLeftAlt,
	"shift":  key.CodeLeftShift,
	"space":  key.CodeSpace,
	"tab":    key.CodeTab,
	"left":   key.CodeLeft,
	"right":  key.CodeRight,
	"up":     key.CodeUp,
	"down":   key.CodeDown,
}

// Parse parses a chord specification, resolving every token up front.
// Returns ErrUnknownToken (wrapped with the offending token) if any
// token resolves against neither the built-in table nor the resolver.
func Parse(spec string, resolver key.Resolver) (Chord, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, ErrEmptySpec
	}

	var chord Chord
	for _, groupSpec := range strings.Split(spec, " ") {
		if groupSpec == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptyToken, spec)
		}
		group, err := parseGroup(groupSpec, resolver)
		if err != nil {
			return nil, err
		}
		chord = append(chord, group)
	}
	return chord, nil
}

// parseGroup resolves one hyphen-joined token group.
func parseGroup(groupSpec string, resolver key.Resolver) (Group, error) {
	var group Group
	for _, token := range strings.Split(groupSpec, "-") {
		if token == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptyToken, groupSpec)
		}
		if code, ok := specials[token]; ok {
			group = append(group, code)
			continue
		}
		codes, err := resolver.Resolve(token)
		if err != nil {
			return nil, fmt.Errorf("%w: %q in %q: %v", ErrUnknownToken, token, groupSpec, err)
		}
		group = append(group, codes...)
	}
	return group, nil
}

// String renders the chord back in a readable form for logs.
func (c Chord) String() string {
	groups := make([]string, 0, len(c))
	for _, g := range c {
		names := make([]string, 0, len(g))
		for _, code := range g {
			names = append(names, code.String())
		}
		groups = append(groups, strings.Join(names, "-"))
	}
	return strings.Join(groups, " ")
}
