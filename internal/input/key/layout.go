package key

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKeyName indicates a name that no layout entry matches.
var ErrUnknownKeyName = errors.New("unknown key name")

// Resolver maps a human-readable key name to the usage codes that type
// it. A shifted character resolves to two codes (Shift, then the base
// usage); most names resolve to one.
type Resolver interface {
	Resolve(name string) ([]Code, error)
}

// USLayout resolves names against the US keyboard layout.
type USLayout struct{}

// NewUSLayout creates a US-layout resolver.
func NewUSLayout() USLayout {
	return USLayout{}
}

// charEntry describes how one printable character is typed.
type charEntry struct {
	code  Code
	shift bool
}

// shiftedChars covers the printable characters that are not letters or
// digits. Letters and digits are computed in charFor.
var shiftedChars = map[rune]charEntry{
	' ':  {CodeSpace, false},
	'-':  {CodeMinus, false},
	'_':  {CodeMinus, true},
	'=':  {CodeEqual, false},
	'+':  {CodeEqual, true},
	'[':  {CodeLeftBracket, false},
	'{':  {CodeLeftBracket, true},
	']':  {CodeRightBracket, false},
	'}':  {CodeRightBracket, true},
	'\\': {CodeBackslash, false},
	'|':  {CodeBackslash, true},
	';':  {CodeSemicolon, false},
	':':  {CodeSemicolon, true},
	'\'': {CodeQuote, false},
	'"':  {CodeQuote, true},
	'`':  {CodeGrave, false},
	'~':  {CodeGrave, true},
	',':  {CodeComma, false},
	'<':  {CodeComma, true},
	'.':  {CodePeriod, false},
	'>':  {CodePeriod, true},
	'/':  {CodeSlash, false},
	'?':  {CodeSlash, true},
	'!':  {Code1, true},
	'@':  {Code2, true},
	'#':  {Code3, true},
	'$':  {Code4, true},
	'%':  {Code5, true},
	'^':  {Code6, true},
	'&':  {Code7, true},
	'*':  {Code8, true},
	'(':  {Code9, true},
	')':  {Code0, true},
}

// namedKeys maps multi-character key names (lowercase) to usages.
var namedKeys = map[string]Code{
	"enter":     CodeEnter,
	"return":    CodeEnter,
	"escape":    CodeEscape,
	"esc":       CodeEscape,
	"backspace": CodeBackspace,
	"delete":    CodeDelete,
	"del":       CodeDelete,
	"insert":    CodeInsert,
	"home":      CodeHome,
	"end":       CodeEnd,
	"pageup":    CodePageUp,
	"pagedown":  CodePageDown,
	"capslock":  CodeCapsLock,
	"f1":        CodeF1,
	"f2":        CodeF2,
	"f3":        CodeF3,
	"f4":        CodeF4,
	"f5":        CodeF5,
	"f6":        CodeF6,
	"f7":        CodeF7,
	"f8":        CodeF8,
	"f9":        CodeF9,
	"f10":       CodeF10,
	"f11":       CodeF11,
	"f12":       CodeF12,
}

// charFor returns the layout entry for a single printable ASCII
// character, or false if the layout cannot type it.
func charFor(r rune) (charEntry, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return charEntry{CodeA + Code(r-'a'), false}, true
	case r >= 'A' && r <= 'Z':
		// Letters name the key, not the glyph: "C" in a chord means the C
		// key, so no implicit Shift. Use an explicit shift token to type a
		// capital.
		return charEntry{CodeA + Code(r-'A'), false}, true
	case r >= '1' && r <= '9':
		return charEntry{Code1 + Code(r-'1'), false}, true
	case r == '0':
		return charEntry{Code0, false}, true
	}
	entry, ok := shiftedChars[r]
	return entry, ok
}

// Resolve implements Resolver for the US layout.
func (USLayout) Resolve(name string) ([]Code, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnknownKeyName)
	}

	runes := []rune(name)
	if len(runes) == 1 {
		entry, ok := charFor(runes[0])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKeyName, name)
		}
		if entry.shift {
			return []Code{CodeLeftShift, entry.code}, nil
		}
		return []Code{entry.code}, nil
	}

	if code, ok := namedKeys[strings.ToLower(name)]; ok {
		return []Code{code}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKeyName, name)
}
