package key

import (
	"errors"
	"testing"
)

func TestResolveLetters(t *testing.T) {
	layout := NewUSLayout()

	tests := []struct {
		name string
		want []Code
	}{
		{"a", []Code{CodeA}},
		{"z", []Code{CodeZ}},
		// Letters name the key, not the glyph: no implicit Shift.
		{"C", []Code{CodeC}},
		{"M", []Code{CodeM}},
	}
	for _, tt := range tests {
		got, err := layout.Resolve(tt.name)
		if err != nil {
			t.Errorf("Resolve(%q) error: %v", tt.name, err)
			continue
		}
		if !equalCodes(got, tt.want) {
			t.Errorf("Resolve(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestResolveDigitsAndPunctuation(t *testing.T) {
	layout := NewUSLayout()

	tests := []struct {
		name string
		want []Code
	}{
		{"1", []Code{Code1}},
		{"0", []Code{Code0}},
		{"-", []Code{CodeMinus}},
		{"/", []Code{CodeSlash}},
		// Shifted glyphs expand to Shift plus the base usage.
		{"%", []Code{CodeLeftShift, Code5}},
		{"{", []Code{CodeLeftShift, CodeLeftBracket}},
		{"?", []Code{CodeLeftShift, CodeSlash}},
	}
	for _, tt := range tests {
		got, err := layout.Resolve(tt.name)
		if err != nil {
			t.Errorf("Resolve(%q) error: %v", tt.name, err)
			continue
		}
		if !equalCodes(got, tt.want) {
			t.Errorf("Resolve(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestResolveNamedKeys(t *testing.T) {
	layout := NewUSLayout()

	tests := []struct {
		name string
		want Code
	}{
		{"enter", CodeEnter},
		{"Enter", CodeEnter},
		{"ESC", CodeEscape},
		{"f4", CodeF4},
		{"pagedown", CodePageDown},
	}
	for _, tt := range tests {
		got, err := layout.Resolve(tt.name)
		if err != nil {
			t.Errorf("Resolve(%q) error: %v", tt.name, err)
			continue
		}
		if len(got) != 1 || got[0] != tt.want {
			t.Errorf("Resolve(%q) = %v, want [%v]", tt.name, got, tt.want)
		}
	}
}

func TestResolveUnknown(t *testing.T) {
	layout := NewUSLayout()
	for _, name := range []string{"", "unicorn", "é", "f13"} {
		if _, err := layout.Resolve(name); !errors.Is(err, ErrUnknownKeyName) {
			t.Errorf("Resolve(%q) error = %v, want ErrUnknownKeyName", name, err)
		}
	}
}

func equalCodes(a, b []Code) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
