package key

import "fmt"

// Code is a usage ID from the USB HID keyboard/keypad usage page (0x07).
// A chord is transmitted as a set of Codes held down together.
type Code uint8

// Letter and digit usages.
const (
	CodeA Code = 0x04 + iota
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ
	Code1
	Code2
	Code3
	Code4
	Code5
	Code6
	Code7
	Code8
	Code9
	Code0
)

// Control, punctuation, and navigation usages.
const (
	CodeEnter Code = 0x28 + iota
	CodeEscape
	CodeBackspace
	CodeTab
	CodeSpace
	CodeMinus
	CodeEqual
	CodeLeftBracket
	CodeRightBracket
	CodeBackslash
	_ // 0x32 Non-US # and ~
	CodeSemicolon
	CodeQuote
	CodeGrave
	CodeComma
	CodePeriod
	CodeSlash
	CodeCapsLock
	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
)

const (
	CodeInsert Code = 0x49 + iota
	CodeHome
	CodePageUp
	CodeDelete
	CodeEnd
	CodePageDown
	CodeRight
	CodeLeft
	CodeDown
	CodeUp
)

// Modifier usages. These are ordinary codes as far as a chord is
// concerned; holding CodeLeftShift and CodeC together types a capital C.
const (
	CodeLeftCtrl Code = 0xE0 + iota
	CodeLeftShift
	CodeLeftAlt
	CodeLeftGUI
	CodeRightCtrl
	CodeRightShift
	CodeRightAlt
	CodeRightGUI
)

// codeNames maps usages to their canonical display names.
var codeNames = map[Code]string{
	CodeEnter:        "Enter",
	CodeEscape:       "Escape",
	CodeBackspace:    "Backspace",
	CodeTab:          "Tab",
	CodeSpace:        "Space",
	CodeMinus:        "-",
	CodeEqual:        "=",
	CodeLeftBracket:  "[",
	CodeRightBracket: "]",
	CodeBackslash:    `\`,
	CodeSemicolon:    ";",
	CodeQuote:        "'",
	CodeGrave:        "`",
	CodeComma:        ",",
	CodePeriod:       ".",
	CodeSlash:        "/",
	CodeCapsLock:     "CapsLock",
	CodeInsert:       "Insert",
	CodeHome:         "Home",
	CodePageUp:       "PageUp",
	CodeDelete:       "Delete",
	CodeEnd:          "End",
	CodePageDown:     "PageDown",
	CodeRight:        "Right",
	CodeLeft:         "Left",
	CodeDown:         "Down",
	CodeUp:           "Up",
	CodeLeftCtrl:     "Ctrl",
	CodeLeftShift:    "Shift",
	CodeLeftAlt:      "Alt",
	CodeLeftGUI:      "Cmd",
	CodeRightCtrl:    "RCtrl",
	CodeRightShift:   "RShift",
	CodeRightAlt:     "RAlt",
	CodeRightGUI:     "RCmd",
}

// String returns a human-readable name for the usage code.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	switch {
	case c >= CodeA && c <= CodeZ:
		return string(rune('A' + (c - CodeA)))
	case c >= Code1 && c <= Code9:
		return string(rune('1' + (c - Code1)))
	case c == Code0:
		return "0"
	case c >= CodeF1 && c <= CodeF12:
		return fmt.Sprintf("F%d", c-CodeF1+1)
	default:
		return fmt.Sprintf("Code(0x%02X)", uint8(c))
	}
}

// IsModifier returns true if this is a modifier usage (Ctrl, Shift, Alt,
// or GUI, either side).
func (c Code) IsModifier() bool {
	return c >= CodeLeftCtrl && c <= CodeRightGUI
}
