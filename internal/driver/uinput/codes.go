package uinput

import "github.com/keybowio/keybow/internal/input/key"

// usageToEvent translates HID keyboard usages to Linux input event
// codes. Letters are scattered because event codes follow the physical
// QWERTY rows, not the alphabet.
var usageToEvent = map[key.Code]int{
	key.CodeA: 30,
	key.CodeB: 48,
	key.CodeC: 46,
	key.CodeD: 32,
	key.CodeE: 18,
	key.CodeF: 33,
	key.CodeG: 34,
	key.CodeH: 35,
	key.CodeI: 23,
	key.CodeJ: 36,
	key.CodeK: 37,
	key.CodeL: 38,
	key.CodeM: 50,
	key.CodeN: 49,
	key.CodeO: 24,
	key.CodeP: 25,
	key.CodeQ: 16,
	key.CodeR: 19,
	key.CodeS: 31,
	key.CodeT: 20,
	key.CodeU: 22,
	key.CodeV: 47,
	key.CodeW: 17,
	key.CodeX: 45,
	key.CodeY: 21,
	key.CodeZ: 44,

	key.Code1: 2,
	key.Code2: 3,
	key.Code3: 4,
	key.Code4: 5,
	key.Code5: 6,
	key.Code6: 7,
	key.Code7: 8,
	key.Code8: 9,
	key.Code9: 10,
	key.Code0: 11,

	key.CodeEnter:        28,
	key.CodeEscape:       1,
	key.CodeBackspace:    14,
	key.CodeTab:          15,
	key.CodeSpace:        57,
	key.CodeMinus:        12,
	key.CodeEqual:        13,
	key.CodeLeftBracket:  26,
	key.CodeRightBracket: 27,
	key.CodeBackslash:    43,
	key.CodeSemicolon:    39,
	key.CodeQuote:        40,
	key.CodeGrave:        41,
	key.CodeComma:        51,
	key.CodePeriod:       52,
	key.CodeSlash:        53,
	key.CodeCapsLock:     58,

	key.CodeF1:  59,
	key.CodeF2:  60,
	key.CodeF3:  61,
	key.CodeF4:  62,
	key.CodeF5:  63,
	key.CodeF6:  64,
	key.CodeF7:  65,
	key.CodeF8:  66,
	key.CodeF9:  67,
	key.CodeF10: 68,
	key.CodeF11: 87,
	key.CodeF12: 88,

	key.CodeInsert:   110,
	key.CodeHome:     102,
	key.CodePageUp:   104,
	key.CodeDelete:   111,
	key.CodeEnd:      107,
	key.CodePageDown: 109,
	key.CodeRight:    106,
	key.CodeLeft:     105,
	key.CodeDown:     108,
	key.CodeUp:       103,

	key.CodeLeftCtrl:   29,
	key.CodeLeftShift:  42,
	key.CodeLeftAlt:    56,
	key.CodeLeftGUI:    125,
	key.CodeRightCtrl:  97,
	key.CodeRightShift: 54,
	key.CodeRightAlt:   100,
	key.CodeRightGUI:   126,
}

// eventCode returns the Linux event code for a usage.
func eventCode(code key.Code) (int, bool) {
	ev, ok := usageToEvent[code]
	return ev, ok
}
