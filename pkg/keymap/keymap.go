// pkg/keymap/keymap.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package keymap translates native key identifiers to the key codes used
// by web-style keyboard events (KeyboardEvent.keyCode).
package keymap

// specialCodes is indexed by k-KeyEscape for the function/navigation range.
// Zero entries are identifiers in that range that name no key; those pass
// through unchanged.
//
// Several entries are aliases because there is no distinct web key code:
// PrintScreen shares NumLock's 144, F13-F25 all report F12's 123, and Menu
// reports Alt's 18. These are kept as-is.
var specialCodes = [KeyLast - KeyEscape + 1]int{
	KeyEscape - KeyEscape:       27,
	KeyEnter - KeyEscape:        13,
	KeyTab - KeyEscape:          9,
	KeyBackspace - KeyEscape:    8,
	KeyInsert - KeyEscape:       45,
	KeyDelete - KeyEscape:       46,
	KeyRight - KeyEscape:        39,
	KeyLeft - KeyEscape:         37,
	KeyDown - KeyEscape:         40,
	KeyUp - KeyEscape:           38,
	KeyPageUp - KeyEscape:       33,
	KeyPageDown - KeyEscape:     34,
	KeyHome - KeyEscape:         36,
	KeyEnd - KeyEscape:          35,
	KeyCapsLock - KeyEscape:     20,
	KeyScrollLock - KeyEscape:   145,
	KeyNumLock - KeyEscape:      144,
	KeyPrintScreen - KeyEscape:  144,
	KeyPause - KeyEscape:        19,
	KeyF1 - KeyEscape:           112,
	KeyF2 - KeyEscape:           113,
	KeyF3 - KeyEscape:           114,
	KeyF4 - KeyEscape:           115,
	KeyF5 - KeyEscape:           116,
	KeyF6 - KeyEscape:           117,
	KeyF7 - KeyEscape:           118,
	KeyF8 - KeyEscape:           119,
	KeyF9 - KeyEscape:           120,
	KeyF10 - KeyEscape:          121,
	KeyF11 - KeyEscape:          122,
	KeyF12 - KeyEscape:          123,
	KeyF13 - KeyEscape:          123,
	KeyF14 - KeyEscape:          123,
	KeyF15 - KeyEscape:          123,
	KeyF16 - KeyEscape:          123,
	KeyF17 - KeyEscape:          123,
	KeyF18 - KeyEscape:          123,
	KeyF19 - KeyEscape:          123,
	KeyF20 - KeyEscape:          123,
	KeyF21 - KeyEscape:          123,
	KeyF22 - KeyEscape:          123,
	KeyF23 - KeyEscape:          123,
	KeyF24 - KeyEscape:          123,
	KeyF25 - KeyEscape:          123,
	KeyKP0 - KeyEscape:          96,
	KeyKP1 - KeyEscape:          97,
	KeyKP2 - KeyEscape:          98,
	KeyKP3 - KeyEscape:          99,
	KeyKP4 - KeyEscape:          100,
	KeyKP5 - KeyEscape:          101,
	KeyKP6 - KeyEscape:          102,
	KeyKP7 - KeyEscape:          103,
	KeyKP8 - KeyEscape:          104,
	KeyKP9 - KeyEscape:          105,
	KeyKPDecimal - KeyEscape:    110,
	KeyKPDivide - KeyEscape:     111,
	KeyKPMultiply - KeyEscape:   106,
	KeyKPSubtract - KeyEscape:   109,
	KeyKPAdd - KeyEscape:        107,
	KeyKPEnter - KeyEscape:      13,
	KeyKPEqual - KeyEscape:      187,
	KeyLeftShift - KeyEscape:    16,
	KeyLeftControl - KeyEscape:  17,
	KeyLeftAlt - KeyEscape:      18,
	KeyLeftSuper - KeyEscape:    91,
	KeyRightShift - KeyEscape:   16,
	KeyRightControl - KeyEscape: 17,
	KeyRightAlt - KeyEscape:     18,
	KeyRightSuper - KeyEscape:   93,
	KeyMenu - KeyEscape:         18,
}

// punctuationCodes holds the printable keys whose web key code differs
// from their ASCII value.
var punctuationCodes = map[Key]int{
	KeySemicolon:    186,
	KeyEqual:        187,
	KeyComma:        188,
	KeyMinus:        189,
	KeyPeriod:       190,
	KeySlash:        191,
	KeyGraveAccent:  192,
	KeyLeftBracket:  219,
	KeyBackslash:    220,
	KeyRightBracket: 221,
	KeyApostrophe:   222,
}

// Map returns the web key code for the native key k. It is total: letters,
// digits and any key without a known translation (including KeyUnknown)
// are returned unchanged.
func Map(k Key) int {
	if k >= KeyEscape && k <= KeyLast {
		if c := specialCodes[k-KeyEscape]; c != 0 {
			return c
		}
		return int(k)
	}
	if c, ok := punctuationCodes[k]; ok {
		return c
	}
	return int(k)
}
