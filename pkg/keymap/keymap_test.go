// pkg/keymap/keymap_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package keymap

import "testing"

func TestMapSpecialKeys(t *testing.T) {
	expected := map[Key]int{
		KeyEscape: 27, KeyEnter: 13, KeyTab: 9, KeyBackspace: 8, KeyInsert: 45, KeyDelete: 46,
		KeyRight: 39, KeyLeft: 37, KeyDown: 40, KeyUp: 38, KeyPageUp: 33, KeyPageDown: 34,
		KeyHome: 36, KeyEnd: 35, KeyCapsLock: 20, KeyScrollLock: 145, KeyNumLock: 144,
		KeyPrintScreen: 144, KeyPause: 19,
		KeyF1: 112, KeyF2: 113, KeyF3: 114, KeyF4: 115, KeyF5: 116, KeyF6: 117, KeyF7: 118,
		KeyF8: 119, KeyF9: 120, KeyF10: 121, KeyF11: 122, KeyF12: 123,
		KeyKP0: 96, KeyKP1: 97, KeyKP2: 98, KeyKP3: 99, KeyKP4: 100, KeyKP5: 101, KeyKP6: 102,
		KeyKP7: 103, KeyKP8: 104, KeyKP9: 105, KeyKPDecimal: 110, KeyKPDivide: 111,
		KeyKPMultiply: 106, KeyKPSubtract: 109, KeyKPAdd: 107, KeyKPEnter: 13, KeyKPEqual: 187,
		KeyLeftShift: 16, KeyLeftControl: 17, KeyLeftAlt: 18, KeyLeftSuper: 91,
		KeyRightShift: 16, KeyRightControl: 17, KeyRightAlt: 18, KeyRightSuper: 93, KeyMenu: 18,
	}
	for k, code := range expected {
		if got := Map(k); got != code {
			t.Errorf("Map(%d) = %d, expected %d", k, got, code)
		}
	}
}

func TestMapFunctionKeyAliases(t *testing.T) {
	// Nothing past F12 has a web key code of its own.
	for k := KeyF13; k <= KeyF25; k++ {
		if got := Map(k); got != 123 {
			t.Errorf("Map(F%d) = %d, expected 123", k-KeyF1+1, got)
		}
	}
}

func TestMapPunctuation(t *testing.T) {
	for _, c := range []struct {
		k    Key
		code int
	}{
		{KeySemicolon, 186},
		{KeyEqual, 187},
		{KeyComma, 188},
		{KeyMinus, 189},
		{KeyPeriod, 190},
		{KeySlash, 191},
		{KeyGraveAccent, 192},
		{KeyLeftBracket, 219},
		{KeyBackslash, 220},
		{KeyRightBracket, 221},
		{KeyApostrophe, 222},
	} {
		if got := Map(c.k); got != c.code {
			t.Errorf("Map(%q) = %d, expected %d", rune(c.k), got, c.code)
		}
	}
}

func TestMapIdentity(t *testing.T) {
	for k := KeyA; k <= KeyZ; k++ {
		if got := Map(k); got != int(k) {
			t.Errorf("Map(%q) = %d, expected identity", rune(k), got)
		}
	}
	for k := Key0; k <= Key9; k++ {
		if got := Map(k); got != int(k) {
			t.Errorf("Map(%q) = %d, expected identity", rune(k), got)
		}
	}
	for _, k := range []Key{KeySpace, KeyWorld1, KeyWorld2, KeyUnknown, 1000} {
		if got := Map(k); got != int(k) {
			t.Errorf("Map(%d) = %d, expected identity", k, got)
		}
	}
}

func TestMapRangeGaps(t *testing.T) {
	// GLFW leaves holes in the function key range; those identifiers name
	// no key and are passed through.
	for _, k := range []Key{270, 279, 285, 289, 315, 319, 337, 339} {
		if got := Map(k); got != int(k) {
			t.Errorf("Map(%d) = %d, expected pass-through", k, got)
		}
	}
}

func TestNames(t *testing.T) {
	names := Names()
	seen := make(map[string]bool)
	for _, nk := range names {
		if seen[nk.Name] {
			t.Errorf("%s: duplicate name", nk.Name)
		}
		seen[nk.Name] = true
	}
	if names[0].Name != "KEY_UNKNOWN" || names[0].Key != KeyUnknown {
		t.Errorf("first entry %+v, expected KEY_UNKNOWN", names[0])
	}
	last := names[len(names)-1]
	if last.Name != "KEY_LAST" || last.Key != KeyMenu {
		t.Errorf("last entry %+v, expected KEY_LAST = KEY_MENU", last)
	}
	if !seen["KEY_KP_EQUAL"] || !seen["KEY_WORLD_2"] {
		t.Errorf("missing expected names")
	}
}
