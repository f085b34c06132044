// pkg/keymap/keys.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package keymap

// Key is a native key identifier. The values are those of GLFW 3: printable
// keys coincide with their 7-bit ASCII code and the function keys live in
// the 256+ range.
type Key int

const (
	KeyUnknown Key = -1

	// Printable keys
	KeySpace        Key = 32
	KeyApostrophe   Key = 39
	KeyComma        Key = 44
	KeyMinus        Key = 45
	KeyPeriod       Key = 46
	KeySlash        Key = 47
	Key0            Key = 48
	Key1            Key = 49
	Key2            Key = 50
	Key3            Key = 51
	Key4            Key = 52
	Key5            Key = 53
	Key6            Key = 54
	Key7            Key = 55
	Key8            Key = 56
	Key9            Key = 57
	KeySemicolon    Key = 59
	KeyEqual        Key = 61
	KeyA            Key = 65
	KeyB            Key = 66
	KeyC            Key = 67
	KeyD            Key = 68
	KeyE            Key = 69
	KeyF            Key = 70
	KeyG            Key = 71
	KeyH            Key = 72
	KeyI            Key = 73
	KeyJ            Key = 74
	KeyK            Key = 75
	KeyL            Key = 76
	KeyM            Key = 77
	KeyN            Key = 78
	KeyO            Key = 79
	KeyP            Key = 80
	KeyQ            Key = 81
	KeyR            Key = 82
	KeyS            Key = 83
	KeyT            Key = 84
	KeyU            Key = 85
	KeyV            Key = 86
	KeyW            Key = 87
	KeyX            Key = 88
	KeyY            Key = 89
	KeyZ            Key = 90
	KeyLeftBracket  Key = 91
	KeyBackslash    Key = 92
	KeyRightBracket Key = 93
	KeyGraveAccent  Key = 96
	KeyWorld1       Key = 161
	KeyWorld2       Key = 162

	// Function keys
	KeyEscape       Key = 256
	KeyEnter        Key = 257
	KeyTab          Key = 258
	KeyBackspace    Key = 259
	KeyInsert       Key = 260
	KeyDelete       Key = 261
	KeyRight        Key = 262
	KeyLeft         Key = 263
	KeyDown         Key = 264
	KeyUp           Key = 265
	KeyPageUp       Key = 266
	KeyPageDown     Key = 267
	KeyHome         Key = 268
	KeyEnd          Key = 269
	KeyCapsLock     Key = 280
	KeyScrollLock   Key = 281
	KeyNumLock      Key = 282
	KeyPrintScreen  Key = 283
	KeyPause        Key = 284
	KeyF1           Key = 290
	KeyF2           Key = 291
	KeyF3           Key = 292
	KeyF4           Key = 293
	KeyF5           Key = 294
	KeyF6           Key = 295
	KeyF7           Key = 296
	KeyF8           Key = 297
	KeyF9           Key = 298
	KeyF10          Key = 299
	KeyF11          Key = 300
	KeyF12          Key = 301
	KeyF13          Key = 302
	KeyF14          Key = 303
	KeyF15          Key = 304
	KeyF16          Key = 305
	KeyF17          Key = 306
	KeyF18          Key = 307
	KeyF19          Key = 308
	KeyF20          Key = 309
	KeyF21          Key = 310
	KeyF22          Key = 311
	KeyF23          Key = 312
	KeyF24          Key = 313
	KeyF25          Key = 314
	KeyKP0          Key = 320
	KeyKP1          Key = 321
	KeyKP2          Key = 322
	KeyKP3          Key = 323
	KeyKP4          Key = 324
	KeyKP5          Key = 325
	KeyKP6          Key = 326
	KeyKP7          Key = 327
	KeyKP8          Key = 328
	KeyKP9          Key = 329
	KeyKPDecimal    Key = 330
	KeyKPDivide     Key = 331
	KeyKPMultiply   Key = 332
	KeyKPSubtract   Key = 333
	KeyKPAdd        Key = 334
	KeyKPEnter      Key = 335
	KeyKPEqual      Key = 336
	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyLeftSuper    Key = 343
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346
	KeyRightSuper   Key = 347
	KeyMenu         Key = 348

	KeyLast = KeyMenu
)

// NamedKey pairs a key with the name under which it is exported to the
// host, e.g. "KEY_LEFT_BRACKET".
type NamedKey struct {
	Name string
	Key  Key
}

// Names returns every named key in the order the host sees them: the
// unknown key, printable keys, function keys and finally KEY_LAST.
func Names() []NamedKey {
	return []NamedKey{
		{"KEY_UNKNOWN", KeyUnknown},

		{"KEY_SPACE", KeySpace},
		{"KEY_APOSTROPHE", KeyApostrophe},
		{"KEY_COMMA", KeyComma},
		{"KEY_MINUS", KeyMinus},
		{"KEY_PERIOD", KeyPeriod},
		{"KEY_SLASH", KeySlash},
		{"KEY_0", Key0}, {"KEY_1", Key1}, {"KEY_2", Key2}, {"KEY_3", Key3}, {"KEY_4", Key4},
		{"KEY_5", Key5}, {"KEY_6", Key6}, {"KEY_7", Key7}, {"KEY_8", Key8}, {"KEY_9", Key9},
		{"KEY_SEMICOLON", KeySemicolon},
		{"KEY_EQUAL", KeyEqual},
		{"KEY_A", KeyA}, {"KEY_B", KeyB}, {"KEY_C", KeyC}, {"KEY_D", KeyD}, {"KEY_E", KeyE},
		{"KEY_F", KeyF}, {"KEY_G", KeyG}, {"KEY_H", KeyH}, {"KEY_I", KeyI}, {"KEY_J", KeyJ},
		{"KEY_K", KeyK}, {"KEY_L", KeyL}, {"KEY_M", KeyM}, {"KEY_N", KeyN}, {"KEY_O", KeyO},
		{"KEY_P", KeyP}, {"KEY_Q", KeyQ}, {"KEY_R", KeyR}, {"KEY_S", KeyS}, {"KEY_T", KeyT},
		{"KEY_U", KeyU}, {"KEY_V", KeyV}, {"KEY_W", KeyW}, {"KEY_X", KeyX}, {"KEY_Y", KeyY},
		{"KEY_Z", KeyZ},
		{"KEY_LEFT_BRACKET", KeyLeftBracket},
		{"KEY_BACKSLASH", KeyBackslash},
		{"KEY_RIGHT_BRACKET", KeyRightBracket},
		{"KEY_GRAVE_ACCENT", KeyGraveAccent},
		{"KEY_WORLD_1", KeyWorld1},
		{"KEY_WORLD_2", KeyWorld2},

		{"KEY_ESCAPE", KeyEscape},
		{"KEY_ENTER", KeyEnter},
		{"KEY_TAB", KeyTab},
		{"KEY_BACKSPACE", KeyBackspace},
		{"KEY_INSERT", KeyInsert},
		{"KEY_DELETE", KeyDelete},
		{"KEY_RIGHT", KeyRight},
		{"KEY_LEFT", KeyLeft},
		{"KEY_DOWN", KeyDown},
		{"KEY_UP", KeyUp},
		{"KEY_PAGE_UP", KeyPageUp},
		{"KEY_PAGE_DOWN", KeyPageDown},
		{"KEY_HOME", KeyHome},
		{"KEY_END", KeyEnd},
		{"KEY_CAPS_LOCK", KeyCapsLock},
		{"KEY_SCROLL_LOCK", KeyScrollLock},
		{"KEY_NUM_LOCK", KeyNumLock},
		{"KEY_PRINT_SCREEN", KeyPrintScreen},
		{"KEY_PAUSE", KeyPause},
		{"KEY_F1", KeyF1}, {"KEY_F2", KeyF2}, {"KEY_F3", KeyF3}, {"KEY_F4", KeyF4},
		{"KEY_F5", KeyF5}, {"KEY_F6", KeyF6}, {"KEY_F7", KeyF7}, {"KEY_F8", KeyF8},
		{"KEY_F9", KeyF9}, {"KEY_F10", KeyF10}, {"KEY_F11", KeyF11}, {"KEY_F12", KeyF12},
		{"KEY_F13", KeyF13}, {"KEY_F14", KeyF14}, {"KEY_F15", KeyF15}, {"KEY_F16", KeyF16},
		{"KEY_F17", KeyF17}, {"KEY_F18", KeyF18}, {"KEY_F19", KeyF19}, {"KEY_F20", KeyF20},
		{"KEY_F21", KeyF21}, {"KEY_F22", KeyF22}, {"KEY_F23", KeyF23}, {"KEY_F24", KeyF24},
		{"KEY_F25", KeyF25},
		{"KEY_KP_0", KeyKP0}, {"KEY_KP_1", KeyKP1}, {"KEY_KP_2", KeyKP2}, {"KEY_KP_3", KeyKP3},
		{"KEY_KP_4", KeyKP4}, {"KEY_KP_5", KeyKP5}, {"KEY_KP_6", KeyKP6}, {"KEY_KP_7", KeyKP7},
		{"KEY_KP_8", KeyKP8}, {"KEY_KP_9", KeyKP9},
		{"KEY_KP_DECIMAL", KeyKPDecimal},
		{"KEY_KP_DIVIDE", KeyKPDivide},
		{"KEY_KP_MULTIPLY", KeyKPMultiply},
		{"KEY_KP_SUBTRACT", KeyKPSubtract},
		{"KEY_KP_ADD", KeyKPAdd},
		{"KEY_KP_ENTER", KeyKPEnter},
		{"KEY_KP_EQUAL", KeyKPEqual},
		{"KEY_LEFT_SHIFT", KeyLeftShift},
		{"KEY_LEFT_CONTROL", KeyLeftControl},
		{"KEY_LEFT_ALT", KeyLeftAlt},
		{"KEY_LEFT_SUPER", KeyLeftSuper},
		{"KEY_RIGHT_SHIFT", KeyRightShift},
		{"KEY_RIGHT_CONTROL", KeyRightControl},
		{"KEY_RIGHT_ALT", KeyRightAlt},
		{"KEY_RIGHT_SUPER", KeyRightSuper},
		{"KEY_MENU", KeyMenu},
		{"KEY_LAST", KeyLast},
	}
}
