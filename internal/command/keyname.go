package command

import "github.com/sqrew/ss9k/pkg/keys"

// parseKeyName maps a spoken key name to a synthetic Key, for the `hold` and
// `release` built-ins. Grounded on original_source/src/lookups.rs's
// parse_key_name: letters a-z, modifiers, arrows, and
// space/enter/tab/escape/backspace. Num0-9 and F-key names are not
// recognized here.
func parseKeyName(name string) (keys.Key, bool) {
	switch name {
	case "a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
		"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z":
		return keys.Unicode(rune(name[0])), true

	case "shift":
		return keys.Key{Kind: keys.KindShift}, true
	case "control", "ctrl":
		return keys.Key{Kind: keys.KindControl}, true
	case "alt":
		return keys.Key{Kind: keys.KindAlt}, true
	case "meta", "super", "windows", "win":
		return keys.Key{Kind: keys.KindMeta}, true

	case "up", "arrow up":
		return keys.Key{Kind: keys.KindArrowUp}, true
	case "down", "arrow down":
		return keys.Key{Kind: keys.KindArrowDown}, true
	case "left", "arrow left":
		return keys.Key{Kind: keys.KindArrowLeft}, true
	case "right", "arrow right":
		return keys.Key{Kind: keys.KindArrowRight}, true

	case "space":
		return keys.Key{Kind: keys.KindSpace}, true
	case "enter", "return":
		return keys.Key{Kind: keys.KindEnter}, true
	case "tab":
		return keys.Key{Kind: keys.KindTab}, true
	case "escape", "esc":
		return keys.Key{Kind: keys.KindEscape}, true
	case "backspace":
		return keys.Key{Kind: keys.KindBackspace}, true

	default:
		return keys.Key{}, false
	}
}
