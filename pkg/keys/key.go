// Package keys defines the synthetic-key identifiers used by the held-key
// repeat thread and the command interpreter's key-name lookups.
package keys

import "fmt"

// Kind is the discriminant tag of a Key. Two keys are equal for held-set
// purposes when their Discriminant matches: the Kind alone for most keys,
// plus the Rune for Unicode and Media keys and the Num for Function keys (so
// Unicode('w') and Unicode('a') are distinct, but any two Arrow-up keys
// collapse to one).
type Kind uint8

const (
	KindUnicode Kind = iota
	KindShift
	KindControl
	KindAlt
	KindMeta
	KindArrowUp
	KindArrowDown
	KindArrowLeft
	KindArrowRight
	KindSpace
	KindEnter
	KindTab
	KindEscape
	KindBackspace
	KindHome
	KindEnd
	KindPageUp
	KindPageDown
	KindFunction
	KindMedia
)

// Key is a synthetic keyboard key. Rune and Num are only meaningful for
// KindUnicode and KindFunction respectively; every other Kind ignores them.
type Key struct {
	Kind Kind
	Rune rune
	Num  int
}

func Unicode(r rune) Key     { return Key{Kind: KindUnicode, Rune: r} }
func Function(n int) Key     { return Key{Kind: KindFunction, Num: n} }
func Media(name string) Key  { return Key{Kind: KindMedia, Rune: mediaTag(name)} }

func mediaTag(name string) rune {
	// cheap distinct-rune packing so each named media key keeps its own
	// discriminant slot instead of collapsing onto one KindMedia bucket
	var h rune
	for _, c := range name {
		h = h*31 + c
	}
	return h
}

// Discriminant returns the value used for held-set equality and hashing:
// the Kind, plus the Rune when the Kind itself isn't unique enough to
// distinguish keys (Unicode letters, distinct media keys, function keys).
func (k Key) Discriminant() (Kind, rune, int) {
	switch k.Kind {
	case KindUnicode, KindMedia:
		return k.Kind, k.Rune, 0
	case KindFunction:
		return k.Kind, 0, k.Num
	default:
		return k.Kind, 0, 0
	}
}

func (k Key) String() string {
	switch k.Kind {
	case KindUnicode:
		return fmt.Sprintf("Unicode(%q)", k.Rune)
	case KindFunction:
		return fmt.Sprintf("F%d", k.Num)
	case KindMedia:
		return "Media"
	default:
		return kindNames[k.Kind]
	}
}

var kindNames = map[Kind]string{
	KindShift:      "Shift",
	KindControl:    "Control",
	KindAlt:        "Alt",
	KindMeta:       "Meta",
	KindArrowUp:    "ArrowUp",
	KindArrowDown:  "ArrowDown",
	KindArrowLeft:  "ArrowLeft",
	KindArrowRight: "ArrowRight",
	KindSpace:      "Space",
	KindEnter:      "Enter",
	KindTab:        "Tab",
	KindEscape:     "Escape",
	KindBackspace:  "Backspace",
	KindHome:       "Home",
	KindEnd:        "End",
	KindPageUp:     "PageUp",
	KindPageDown:   "PageDown",
}

// Action is the action.Injector verb for a single key event.
type Action uint8

const (
	Press Action = iota
	Release
	Click
)
