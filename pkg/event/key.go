package event

// NamedKey is a non-character key.
type NamedKey int

const (
	NamedKeyNone NamedKey = iota
	NamedKeyTab
	NamedKeyEnter
	NamedKeyEscape
	NamedKeyBackspace
	NamedKeyDelete
	NamedKeySpace
	NamedKeyArrowUp
	NamedKeyArrowDown
	NamedKeyArrowLeft
	NamedKeyArrowRight
	NamedKeyHome
	NamedKeyEnd
	NamedKeyPageUp
	NamedKeyPageDown
	NamedKeyShift
	NamedKeyControl
	NamedKeyAlt
	NamedKeyMeta
)

// Key is either a named key or a character key. A character key has
// Name == NamedKeyNone and a non-zero Rune.
type Key struct {
	Name NamedKey
	Rune rune
}

// Named constructs a named key.
func Named(name NamedKey) Key {
	return Key{Name: name}
}

// Character constructs a character key.
func Character(r rune) Key {
	return Key{Rune: r}
}

// Modifiers is the set of modifier keys held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModMeta
)

// Shift reports whether shift is held.
func (m Modifiers) Shift() bool { return m&ModShift != 0 }

// Control reports whether control is held.
func (m Modifiers) Control() bool { return m&ModControl != 0 }

// Alt reports whether alt is held.
func (m Modifiers) Alt() bool { return m&ModAlt != 0 }

// Meta reports whether the platform command/super key is held.
func (m Modifiers) Meta() bool { return m&ModMeta != 0 }

// KeyEvent is a key press or release delivered to the focused widget.
type KeyEvent struct {
	// Down is true for a press, false for a release.
	Down      bool
	Key       Key
	Modifiers Modifiers
	// Text is the composed text produced by the press, if any.
	Text string
	// Repeat is true for auto-repeated presses.
	Repeat bool
}
