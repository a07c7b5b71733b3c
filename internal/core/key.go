package core

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Key is a single key press delivered by a Surface.
// Printable keys are their rune; special keys use the negative constants.
type Key rune

// Special keys. KeyNone is the "no key" sentinel and is never delivered.
const (
	KeyNone  Key = 0
	KeyEnter Key = -(iota)
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyBackspace
	KeyTab
)

// KeySpace is the space bar.
const KeySpace Key = ' '

var keyNames = map[string]Key{
	"enter":     KeyEnter,
	"esc":       KeyEscape,
	"escape":    KeyEscape,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"backspace": KeyBackspace,
	"tab":       KeyTab,
	"space":     KeySpace,
}

// String returns the name used for the key in config files.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeySpace:
		return "space"
	}
	for name, key := range keyNames {
		if key == k && name != "escape" {
			return name
		}
	}
	if k > 0 {
		return string(rune(k))
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// ParseKey parses a key name from config. Names are case-insensitive for
// special keys; a single character is taken literally, so "x" and "X" differ.
func ParseKey(name string) (Key, error) {
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return Key(r), nil
	}
	if k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return KeyNone, fmt.Errorf("core: unknown key %q", name)
}

// KeySet is a set of keys bound to the same action.
type KeySet map[Key]struct{}

// NewKeySet builds a set from the given keys.
func NewKeySet(keys ...Key) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// ParseKeySet parses every name into a KeySet.
func ParseKeySet(names []string) (KeySet, error) {
	s := make(KeySet, len(names))
	for _, n := range names {
		k, err := ParseKey(n)
		if err != nil {
			return nil, err
		}
		s[k] = struct{}{}
	}
	return s, nil
}

// Has reports whether k is in the set.
func (s KeySet) Has(k Key) bool {
	_, ok := s[k]
	return ok
}
