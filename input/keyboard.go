// Package input turns terminal events into keyboard state and intents.
//
// Terminals deliver key presses (and auto-repeats) but never releases, so a key counts as held
// for a short window after its last event.
package input

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// DefaultHoldWindow covers the gap between terminal auto-repeat events
const DefaultHoldWindow = 150 * time.Millisecond

// Key identifies a special key or a lower-cased rune
type Key struct {
	Code tcell.Key
	Rune rune
}

// RuneKey builds a Key for a printable character
func RuneKey(r rune) Key {
	return Key{Code: tcell.KeyRune, Rune: unicode.ToLower(r)}
}

// SpecialKey builds a Key for a non-rune key
func SpecialKey(k tcell.Key) Key {
	return Key{Code: k}
}

// KeyOf extracts the Key of an event
func KeyOf(ev *tcell.EventKey) Key {
	if ev.Key() == tcell.KeyRune {
		return RuneKey(ev.Rune())
	}
	return SpecialKey(ev.Key())
}

// KeyState answers held-key queries
type KeyState interface {
	IsKeyDown(k Key) bool
}

// Keyboard tracks which keys are considered held
// Not safe for concurrent use; feed it from the frame loop
type Keyboard struct {
	hold time.Duration
	now  func() time.Time
	last map[Key]time.Time
}

// NewKeyboard creates a tracker; a nil clock uses time.Now
func NewKeyboard(hold time.Duration, now func() time.Time) *Keyboard {
	if now == nil {
		now = time.Now
	}
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &Keyboard{
		hold: hold,
		now:  now,
		last: make(map[Key]time.Time),
	}
}

// Press records a key event
func (k *Keyboard) Press(key Key) {
	k.last[key] = k.now()
}

// Release forgets a key immediately
func (k *Keyboard) Release(key Key) {
	delete(k.last, key)
}

// IsKeyDown reports whether key had an event within the hold window
func (k *Keyboard) IsKeyDown(key Key) bool {
	t, ok := k.last[key]
	if !ok {
		return false
	}
	if k.now().Sub(t) >= k.hold {
		delete(k.last, key)
		return false
	}
	return true
}
