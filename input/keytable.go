package input

import "github.com/gdamore/tcell/v2"

// PanBinding maps a held key to a pan direction on the view plane
type PanBinding struct {
	Key    Key
	DX, DY float32
}

// KeyTable maps keys to intents and pan directions
type KeyTable struct {
	Intents map[Key]IntentType
	Pan     []PanBinding

	ViewPrev, ViewNext Key
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Intents: map[Key]IntentType{
			SpecialKey(tcell.KeyEscape): IntentQuit,
			SpecialKey(tcell.KeyCtrlC):  IntentQuit,
			RuneKey('q'):                IntentQuit,
			RuneKey('m'):                IntentToggleMute,
		},
		Pan: []PanBinding{
			{RuneKey('w'), 0, 1},
			{RuneKey('s'), 0, -1},
			{RuneKey('a'), -1, 0},
			{RuneKey('d'), 1, 0},
		},
		ViewPrev: SpecialKey(tcell.KeyLeft),
		ViewNext: SpecialKey(tcell.KeyRight),
	}
}

// PanDelta sums the directions of every held pan key
func (t *KeyTable) PanDelta(keys KeyState) (dx, dy float32) {
	for _, b := range t.Pan {
		if keys.IsKeyDown(b.Key) {
			dx += b.DX
			dy += b.DY
		}
	}
	return dx, dy
}

// Opposite returns the pan keys bound to the reverse of key's direction
func (t *KeyTable) Opposite(key Key) []Key {
	var out []Key
	for _, b := range t.Pan {
		if b.Key != key {
			continue
		}
		for _, o := range t.Pan {
			if o.DX == -b.DX && o.DY == -b.DY {
				out = append(out, o.Key)
			}
		}
	}
	return out
}
