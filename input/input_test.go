package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestKeyboard() (*Keyboard, *fakeClock) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	return NewKeyboard(100*time.Millisecond, clk.Now), clk
}

func TestKeyboardHoldWindow(t *testing.T) {
	kb, clk := newTestKeyboard()
	w := RuneKey('w')

	assert.False(t, kb.IsKeyDown(w))

	kb.Press(w)
	assert.True(t, kb.IsKeyDown(w))

	clk.Advance(99 * time.Millisecond)
	assert.True(t, kb.IsKeyDown(w))

	// Auto-repeat extends the hold
	kb.Press(w)
	clk.Advance(99 * time.Millisecond)
	assert.True(t, kb.IsKeyDown(w))

	clk.Advance(time.Millisecond)
	assert.False(t, kb.IsKeyDown(w))

	kb.Press(w)
	kb.Release(w)
	assert.False(t, kb.IsKeyDown(w))
}

func TestKeyOfNormalizesCase(t *testing.T) {
	ev := tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift)
	assert.Equal(t, RuneKey('w'), KeyOf(ev))

	left := tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)
	assert.Equal(t, SpecialKey(tcell.KeyLeft), KeyOf(left))
}

func TestViewSelectorEdgeTriggered(t *testing.T) {
	kb, clk := newTestKeyboard()
	sel := NewViewSelector(8, SpecialKey(tcell.KeyLeft), SpecialKey(tcell.KeyRight))
	right := SpecialKey(tcell.KeyRight)
	left := SpecialKey(tcell.KeyLeft)

	// Holding right across several frames advances once
	kb.Press(right)
	assert.True(t, sel.Update(kb))
	for i := 0; i < 5; i++ {
		clk.Advance(10 * time.Millisecond)
		kb.Press(right)
		assert.False(t, sel.Update(kb))
	}
	assert.Equal(t, 1, sel.Index())

	// Release re-arms
	clk.Advance(200 * time.Millisecond)
	assert.False(t, sel.Update(kb))

	kb.Press(left)
	assert.True(t, sel.Update(kb))
	assert.Equal(t, 0, sel.Index())

	clk.Advance(200 * time.Millisecond)
	sel.Update(kb)
	kb.Press(left)
	sel.Update(kb)
	assert.Equal(t, 7, sel.Index(), "wraps backwards")
}

func TestMachineIntents(t *testing.T) {
	kb, _ := newTestKeyboard()
	m := NewMachine(nil, kb)

	tests := []struct {
		name string
		ev   tcell.Event
		want IntentType
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{"mute", tcell.NewEventKey(tcell.KeyRune, 'M', tcell.ModShift), IntentToggleMute},
		{"pan key", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), IntentNone},
		{"resize", tcell.NewEventResize(80, 24), IntentResize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Process(tt.ev).Type)
		})
	}

	// Key events also feed the keyboard
	assert.True(t, kb.IsKeyDown(RuneKey('w')))
}

func TestPanDelta(t *testing.T) {
	kb, _ := newTestKeyboard()
	table := DefaultKeyTable()

	dx, dy := table.PanDelta(kb)
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	kb.Press(RuneKey('w'))
	kb.Press(RuneKey('d'))
	dx, dy = table.PanDelta(kb)
	assert.Equal(t, float32(1), dx)
	assert.Equal(t, float32(1), dy)

	kb.Press(RuneKey('a'))
	dx, _ = table.PanDelta(kb)
	assert.Zero(t, dx)
}

func TestMachineReversePanReleasesOpposite(t *testing.T) {
	kb, _ := newTestKeyboard()
	m := NewMachine(nil, kb)

	m.Process(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	m.Process(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	require.True(t, kb.IsKeyDown(RuneKey('d')))

	m.Process(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	assert.False(t, kb.IsKeyDown(RuneKey('d')))
	assert.True(t, kb.IsKeyDown(RuneKey('w')), "perpendicular key stays held")

	dx, dy := m.Table().PanDelta(kb)
	assert.Equal(t, float32(-1), dx)
	assert.Equal(t, float32(1), dy)

	assert.Equal(t, []Key{RuneKey('s')}, m.Table().Opposite(RuneKey('w')))
	assert.Empty(t, m.Table().Opposite(RuneKey('m')))
}
