// Package render draws the entity store into a terminal with orthographic views.
package render

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/cubular/engine"
	"github.com/lixenwraith/cubular/parameter"
	"github.com/lixenwraith/cubular/vmath"
)

// ErrNoViews is returned when a renderer is created without views
var ErrNoViews = errors.New("renderer needs at least one view")

var bgStyle = tcell.StyleDefault.Background(tcell.ColorBlack)

// Glyph returns the rune drawn for a tag
func Glyph(tag engine.Tag) rune {
	switch tag {
	case engine.TagFloor:
		return parameter.GlyphFloor
	case engine.TagWall:
		return parameter.GlyphWall
	case engine.TagCube:
		return parameter.GlyphCube
	case engine.TagSoundCube:
		return parameter.GlyphSoundCube
	default:
		return parameter.GlyphObject
	}
}

type drawItem struct {
	id     engine.ID
	depth  float32
	x0, y0 int
	x1, y1 int
}

// Terminal renders into a tcell screen
// Not safe for concurrent use; the frame loop owns it
type Terminal struct {
	screen tcell.Screen
	views  []View
	active int
	status string
	log    *zap.Logger

	items []drawItem
}

// NewTerminal creates a renderer over screen; views are copied
func NewTerminal(screen tcell.Screen, views []View, logger *zap.Logger) (*Terminal, error) {
	if len(views) == 0 {
		return nil, ErrNoViews
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Terminal{
		screen: screen,
		views:  slices.Clone(views),
		log:    logger,
	}, nil
}

// ViewCount returns the number of views
func (t *Terminal) ViewCount() int {
	return len(t.views)
}

// SetView selects view i, wrapping out-of-range indices
func (t *Terminal) SetView(i int) {
	n := len(t.views)
	t.active = ((i % n) + n) % n
	t.log.Debug("view selected", zap.Int("index", t.active), zap.String("name", t.views[t.active].Name))
}

// View returns the active view
func (t *Terminal) View() View {
	return t.views[t.active]
}

// ViewIndex returns the active view index
func (t *Terminal) ViewIndex() int {
	return t.active
}

// PanView moves the active view
func (t *Terminal) PanView(dx, dy float32) {
	t.views[t.active].Pan(dx, dy)
}

// SetStatus sets the trailing text of the status bar
func (t *Terminal) SetStatus(s string) {
	t.status = s
}

// Render draws every entity of store, farthest first, then the status bar
func (t *Terminal) Render(store *engine.Store, frame uint64) error {
	w, h := t.screen.Size()
	gh := h - parameter.StatusBarHeight
	t.screen.Fill(' ', bgStyle)
	if w <= 0 || gh <= 0 {
		t.screen.Show()
		return nil
	}

	v := t.views[t.active]
	t.items = t.items[:0]
	store.Each(func(id engine.ID, e *engine.Entity) {
		lo, hi := vmath.Footprint(e.Model())
		if !vmath.V3Finite(lo) || !vmath.V3Finite(hi) {
			return
		}
		x0, y0, x1, y1 := v.Rect(lo, hi, w, gh)
		if x1 <= 0 || y1 <= 0 || x0 >= w || y0 >= gh {
			return
		}
		t.items = append(t.items, drawItem{
			id:    id,
			depth: v.Depth(e.Position),
			x0:    max(x0, 0),
			y0:    max(y0, 0),
			x1:    min(x1, w),
			y1:    min(y1, gh),
		})
	})

	// Painter's order; ties keep store order
	slices.SortStableFunc(t.items, func(a, b drawItem) int {
		return cmp.Compare(b.depth, a.depth)
	})

	for _, it := range t.items {
		e := store.Get(it.id)
		style := bgStyle.Foreground(RGB(e.Color))
		g := Glyph(e.Tag)
		for y := it.y0; y < it.y1; y++ {
			for x := it.x0; x < it.x1; x++ {
				t.screen.SetContent(x, y, g, nil, style)
			}
		}
	}

	t.drawStatus(w, h, frame, len(t.items))
	t.screen.Show()
	return nil
}

func (t *Terminal) drawStatus(w, h int, frame uint64, visible int) {
	v := t.views[t.active]
	line := fmt.Sprintf(" [%d/%d] %s  frame %d  visible %d  center (%.1f, %.1f, %.1f)",
		t.active+1, len(t.views), v.Name, frame, visible, v.Center[0], v.Center[1], v.Center[2])
	if t.status != "" {
		line += "  " + t.status
	}

	style := tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite)
	y := h - parameter.StatusBarHeight
	x := 0
	for _, r := range line {
		if x >= w {
			break
		}
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		t.screen.SetContent(x, y, ' ', nil, style)
	}
}
