package input

// ViewSelector cycles the active view on left/right, once per press
// The swap flag re-arms only after both keys are released
type ViewSelector struct {
	Prev, Next Key

	index   int
	count   int
	swapped bool
}

// NewViewSelector selects view 0 of count
func NewViewSelector(count int, prev, next Key) *ViewSelector {
	return &ViewSelector{Prev: prev, Next: next, count: count}
}

// Index returns the active view
func (s *ViewSelector) Index() int {
	return s.index
}

// Update polls keys once per frame and reports whether the view changed
func (s *ViewSelector) Update(keys KeyState) bool {
	if s.count <= 0 {
		return false
	}
	prev, next := keys.IsKeyDown(s.Prev), keys.IsKeyDown(s.Next)
	if !prev && !next {
		s.swapped = false
		return false
	}
	if s.swapped {
		return false
	}
	s.swapped = true

	switch {
	case next:
		s.index = (s.index + 1) % s.count
	case prev:
		s.index = (s.index - 1 + s.count) % s.count
	}
	return true
}
