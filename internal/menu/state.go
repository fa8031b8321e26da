package menu

// maxViewportRows caps how many items are shown before scrolling.
const maxViewportRows = 30

// reservedRows is the frame overhead around the item list: borders,
// header, separators, scroll indicator and the control-hint footer.
const reservedRows = 8

// State tracks the cursor and the visible window over the item list.
//
// Invariants (for a non-empty list of length n):
//
//	0 <= SelectedIndex < n
//	0 <= ScrollOffset <= SelectedIndex
//	SelectedIndex < ScrollOffset + ViewportHeight
type State struct {
	Items          []Item
	SelectedIndex  int
	ScrollOffset   int
	ViewportHeight int
}

// NewState builds the initial state for a loaded item list.
func NewState(items []Item, terminalRows int) *State {
	return &State{
		Items:          items,
		ViewportHeight: ViewportHeightFor(terminalRows),
	}
}

// ViewportHeightFor derives the visible item count from the terminal
// height, clamped to at least one row so tiny terminals still work.
func ViewportHeightFor(terminalRows int) int {
	height := terminalRows - reservedRows
	if height > maxViewportRows {
		height = maxViewportRows
	}
	if height < 1 {
		height = 1
	}
	return height
}

// MoveDown advances the selection, wrapping past the end to the top.
func (s *State) MoveDown() {
	if len(s.Items) == 0 {
		return
	}
	s.SelectedIndex = (s.SelectedIndex + 1) % len(s.Items)
	s.reconcileScroll()
}

// MoveUp retreats the selection, wrapping before the start to the bottom.
func (s *State) MoveUp() {
	if len(s.Items) == 0 {
		return
	}
	s.SelectedIndex = (s.SelectedIndex - 1 + len(s.Items)) % len(s.Items)
	s.reconcileScroll()
}

// Selected returns the item under the cursor, or nil for an empty list.
func (s *State) Selected() *Item {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Items) {
		return nil
	}
	return &s.Items[s.SelectedIndex]
}

// reconcileScroll drags the window so the selection stays visible.
func (s *State) reconcileScroll() {
	if s.SelectedIndex < s.ScrollOffset {
		s.ScrollOffset = s.SelectedIndex
	} else if s.SelectedIndex >= s.ScrollOffset+s.ViewportHeight {
		s.ScrollOffset = s.SelectedIndex - s.ViewportHeight + 1
	}
}

// VisibleRange returns the half-open [start, end) slice of items that
// fit in the viewport at the current scroll offset.
func (s *State) VisibleRange() (start, end int) {
	start = s.ScrollOffset
	end = start + s.ViewportHeight
	if end > len(s.Items) {
		end = len(s.Items)
	}
	return start, end
}

// Overflows reports whether the list is taller than the viewport, i.e.
// whether a scroll indicator is needed.
func (s *State) Overflows() bool {
	return len(s.Items) > s.ViewportHeight
}
