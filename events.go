package docent

import "context"

// Key identifies the navigation keys a tour reacts to. Adapters map
// their host's key events onto these.
type Key int

const (
	KeyArrowRight Key = iota
	KeyArrowLeft
	KeyEnter
	KeyEscape
)

// HandleKey drives navigation from a key press: right arrow or enter
// advances, left arrow goes back, escape skips. It is a no-op unless
// the tour is active and KeyboardNavigation is enabled. Rejected
// navigation is dropped; key handling is best-effort.
func (t *Tour) HandleKey(key Key) {
	if !t.opts.KeyboardNavigation || t.Status() != StatusActive {
		return
	}
	switch key {
	case KeyArrowRight, KeyEnter:
		_ = t.Next(context.Background())
	case KeyArrowLeft:
		_ = t.Previous(context.Background())
	case KeyEscape:
		t.Skip()
	}
}

// HandlePointerDown skips an active tour when CloseOnClickOutside is
// set and the press lands outside the measured target rectangle. With
// no resolved target every press counts as outside.
func (t *Tour) HandlePointerDown(p Point) {
	if !t.opts.CloseOnClickOutside || t.Status() != StatusActive {
		return
	}
	st := t.State()
	if st.TargetRect != nil && st.TargetRect.Contains(p) {
		return
	}
	t.Skip()
}

// HandleResize re-measures the engaged target against the resized
// viewport. Like the other input handlers it only acts on an active
// tour; a paused tour keeps its last measurement.
func (t *Tour) HandleResize(Size) {
	if t.Status() != StatusActive {
		return
	}
	t.RefreshTarget()
}

// HandleScroll re-measures the engaged target after the surface
// scrolled. Active tours only, as HandleResize.
func (t *Tour) HandleScroll() {
	if t.Status() != StatusActive {
		return
	}
	t.RefreshTarget()
}
