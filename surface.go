package docent

// Point is a position on the host surface, in surface units (CSS
// pixels for a DOM, cells for a terminal).
type Point struct {
	X, Y float64
}

// Size is a width and height pair in surface units.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle in surface units.
type Rect struct {
	X, Y, Width, Height float64
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside the rectangle, edges
// included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Inflate returns the rectangle grown by the given amount on every
// side. Negative amounts shrink it.
func (r Rect) Inflate(by float64) Rect {
	return Rect{
		X:      r.X - by,
		Y:      r.Y - by,
		Width:  r.Width + 2*by,
		Height: r.Height + 2*by,
	}
}

// Element is a resolvable target on the host surface.
type Element interface {
	// Bounds returns the element's rectangle in surface coordinates.
	Bounds() Rect

	// ScrollIntoView brings the element into the visible viewport.
	// Implementations must be synchronous: when it returns, Bounds
	// reflects the scrolled position.
	ScrollIntoView()
}

// Surface is the host environment a tour runs against.
type Surface interface {
	// Find resolves a target query to an element, or nil when the
	// query matches nothing.
	Find(query string) Element

	// Viewport returns the current visible size of the surface.
	Viewport() Size
}

// EventSurface is an optional Surface capability. Surfaces able to
// push input events implement it, and Attach subscribes the tour as
// their handler.
type EventSurface interface {
	Surface

	// Subscribe registers h for input events and returns a function
	// that unsubscribes it.
	Subscribe(h InputHandler) (cancel func())
}

// InputHandler receives host input events. *Tour implements it.
type InputHandler interface {
	HandleKey(key Key)
	HandlePointerDown(p Point)
	HandleResize(viewport Size)
	HandleScroll()
}
