package teatour

import (
	"sync"

	"github.com/docent-dev/docent"
)

// Surface exposes named rectangular regions of a terminal layout as
// tour targets. Hosts update regions as they lay out each frame; the
// tour finds them by name.
type Surface struct {
	mu       sync.RWMutex
	viewport docent.Size
	regions  map[string]*Region
	handlers []docent.InputHandler
}

// Region is a named rectangle on the surface. Its identity is stable
// across SetRegion calls, so an engaged tour re-measures the same
// element as the layout moves.
type Region struct {
	mu   sync.Mutex
	rect docent.Rect
}

var (
	_ docent.Surface      = (*Surface)(nil)
	_ docent.EventSurface = (*Surface)(nil)
	_ docent.Element      = (*Region)(nil)
)

// Bounds returns the region's current rectangle in cell coordinates.
func (r *Region) Bounds() docent.Rect {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rect
}

// ScrollIntoView is a no-op: terminal layouts do not scroll.
func (r *Region) ScrollIntoView() {}

func (r *Region) setRect(rect docent.Rect) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rect = rect
}

// NewSurface creates a surface for a terminal of the given size, in
// cells.
func NewSurface(width, height int) *Surface {
	return &Surface{
		viewport: docent.Size{Width: float64(width), Height: float64(height)},
		regions:  make(map[string]*Region),
	}
}

// SetRegion creates or moves the named region and returns it.
func (s *Surface) SetRegion(name string, rect docent.Rect) *Region {
	s.mu.Lock()
	defer s.mu.Unlock()
	region, ok := s.regions[name]
	if !ok {
		region = &Region{rect: rect}
		s.regions[name] = region
		return region
	}
	region.setRect(rect)
	return region
}

// RemoveRegion drops the named region.
func (s *Surface) RemoveRegion(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.regions, name)
}

// Find returns the region registered under query, or nil.
func (s *Surface) Find(query string) docent.Element {
	s.mu.RLock()
	defer s.mu.RUnlock()
	region, ok := s.regions[query]
	if !ok {
		return nil
	}
	return region
}

// Viewport returns the terminal size in cells.
func (s *Surface) Viewport() docent.Size {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewport
}

// Resize records a new terminal size and notifies subscribers. Hosts
// call it on tea.WindowSizeMsg, after repositioning their regions.
func (s *Surface) Resize(width, height int) {
	viewport := docent.Size{Width: float64(width), Height: float64(height)}

	s.mu.Lock()
	s.viewport = viewport
	handlers := make([]docent.InputHandler, len(s.handlers))
	copy(handlers, s.handlers)
	s.mu.Unlock()

	for _, h := range handlers {
		h.HandleResize(viewport)
	}
}

// Subscribe registers h for surface events.
func (s *Surface) Subscribe(h docent.InputHandler) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers = append(s.handlers, h)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, existing := range s.handlers {
			if existing == h {
				s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
				return
			}
		}
	}
}
