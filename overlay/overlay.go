package overlay

import (
	"sync"

	"github.com/docent-dev/docent"
)

// Overlay tracks a backdrop's visibility, target rectangle, and
// rendered path. It is safe for concurrent use; a tour observer
// typically feeds it while a renderer reads it.
type Overlay struct {
	mu          sync.RWMutex
	viewport    docent.Size
	opts        Options
	target      *docent.Rect
	visible     bool
	interactive bool
	path        string
}

// New creates a hidden overlay for the given viewport. Option
// overrides apply on top of DefaultOptions and persist until changed
// by a later call.
func New(viewport docent.Size, opts ...Option) *Overlay {
	return &Overlay{
		viewport: viewport,
		opts:     DefaultOptions().apply(opts),
	}
}

// Show marks the overlay visible around target and recomputes the
// path. Options given here merge over the overlay's current options;
// unspecified fields keep their prior value, not the default.
func (o *Overlay) Show(target docent.Rect, opts ...Option) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.show(target, opts, false)
}

// ShowInteractive is Show with pointer events let through the
// backdrop, for steps that allow interacting with the highlighted
// element.
func (o *Overlay) ShowInteractive(target docent.Rect, opts ...Option) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.show(target, opts, true)
}

func (o *Overlay) show(target docent.Rect, opts []Option, interactive bool) {
	t := target
	o.target = &t
	o.opts = o.opts.apply(opts)
	o.visible = true
	o.interactive = interactive
	o.recomputeLocked()
}

// Hide marks the overlay invisible and discards the stored target, so
// later viewport changes have nothing to recompute against.
func (o *Overlay) Hide() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.visible = false
	o.interactive = false
	o.target = nil
	o.path = ""
}

// Refresh recomputes the path for a moved target, with the same
// semantics as Show except that a hidden overlay stays hidden: calling
// Refresh on scroll or resize cannot make an overlay appear.
func (o *Overlay) Refresh(target docent.Rect, opts ...Option) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.visible {
		return
	}
	o.show(target, opts, o.interactive)
}

// SetViewport records a new viewport size and, while visible,
// recomputes the path against the stored target rectangle. It does not
// re-measure the target; that is the tour's job.
func (o *Overlay) SetViewport(viewport docent.Size) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.viewport = viewport
	o.recomputeLocked()
}

// Path returns the current cutout path, empty when there is nothing to
// draw.
func (o *Overlay) Path() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.path
}

// Visible reports whether the overlay should be drawn.
func (o *Overlay) Visible() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.visible
}

// Viewport returns the viewport the path is computed against.
func (o *Overlay) Viewport() docent.Size {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.viewport
}

// Target returns the stored target rectangle, if any.
func (o *Overlay) Target() (docent.Rect, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.target == nil {
		return docent.Rect{}, false
	}
	return *o.target, true
}

// Options returns the overlay's current merged options.
func (o *Overlay) Options() Options {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.opts
}

func (o *Overlay) recomputeLocked() {
	if !o.visible || o.target == nil {
		o.path = ""
		return
	}
	o.path = CutoutPath(o.viewport, *o.target, o.opts.Padding, o.opts.Radius)
}
