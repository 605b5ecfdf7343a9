package docent

import (
	"context"
	"time"
)

// Hook is a step lifecycle callback. Before-hooks are awaited before
// the step change commits; a before-hook returning an error aborts the
// transition.
type Hook func(ctx context.Context) error

// Placement hints where a renderer should place the popover relative
// to the target. The engine stores it untouched.
type Placement string

const (
	PlacementAuto   Placement = "auto"
	PlacementTop    Placement = "top"
	PlacementBottom Placement = "bottom"
	PlacementLeft   Placement = "left"
	PlacementRight  Placement = "right"
)

// Action is a custom control a renderer may present alongside the
// built-in navigation.
type Action struct {
	ID      string
	Label   string
	Handler func()
}

// Target locates the surface element a step is anchored to. Resolver
// takes precedence over Query when both are set.
type Target struct {
	// Query is passed to Surface.Find.
	Query string

	// Resolver resolves the element directly, bypassing the surface.
	Resolver func() Element
}

// Query returns a Target resolved through the surface.
func Query(q string) Target {
	return Target{Query: q}
}

// ResolveWith returns a Target resolved by fn.
func ResolveWith(fn func() Element) Target {
	return Target{Resolver: fn}
}

// Step is one stop of a tour. Steps are copied at construction and
// must not be mutated afterwards.
type Step struct {
	// ID uniquely identifies the step within its tour. Empty IDs are
	// filled with generated ones by New.
	ID string

	// Target anchors the step to a surface element. A target that
	// fails to resolve is a degraded state, never an error: the step
	// still becomes current and renderers fall back to an unanchored
	// layout.
	Target Target

	Title   string
	Content string

	// Placement is a rendering hint.
	Placement Placement

	// Class is an opaque presentation hint passed through to
	// renderers.
	Class string

	// Actions are custom controls passed through to renderers.
	Actions []Action

	// AllowInteraction marks the target as clickable through the
	// overlay cutout.
	AllowInteraction bool

	// AutoAdvance moves to the next step after the given delay. Zero
	// disables auto-advance for the step.
	AutoAdvance time.Duration

	OnBeforeShow Hook
	OnAfterShow  Hook
	OnBeforeHide Hook
	OnAfterHide  Hook
}

// resolve locates the step's element, or nil when the target does not
// resolve.
func (s *Step) resolve(surface Surface) Element {
	if s.Target.Resolver != nil {
		return s.Target.Resolver()
	}
	if s.Target.Query == "" || surface == nil {
		return nil
	}
	return surface.Find(s.Target.Query)
}
