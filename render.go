package docent

import "context"

// Controls is the navigation surface handed to renderers. *Tour
// implements it.
type Controls interface {
	Start(ctx context.Context) error
	StartAt(ctx context.Context, index int) error
	Next(ctx context.Context) error
	Previous(ctx context.Context) error
	GoTo(ctx context.Context, index int) error
	GoToID(ctx context.Context, id string) error
	Pause() error
	Resume() error
	Complete(ctx context.Context) error
	Skip()
	Stop()
	State() State
}

// RenderContext is the frame handed to headless renderers: everything
// needed to draw a tour and drive it.
type RenderContext struct {
	State    State
	Controls Controls
	Options  Options

	// Close abandons the tour; it is an alias for Skip.
	Close func()
}

// Headless registers render as a frame consumer. It is invoked once
// immediately with the current state, then after every state change.
// The returned cancel unregisters it.
func (t *Tour) Headless(render func(RenderContext)) (cancel func()) {
	obs := &headlessObserver{tour: t, render: render}
	t.observers.AddObserver(obs)
	render(t.frame())
	return func() {
		t.observers.RemoveObserver(obs)
	}
}

func (t *Tour) frame() RenderContext {
	return RenderContext{
		State:    t.State(),
		Controls: t,
		Options:  t.opts,
		Close:    t.Skip,
	}
}

type headlessObserver struct {
	tour   *Tour
	render func(RenderContext)
}

func (h *headlessObserver) OnStateChange(State) {
	h.render(h.tour.frame())
}
