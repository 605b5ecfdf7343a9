package docent

import (
	"context"
	"sync"
	"testing"
)

type frameRecorder struct {
	mu     sync.Mutex
	frames []RenderContext
}

func (r *frameRecorder) record(rc RenderContext) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, rc)
}

func (r *frameRecorder) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

func (r *frameRecorder) last() RenderContext {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames[len(r.frames)-1]
}

func TestHeadlessRendersImmediately(t *testing.T) {
	tour, _ := CreateSimpleTour(t)
	rec := &frameRecorder{}

	cancel := tour.Headless(rec.record)
	defer cancel()

	if rec.len() != 1 {
		t.Fatalf("frames after registration = %d, want 1", rec.len())
	}
	if rec.last().State.Status != StatusIdle {
		t.Errorf("initial frame status = %s, want %s", rec.last().State.Status, StatusIdle)
	}
}

func TestHeadlessRendersOnEveryChange(t *testing.T) {
	tour, _ := CreateSimpleTour(t)
	rec := &frameRecorder{}
	cancel := tour.Headless(rec.record)
	defer cancel()

	if err := tour.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := tour.Next(context.Background()); err != nil {
		t.Fatalf("Next: %v", err)
	}

	// Initial frame, started, then one per step change.
	if rec.len() < 3 {
		t.Fatalf("frames = %d, want at least 3", rec.len())
	}
	last := rec.last()
	if last.State.StepIndex != 1 {
		t.Errorf("last frame index = %d, want 1", last.State.StepIndex)
	}
	if last.State.Step == nil || last.State.Step.ID != "two" {
		t.Errorf("last frame step = %+v, want id two", last.State.Step)
	}
}

func TestHeadlessControlsDriveTheTour(t *testing.T) {
	tour, _ := CreateSimpleTour(t)
	rec := &frameRecorder{}
	cancel := tour.Headless(rec.record)
	defer cancel()

	ctrl := rec.last().Controls
	if err := ctrl.Start(context.Background()); err != nil {
		t.Fatalf("Start via controls: %v", err)
	}
	if err := ctrl.Next(context.Background()); err != nil {
		t.Fatalf("Next via controls: %v", err)
	}
	AssertStepIndex(t, tour, 1)
}

func TestHeadlessCloseSkips(t *testing.T) {
	tour, _ := CreateSimpleTour(t)
	var skipped bool
	tour.opts.Callbacks.OnSkip = func(State) { skipped = true }

	rec := &frameRecorder{}
	cancel := tour.Headless(rec.record)
	defer cancel()

	if err := tour.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	rec.last().Close()

	AssertStatus(t, tour, StatusIdle)
	if !skipped {
		t.Error("Close did not route through Skip")
	}
}

func TestHeadlessCancelStopsFrames(t *testing.T) {
	tour, _ := CreateSimpleTour(t)
	rec := &frameRecorder{}
	cancel := tour.Headless(rec.record)

	cancel()
	before := rec.len()

	if err := tour.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if rec.len() != before {
		t.Errorf("frames after cancel = %d, want %d", rec.len(), before)
	}
}

func TestHeadlessFrameCarriesOptions(t *testing.T) {
	tour, _ := CreateSimpleTour(t)
	rec := &frameRecorder{}
	cancel := tour.Headless(rec.record)
	defer cancel()

	if got := rec.last().Options.Labels.Next; got != "Next" {
		t.Errorf("frame label = %q, want %q", got, "Next")
	}
}
