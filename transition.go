package docent

import (
	"context"
	"fmt"
	"time"
)

// HookPhase names the lifecycle hook positions of the step-change
// protocol.
type HookPhase string

const (
	PhaseBeforeShow HookPhase = "before-show"
	PhaseAfterShow  HookPhase = "after-show"
	PhaseBeforeHide HookPhase = "before-hide"
	PhaseAfterHide  HookPhase = "after-hide"
)

// runHook invokes one lifecycle hook. A nil hook succeeds.
func runHook(ctx context.Context, step *Step, phase HookPhase, hook Hook) error {
	if hook == nil {
		return nil
	}
	if err := hook(ctx); err != nil {
		return NewHookError(step.ID, phase, err)
	}
	return nil
}

// transitionTo runs the step-change protocol: await the leaving
// before-hide and entering before-show hooks, commit the index,
// resolve and measure the target, then fire after-hooks, callbacks and
// observers, and arm auto-advance.
//
// Before-hooks run outside the lock; they may be slow and may read
// tour state. While they run, rival navigation is rejected with
// ErrCodeTransitionPending. Skip and Stop are exempt: they flip the
// status, which the commit re-check below catches.
func (t *Tour) transitionTo(ctx context.Context, dest int, direction Direction, op string) error {
	t.mu.Lock()
	if t.status != StatusActive {
		status := t.status
		t.mu.Unlock()
		return NewNavigationError(ErrCodeInvalidStatus, op, status, "tour is not active")
	}
	if t.transitioning {
		status := t.status
		t.mu.Unlock()
		return NewNavigationError(ErrCodeTransitionPending, op, status, "a step change is already in flight")
	}
	if dest < 0 || dest >= len(t.steps) {
		status := t.status
		t.mu.Unlock()
		return NewNavigationError(ErrCodeStepNotFound, op, status, fmt.Sprintf("no step at index %d", dest))
	}
	t.transitioning = true
	leaving := t.stepAtLocked(t.index)
	entering := &t.steps[dest]
	t.mu.Unlock()

	if leaving != nil {
		if err := runHook(ctx, leaving, PhaseBeforeHide, leaving.OnBeforeHide); err != nil {
			t.abortTransition(leaving, PhaseBeforeHide, err)
			return err
		}
	}
	if err := runHook(ctx, entering, PhaseBeforeShow, entering.OnBeforeShow); err != nil {
		t.abortTransition(entering, PhaseBeforeShow, err)
		return err
	}

	t.mu.Lock()
	if t.status != StatusActive {
		status := t.status
		t.transitioning = false
		t.mu.Unlock()
		return NewNavigationError(ErrCodeInvalidStatus, op, status, "tour was dismissed during the step change")
	}
	t.index = dest
	t.generation++
	t.stopAutoAdvanceLocked()
	t.mu.Unlock()

	el, rect := t.resolveTarget(entering)

	t.mu.Lock()
	if t.status == StatusActive && t.index == dest {
		t.target = el
		t.targetRect = rect
	}
	state := t.snapshotLocked()
	t.transitioning = false
	t.mu.Unlock()

	if leaving != nil {
		if err := runHook(ctx, leaving, PhaseAfterHide, leaving.OnAfterHide); err != nil {
			t.reportHookError(leaving, PhaseAfterHide, err)
		}
	}
	if err := runHook(ctx, entering, PhaseAfterShow, entering.OnAfterShow); err != nil {
		t.reportHookError(entering, PhaseAfterShow, err)
	}
	if cb := t.opts.Callbacks.OnStepChange; cb != nil {
		cb(entering, direction)
	}
	t.observers.NotifyStepChange(leaving, entering, direction)
	t.observers.NotifyTargetChange(entering, rect)
	t.observers.NotifyStateChange(state)

	t.scheduleAutoAdvance(entering)
	return nil
}

// abortTransition rolls back the in-flight flag after a failed
// before-hook and reports the failure. Tour state is untouched: the
// caller stays on the pre-transition step.
func (t *Tour) abortTransition(step *Step, phase HookPhase, err error) {
	t.mu.Lock()
	t.transitioning = false
	t.mu.Unlock()
	t.reportHookError(step, phase, err)
}

func (t *Tour) reportHookError(step *Step, phase HookPhase, err error) {
	t.observers.NotifyHookError(step, phase, err)
}

// resolveTarget locates the step's element and measures it. With
// ScrollToTarget set, the element is scrolled into view first so the
// rectangle reflects the settled position. Runs without the lock:
// surfaces and elements are host code.
func (t *Tour) resolveTarget(step *Step) (Element, *Rect) {
	el := step.resolve(t.surface)
	if el == nil {
		return nil, nil
	}
	if t.opts.ScrollToTarget {
		el.ScrollIntoView()
	}
	r := el.Bounds()
	return el, &r
}

// scheduleAutoAdvance arms the step's auto-advance timer. The fired
// timer re-checks that the tour is still active on the same committed
// generation; stale timers no-op.
func (t *Tour) scheduleAutoAdvance(step *Step) {
	if step.AutoAdvance <= 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status != StatusActive {
		return
	}
	gen := t.generation
	t.autoTimer = time.AfterFunc(step.AutoAdvance, func() {
		t.mu.RLock()
		stale := t.status != StatusActive || t.generation != gen
		t.mu.RUnlock()
		if stale {
			return
		}
		_ = t.Next(context.Background())
	})
}

// stopAutoAdvanceLocked cancels a pending auto-advance timer. Called
// with t.mu held.
func (t *Tour) stopAutoAdvanceLocked() {
	if t.autoTimer != nil {
		t.autoTimer.Stop()
		t.autoTimer = nil
	}
}
