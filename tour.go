package docent

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Tour is a linear guided tour over a host surface. All methods are
// safe for concurrent use.
//
// Mutations follow guard, commit, notify: guards and commits run under
// the lock, step hooks and observer notifications run outside it with
// a snapshot taken at commit time.
type Tour struct {
	id      string
	surface Surface
	steps   []Step
	opts    Options

	mu            sync.RWMutex
	status        Status
	index         int
	target        Element
	targetRect    *Rect
	transitioning bool
	generation    uint64
	autoTimer     *time.Timer

	attached    bool
	unsubscribe func()

	observers *ObserverManager
}

var (
	_ Controls     = (*Tour)(nil)
	_ InputHandler = (*Tour)(nil)
)

// New builds a tour over surface. Steps are copied; empty step IDs get
// generated ones and duplicate IDs are a configuration error. A nil
// surface is allowed when steps resolve through their own Resolver;
// query targets then stay unresolved.
func New(surface Surface, steps []Step, opts Options) (*Tour, error) {
	normalized := make([]Step, len(steps))
	copy(normalized, steps)

	seen := make(map[string]int, len(normalized))
	for i := range normalized {
		if normalized[i].ID == "" {
			normalized[i].ID = uuid.NewString()
		}
		if prev, dup := seen[normalized[i].ID]; dup {
			return nil, NewConfigurationError("steps",
				fmt.Sprintf("steps %d and %d share ID %q", prev, i, normalized[i].ID))
		}
		seen[normalized[i].ID] = i
		if normalized[i].Placement == "" {
			normalized[i].Placement = PlacementAuto
		}
	}
	defaults := DefaultOptions().Labels
	if opts.Labels.Next == "" {
		opts.Labels.Next = defaults.Next
	}
	if opts.Labels.Previous == "" {
		opts.Labels.Previous = defaults.Previous
	}
	if opts.Labels.Finish == "" {
		opts.Labels.Finish = defaults.Finish
	}
	if opts.Labels.Skip == "" {
		opts.Labels.Skip = defaults.Skip
	}

	return &Tour{
		id:        uuid.NewString(),
		surface:   surface,
		steps:     normalized,
		opts:      opts,
		status:    StatusIdle,
		index:     -1,
		observers: NewObserverManager(),
	}, nil
}

// ID returns the tour's generated instance ID.
func (t *Tour) ID() string {
	return t.id
}

// Options returns the tour options. Options are immutable after New.
func (t *Tour) Options() Options {
	return t.opts
}

// Steps returns a copy of the tour's step list.
func (t *Tour) Steps() []Step {
	out := make([]Step, len(t.steps))
	copy(out, t.steps)
	return out
}

// TotalSteps returns the number of steps.
func (t *Tour) TotalSteps() int {
	return len(t.steps)
}

// Status returns the current lifecycle status.
func (t *Tour) Status() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status
}

// StepIndex returns the engaged step index, -1 when disengaged.
func (t *Tour) StepIndex() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.index
}

// CurrentStep returns the engaged step, nil when disengaged.
func (t *Tour) CurrentStep() *Step {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.stepAtLocked(t.index)
}

// State returns a full snapshot of the tour.
func (t *Tour) State() State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.snapshotLocked()
}

// AddObserver registers o for tour notifications.
func (t *Tour) AddObserver(o Observer) {
	t.observers.AddObserver(o)
}

// RemoveObserver unregisters o.
func (t *Tour) RemoveObserver(o Observer) {
	t.observers.RemoveObserver(o)
}

// Start begins the tour at the first step. Starting an empty tour is a
// no-op: the status stays idle and no error is returned.
func (t *Tour) Start(ctx context.Context) error {
	return t.StartAt(ctx, 0)
}

// StartAt begins the tour at the given step index. Valid from idle and
// completed; a running tour must be stopped first.
func (t *Tour) StartAt(ctx context.Context, index int) error {
	t.mu.Lock()
	if len(t.steps) == 0 {
		t.mu.Unlock()
		return nil
	}
	switch t.status {
	case StatusIdle, StatusCompleted:
	default:
		status := t.status
		t.mu.Unlock()
		return NewNavigationError(ErrCodeInvalidStatus, "start", status, "tour already started")
	}
	if index < 0 || index >= len(t.steps) {
		status := t.status
		t.mu.Unlock()
		return NewNavigationError(ErrCodeStepNotFound, "start", status,
			fmt.Sprintf("no step at index %d", index))
	}
	t.status = StatusActive
	t.index = -1
	t.generation++
	t.mu.Unlock()

	if err := t.transitionTo(ctx, index, DirectionNext, "start"); err != nil {
		// A failed entry hook leaves an active tour with no engaged
		// step; fall back to idle instead.
		t.mu.Lock()
		if t.status == StatusActive && t.index < 0 {
			t.status = StatusIdle
		}
		t.mu.Unlock()
		return err
	}

	state := t.State()
	if cb := t.opts.Callbacks.OnStart; cb != nil {
		cb(state)
	}
	t.observers.NotifyTourStarted(state)
	return nil
}

// Next advances to the next step, or completes the tour when the
// current step is the last one.
func (t *Tour) Next(ctx context.Context) error {
	t.mu.RLock()
	status := t.status
	index := t.index
	total := len(t.steps)
	t.mu.RUnlock()

	if status != StatusActive {
		return NewNavigationError(ErrCodeInvalidStatus, "next", status, "tour is not active")
	}
	if index >= total-1 {
		return t.finish(ctx, "next")
	}
	return t.transitionTo(ctx, index+1, DirectionNext, "next")
}

// Previous moves back one step. On the first step it is a no-op.
func (t *Tour) Previous(ctx context.Context) error {
	t.mu.RLock()
	status := t.status
	index := t.index
	t.mu.RUnlock()

	if status != StatusActive {
		return NewNavigationError(ErrCodeInvalidStatus, "previous", status, "tour is not active")
	}
	if index <= 0 {
		return nil
	}
	return t.transitionTo(ctx, index-1, DirectionPrevious, "previous")
}

// GoTo jumps to the step at index. The direction is next when the
// destination lies past the current step, previous otherwise.
func (t *Tour) GoTo(ctx context.Context, index int) error {
	t.mu.RLock()
	status := t.status
	current := t.index
	total := len(t.steps)
	t.mu.RUnlock()

	if status != StatusActive {
		return NewNavigationError(ErrCodeInvalidStatus, "goto", status, "tour is not active")
	}
	if index < 0 || index >= total {
		return NewNavigationError(ErrCodeStepNotFound, "goto", status,
			fmt.Sprintf("no step at index %d", index))
	}
	direction := DirectionPrevious
	if index > current {
		direction = DirectionNext
	}
	return t.transitionTo(ctx, index, direction, "goto")
}

// GoToID jumps to the step with the given ID. An unknown ID is a
// silent no-op: comparing state before and after is the only way to
// observe whether the jump happened.
func (t *Tour) GoToID(ctx context.Context, id string) error {
	t.mu.RLock()
	found := -1
	for i := range t.steps {
		if t.steps[i].ID == id {
			found = i
			break
		}
	}
	t.mu.RUnlock()

	if found < 0 {
		return nil
	}
	return t.GoTo(ctx, found)
}

// Pause suspends an active tour on its current step. A pending
// auto-advance is cancelled; Resume re-arms it from the full delay.
func (t *Tour) Pause() error {
	t.mu.Lock()
	if t.status != StatusActive {
		status := t.status
		t.mu.Unlock()
		return NewNavigationError(ErrCodeInvalidStatus, "pause", status, "tour is not active")
	}
	t.status = StatusPaused
	t.stopAutoAdvanceLocked()
	state := t.snapshotLocked()
	t.mu.Unlock()

	t.observers.NotifyTourPaused(state)
	t.observers.NotifyStateChange(state)
	return nil
}

// Resume reactivates a paused tour on its current step.
func (t *Tour) Resume() error {
	t.mu.Lock()
	if t.status != StatusPaused {
		status := t.status
		t.mu.Unlock()
		return NewNavigationError(ErrCodeInvalidStatus, "resume", status, "tour is not paused")
	}
	t.status = StatusActive
	step := t.stepAtLocked(t.index)
	state := t.snapshotLocked()
	t.mu.Unlock()

	t.observers.NotifyTourResumed(state)
	t.observers.NotifyStateChange(state)
	if step != nil {
		t.scheduleAutoAdvance(step)
	}
	return nil
}

// Complete gracefully ends an active or paused tour, awaiting the
// leaving step's hide hooks and marking the tour completed.
func (t *Tour) Complete(ctx context.Context) error {
	return t.finish(ctx, "complete")
}

// Skip abandons the tour. State always resets to idle with a cleared
// step and target regardless of the prior status; OnSkip and observer
// notifications fire only when a tour was actually in progress. Skip
// never awaits hooks, so a slow before-hook cannot block dismissal.
func (t *Tour) Skip() {
	t.reset(EndSkipped)
}

// Stop resets the tour to idle without firing any callback.
func (t *Tour) Stop() {
	t.reset(EndStopped)
}

// finish is the graceful completion path shared by Complete and Next
// on the last step.
func (t *Tour) finish(ctx context.Context, op string) error {
	t.mu.Lock()
	if t.status != StatusActive && t.status != StatusPaused {
		status := t.status
		t.mu.Unlock()
		return NewNavigationError(ErrCodeInvalidStatus, op, status, "no tour in progress")
	}
	if t.transitioning {
		status := t.status
		t.mu.Unlock()
		return NewNavigationError(ErrCodeTransitionPending, op, status, "a step change is already in flight")
	}
	t.transitioning = true
	leaving := t.stepAtLocked(t.index)
	t.mu.Unlock()

	if leaving != nil {
		if err := runHook(ctx, leaving, PhaseBeforeHide, leaving.OnBeforeHide); err != nil {
			t.abortTransition(leaving, PhaseBeforeHide, err)
			return err
		}
	}

	t.mu.Lock()
	t.transitioning = false
	if t.status != StatusActive && t.status != StatusPaused {
		status := t.status
		t.mu.Unlock()
		return NewNavigationError(ErrCodeInvalidStatus, op, status, "tour was dismissed during completion")
	}
	t.status = StatusCompleted
	t.index = -1
	t.target = nil
	t.targetRect = nil
	t.generation++
	t.stopAutoAdvanceLocked()
	state := t.snapshotLocked()
	t.mu.Unlock()

	if leaving != nil {
		if err := runHook(ctx, leaving, PhaseAfterHide, leaving.OnAfterHide); err != nil {
			t.reportHookError(leaving, PhaseAfterHide, err)
		}
	}
	if cb := t.opts.Callbacks.OnComplete; cb != nil {
		cb(state)
	}
	t.observers.NotifyTourEnded(EndCompleted, state)
	t.observers.NotifyStateChange(state)
	return nil
}

// reset is the escape path shared by Skip and Stop. It never awaits
// hooks and normalizes state from any status.
func (t *Tour) reset(reason EndReason) {
	t.mu.Lock()
	engaged := t.status == StatusActive || t.status == StatusPaused
	t.status = StatusIdle
	t.index = -1
	t.target = nil
	t.targetRect = nil
	t.generation++
	t.stopAutoAdvanceLocked()
	state := t.snapshotLocked()
	t.mu.Unlock()

	if !engaged {
		return
	}
	if reason == EndSkipped {
		if cb := t.opts.Callbacks.OnSkip; cb != nil {
			cb(state)
		}
	}
	t.observers.NotifyTourEnded(reason, state)
	t.observers.NotifyStateChange(state)
}

// Attach connects the tour to its surface's input events. Surfaces
// without the EventSurface capability still attach; they just push no
// events.
func (t *Tour) Attach() error {
	t.mu.Lock()
	if t.attached {
		status := t.status
		t.mu.Unlock()
		return NewNavigationError(ErrCodeAlreadyAttached, "attach", status, "tour is already attached")
	}
	t.attached = true
	surface := t.surface
	t.mu.Unlock()

	if es, ok := surface.(EventSurface); ok {
		cancel := es.Subscribe(t)
		t.mu.Lock()
		t.unsubscribe = cancel
		t.mu.Unlock()
	}
	return nil
}

// Detach disconnects the tour from surface input and stops any pending
// auto-advance. Detaching an unattached tour is a no-op.
func (t *Tour) Detach() {
	t.mu.Lock()
	cancel := t.unsubscribe
	t.unsubscribe = nil
	t.attached = false
	t.stopAutoAdvanceLocked()
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Attached reports whether the tour is attached to its surface.
func (t *Tour) Attached() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.attached
}

// RefreshTarget re-measures the engaged target's rectangle without
// re-running its query. HandleResize and HandleScroll call it; hosts
// may call it directly after layout changes.
func (t *Tour) RefreshTarget() {
	t.mu.RLock()
	el := t.target
	step := t.stepAtLocked(t.index)
	gen := t.generation
	t.mu.RUnlock()

	if el == nil || step == nil {
		return
	}
	r := el.Bounds()

	t.mu.Lock()
	if t.generation != gen {
		t.mu.Unlock()
		return
	}
	t.targetRect = &r
	state := t.snapshotLocked()
	t.mu.Unlock()

	t.observers.NotifyTargetChange(step, &r)
	t.observers.NotifyStateChange(state)
}

// snapshotLocked builds a State snapshot. Called with t.mu held.
func (t *Tour) snapshotLocked() State {
	total := len(t.steps)
	s := State{
		Status:     t.status,
		StepIndex:  t.index,
		TotalSteps: total,
	}
	if t.index >= 0 && t.index < total {
		s.Step = &t.steps[t.index]
		s.IsFirstStep = t.index == 0
		s.IsLastStep = t.index == total-1
		s.Progress = float64(t.index+1) / float64(total) * 100
		s.Target = t.target
		if t.targetRect != nil {
			r := *t.targetRect
			s.TargetRect = &r
		}
	}
	return s
}

// stepAtLocked returns the step at index, nil when out of range.
// Called with t.mu held.
func (t *Tour) stepAtLocked(index int) *Step {
	if index < 0 || index >= len(t.steps) {
		return nil
	}
	return &t.steps[index]
}
