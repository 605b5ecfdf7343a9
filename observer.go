package docent

import "sync"

// Observer receives tour state notifications. Observers are notified
// synchronously after each mutation commits, in registration order.
type Observer interface {
	OnStateChange(state State)
}

// ExtendedObserver receives fine-grained lifecycle notifications in
// addition to state changes.
type ExtendedObserver interface {
	Observer

	// OnStepChange fires after a committed step change. from is nil
	// when the tour entered its first step.
	OnStepChange(from, to *Step, direction Direction)

	// OnTargetChange fires when the engaged step's target is resolved
	// or re-measured. rect is nil when the target did not resolve.
	OnTargetChange(step *Step, rect *Rect)

	OnTourStarted(state State)
	OnTourEnded(reason EndReason, state State)
	OnTourPaused(state State)
	OnTourResumed(state State)

	// OnHookError fires when a step lifecycle hook returns an error.
	OnHookError(step *Step, phase HookPhase, err error)
}

// BaseObserver is a no-op ExtendedObserver for embedding. Override
// only the methods you need.
type BaseObserver struct{}

func (BaseObserver) OnStateChange(State)                  {}
func (BaseObserver) OnStepChange(*Step, *Step, Direction) {}
func (BaseObserver) OnTargetChange(*Step, *Rect)          {}
func (BaseObserver) OnTourStarted(State)                  {}
func (BaseObserver) OnTourEnded(EndReason, State)         {}
func (BaseObserver) OnTourPaused(State)                   {}
func (BaseObserver) OnTourResumed(State)                  {}
func (BaseObserver) OnHookError(*Step, HookPhase, error)  {}

// ObserverManager fans notifications out to registered observers. A
// panicking observer is recovered so it cannot wedge the tour.
type ObserverManager struct {
	mu        sync.RWMutex
	observers []Observer
}

// NewObserverManager creates an empty manager.
func NewObserverManager() *ObserverManager {
	return &ObserverManager{}
}

// AddObserver registers o. Registration order is notification order.
// Nil observers are ignored.
func (m *ObserverManager) AddObserver(o Observer) {
	if o == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, o)
}

// RemoveObserver unregisters o. Unknown observers are ignored.
func (m *ObserverManager) RemoveObserver(o Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.observers {
		if existing == o {
			m.observers = append(m.observers[:i], m.observers[i+1:]...)
			return
		}
	}
}

// Count returns the number of registered observers.
func (m *ObserverManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.observers)
}

// snapshot copies the observer list so notification runs without
// holding the manager lock.
func (m *ObserverManager) snapshot() []Observer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Observer, len(m.observers))
	copy(out, m.observers)
	return out
}

// NotifyStateChange delivers a state snapshot to every observer.
func (m *ObserverManager) NotifyStateChange(state State) {
	for _, o := range m.snapshot() {
		safeNotify(func() { o.OnStateChange(state) })
	}
}

// NotifyStepChange delivers a step change to extended observers.
func (m *ObserverManager) NotifyStepChange(from, to *Step, direction Direction) {
	for _, o := range m.snapshot() {
		if ext, ok := o.(ExtendedObserver); ok {
			safeNotify(func() { ext.OnStepChange(from, to, direction) })
		}
	}
}

// NotifyTargetChange delivers a target measurement to extended
// observers.
func (m *ObserverManager) NotifyTargetChange(step *Step, rect *Rect) {
	for _, o := range m.snapshot() {
		if ext, ok := o.(ExtendedObserver); ok {
			safeNotify(func() { ext.OnTargetChange(step, rect) })
		}
	}
}

// NotifyTourStarted delivers a tour start to extended observers.
func (m *ObserverManager) NotifyTourStarted(state State) {
	for _, o := range m.snapshot() {
		if ext, ok := o.(ExtendedObserver); ok {
			safeNotify(func() { ext.OnTourStarted(state) })
		}
	}
}

// NotifyTourEnded delivers a tour end to extended observers.
func (m *ObserverManager) NotifyTourEnded(reason EndReason, state State) {
	for _, o := range m.snapshot() {
		if ext, ok := o.(ExtendedObserver); ok {
			safeNotify(func() { ext.OnTourEnded(reason, state) })
		}
	}
}

// NotifyTourPaused delivers a pause to extended observers.
func (m *ObserverManager) NotifyTourPaused(state State) {
	for _, o := range m.snapshot() {
		if ext, ok := o.(ExtendedObserver); ok {
			safeNotify(func() { ext.OnTourPaused(state) })
		}
	}
}

// NotifyTourResumed delivers a resume to extended observers.
func (m *ObserverManager) NotifyTourResumed(state State) {
	for _, o := range m.snapshot() {
		if ext, ok := o.(ExtendedObserver); ok {
			safeNotify(func() { ext.OnTourResumed(state) })
		}
	}
}

// NotifyHookError delivers a hook failure to extended observers.
func (m *ObserverManager) NotifyHookError(step *Step, phase HookPhase, err error) {
	for _, o := range m.snapshot() {
		if ext, ok := o.(ExtendedObserver); ok {
			safeNotify(func() { ext.OnHookError(step, phase, err) })
		}
	}
}

// safeNotify runs fn and swallows panics raised by observer code.
func safeNotify(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}
