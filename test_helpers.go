package docent

import (
	"sync"
	"testing"
)

// TestObserver records every notification it receives, for use in
// tests of tours and renderers.
type TestObserver struct {
	mu          sync.Mutex
	states      []State
	stepChanges []StepChangeRecord
	targets     []TargetRecord
	started     int
	ended       []EndReason
	paused      int
	resumed     int
	hookErrors  []HookErrorRecord
}

// StepChangeRecord is one observed step change.
type StepChangeRecord struct {
	FromID    string
	ToID      string
	Direction Direction
}

// TargetRecord is one observed target measurement.
type TargetRecord struct {
	StepID string
	Rect   *Rect
}

// HookErrorRecord is one observed hook failure.
type HookErrorRecord struct {
	StepID string
	Phase  HookPhase
	Err    error
}

// NewTestObserver creates an empty recording observer.
func NewTestObserver() *TestObserver {
	return &TestObserver{}
}

var _ ExtendedObserver = (*TestObserver)(nil)

func (o *TestObserver) OnStateChange(state State) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.states = append(o.states, state)
}

func (o *TestObserver) OnStepChange(from, to *Step, direction Direction) {
	o.mu.Lock()
	defer o.mu.Unlock()
	rec := StepChangeRecord{ToID: to.ID, Direction: direction}
	if from != nil {
		rec.FromID = from.ID
	}
	o.stepChanges = append(o.stepChanges, rec)
}

func (o *TestObserver) OnTargetChange(step *Step, rect *Rect) {
	o.mu.Lock()
	defer o.mu.Unlock()
	rec := TargetRecord{StepID: step.ID}
	if rect != nil {
		r := *rect
		rec.Rect = &r
	}
	o.targets = append(o.targets, rec)
}

func (o *TestObserver) OnTourStarted(State) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.started++
}

func (o *TestObserver) OnTourEnded(reason EndReason, _ State) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.ended = append(o.ended, reason)
}

func (o *TestObserver) OnTourPaused(State) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.paused++
}

func (o *TestObserver) OnTourResumed(State) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.resumed++
}

func (o *TestObserver) OnHookError(step *Step, phase HookPhase, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.hookErrors = append(o.hookErrors, HookErrorRecord{StepID: step.ID, Phase: phase, Err: err})
}

// States returns the recorded state snapshots in arrival order.
func (o *TestObserver) States() []State {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]State, len(o.states))
	copy(out, o.states)
	return out
}

// LastState returns the most recent snapshot, if any.
func (o *TestObserver) LastState() (State, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.states) == 0 {
		return State{}, false
	}
	return o.states[len(o.states)-1], true
}

// StepChanges returns the recorded step changes in arrival order.
func (o *TestObserver) StepChanges() []StepChangeRecord {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]StepChangeRecord, len(o.stepChanges))
	copy(out, o.stepChanges)
	return out
}

// Targets returns the recorded target measurements in arrival order.
func (o *TestObserver) Targets() []TargetRecord {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]TargetRecord, len(o.targets))
	copy(out, o.targets)
	return out
}

// Started returns how many tour starts were observed.
func (o *TestObserver) Started() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.started
}

// Ended returns the observed end reasons in arrival order.
func (o *TestObserver) Ended() []EndReason {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]EndReason, len(o.ended))
	copy(out, o.ended)
	return out
}

// Paused returns how many pauses were observed.
func (o *TestObserver) Paused() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.paused
}

// Resumed returns how many resumes were observed.
func (o *TestObserver) Resumed() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.resumed
}

// HookErrors returns the observed hook failures in arrival order.
func (o *TestObserver) HookErrors() []HookErrorRecord {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]HookErrorRecord, len(o.hookErrors))
	copy(out, o.hookErrors)
	return out
}

// TestElement is a stub Element with a settable rectangle.
type TestElement struct {
	mu       sync.Mutex
	rect     Rect
	scrolled int
}

// NewTestElement creates a stub element with the given rectangle.
func NewTestElement(rect Rect) *TestElement {
	return &TestElement{rect: rect}
}

func (e *TestElement) Bounds() Rect {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rect
}

func (e *TestElement) ScrollIntoView() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scrolled++
}

// SetRect moves the element, as a host layout change would.
func (e *TestElement) SetRect(rect Rect) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rect = rect
}

// ScrollCalls returns how many times the element was scrolled into
// view.
func (e *TestElement) ScrollCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scrolled
}

// TestSurface is a stub Surface with registered elements and manual
// event injection. It implements EventSurface.
type TestSurface struct {
	mu       sync.Mutex
	viewport Size
	elements map[string]*TestElement
	handlers []InputHandler
}

// NewTestSurface creates a stub surface with the given viewport.
func NewTestSurface(viewport Size) *TestSurface {
	return &TestSurface{
		viewport: viewport,
		elements: make(map[string]*TestElement),
	}
}

var (
	_ Surface      = (*TestSurface)(nil)
	_ EventSurface = (*TestSurface)(nil)
)

// AddElement registers an element under query and returns it.
func (s *TestSurface) AddElement(query string, rect Rect) *TestElement {
	s.mu.Lock()
	defer s.mu.Unlock()
	el := NewTestElement(rect)
	s.elements[query] = el
	return el
}

// RemoveElement drops the element registered under query.
func (s *TestSurface) RemoveElement(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.elements, query)
}

func (s *TestSurface) Find(query string) Element {
	s.mu.Lock()
	defer s.mu.Unlock()
	el, ok := s.elements[query]
	if !ok {
		return nil
	}
	return el
}

func (s *TestSurface) Viewport() Size {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewport
}

// SetViewport resizes the surface without emitting an event; use
// SendResize to notify subscribers.
func (s *TestSurface) SetViewport(viewport Size) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport = viewport
}

func (s *TestSurface) Subscribe(h InputHandler) (cancel func()) {
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

// Subscribers returns the number of subscribed handlers.
func (s *TestSurface) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handlers)
}

func (s *TestSurface) handlersCopy() []InputHandler {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]InputHandler, len(s.handlers))
	copy(out, s.handlers)
	return out
}

// SendKey delivers a key press to every subscriber.
func (s *TestSurface) SendKey(key Key) {
	for _, h := range s.handlersCopy() {
		h.HandleKey(key)
	}
}

// SendPointerDown delivers a pointer press to every subscriber.
func (s *TestSurface) SendPointerDown(p Point) {
	for _, h := range s.handlersCopy() {
		h.HandlePointerDown(p)
	}
}

// SendResize resizes the surface and notifies every subscriber.
func (s *TestSurface) SendResize(viewport Size) {
	s.SetViewport(viewport)
	for _, h := range s.handlersCopy() {
		h.HandleResize(viewport)
	}
}

// SendScroll delivers a scroll event to every subscriber.
func (s *TestSurface) SendScroll() {
	for _, h := range s.handlersCopy() {
		h.HandleScroll()
	}
}

// CreateSimpleTour builds a three-step tour over a stub surface with
// all three targets registered.
func CreateSimpleTour(t *testing.T) (*Tour, *TestSurface) {
	t.Helper()
	surface := NewTestSurface(Size{Width: 1024, Height: 768})
	surface.AddElement("#one", Rect{X: 10, Y: 10, Width: 100, Height: 40})
	surface.AddElement("#two", Rect{X: 10, Y: 60, Width: 100, Height: 40})
	surface.AddElement("#three", Rect{X: 10, Y: 110, Width: 100, Height: 40})

	tour, err := New(surface, []Step{
		{ID: "one", Target: Query("#one"), Title: "One"},
		{ID: "two", Target: Query("#two"), Title: "Two"},
		{ID: "three", Target: Query("#three"), Title: "Three"},
	}, DefaultOptions())
	if err != nil {
		t.Fatalf("CreateSimpleTour: %v", err)
	}
	return tour, surface
}

// AssertStatus fails the test unless the tour has the wanted status.
func AssertStatus(t *testing.T, tour *Tour, want Status) {
	t.Helper()
	if got := tour.Status(); got != want {
		t.Errorf("status = %s, want %s", got, want)
	}
}

// AssertStepIndex fails the test unless the tour is on the wanted
// index.
func AssertStepIndex(t *testing.T, tour *Tour, want int) {
	t.Helper()
	if got := tour.StepIndex(); got != want {
		t.Errorf("step index = %d, want %d", got, want)
	}
}

// AssertStepID fails the test unless the engaged step has the wanted
// ID.
func AssertStepID(t *testing.T, tour *Tour, want string) {
	t.Helper()
	step := tour.CurrentStep()
	if step == nil {
		t.Errorf("current step = nil, want %q", want)
		return
	}
	if step.ID != want {
		t.Errorf("current step = %q, want %q", step.ID, want)
	}
}

// AssertProgress fails the test unless the snapshot progress is within
// a small tolerance of want.
func AssertProgress(t *testing.T, tour *Tour, want float64) {
	t.Helper()
	got := tour.State().Progress
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	if diff > 1e-9 {
		t.Errorf("progress = %v, want %v", got, want)
	}
}
