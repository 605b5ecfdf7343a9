package docent

// Status is the lifecycle phase of a tour.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

// Direction distinguishes forward from backward step changes.
type Direction string

const (
	DirectionNext     Direction = "next"
	DirectionPrevious Direction = "previous"
)

// EndReason says how a tour left the engaged statuses.
type EndReason string

const (
	EndCompleted EndReason = "completed"
	EndSkipped   EndReason = "skipped"
	EndStopped   EndReason = "stopped"
)

// State is an immutable snapshot of a tour. Renderers derive their
// entire output from it.
//
// Step is non-nil exactly when StepIndex addresses a step, and
// TargetRect is non-nil only when Target is non-nil.
type State struct {
	Status Status

	// StepIndex is the current position, -1 when no step is engaged.
	StepIndex int

	// Step is the engaged step. Steps are immutable once the tour is
	// constructed, so holding the pointer across frames is safe.
	Step *Step

	TotalSteps int

	IsFirstStep bool
	IsLastStep  bool

	// Progress is ((StepIndex+1)/TotalSteps)*100, 0 when disengaged.
	Progress float64

	// Target is the resolved element for the engaged step, nil when
	// the target did not resolve. TargetRect is its last measured
	// rectangle.
	Target     Element
	TargetRect *Rect
}
