package docent

// Labels are the renderer-facing texts for the built-in controls.
type Labels struct {
	Next     string
	Previous string
	Finish   string
	Skip     string
}

// Callbacks are tour-level notification hooks. All fields are
// optional.
type Callbacks struct {
	// OnStart fires after the tour enters the active status.
	OnStart func(State)

	// OnComplete fires after the tour completes, whether through Next
	// on the last step or Complete.
	OnComplete func(State)

	// OnSkip fires after Skip abandons an active or paused tour.
	OnSkip func(State)

	// OnStepChange fires after every committed step change.
	OnStepChange func(step *Step, direction Direction)
}

// Options configure a tour. Start from DefaultOptions and adjust; New
// takes boolean fields literally and only fills empty labels.
type Options struct {
	// KeyboardNavigation maps arrow, enter and escape keys onto
	// navigation.
	KeyboardNavigation bool

	// CloseOnClickOutside skips the tour when a pointer press lands
	// outside the current target rectangle.
	CloseOnClickOutside bool

	// ScrollToTarget scrolls resolved targets into view before their
	// rectangle is measured.
	ScrollToTarget bool

	Labels    Labels
	Callbacks Callbacks
}

// DefaultOptions returns the standard tour behavior: keyboard
// navigation on, scroll to target on, click outside ignored.
func DefaultOptions() Options {
	return Options{
		KeyboardNavigation: true,
		ScrollToTarget:     true,
		Labels: Labels{
			Next:     "Next",
			Previous: "Back",
			Finish:   "Finish",
			Skip:     "Skip",
		},
	}
}
