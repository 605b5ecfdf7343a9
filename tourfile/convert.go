package tourfile

import (
	"time"

	"github.com/docent-dev/docent"
)

// StepList converts the definition's steps into engine steps. Hooks
// and action handlers are not expressible in a file; attach them to
// the returned steps before constructing the tour if needed.
func (d *Definition) StepList() []docent.Step {
	steps := make([]docent.Step, 0, len(d.Steps))
	for _, def := range d.Steps {
		step := docent.Step{
			ID:               def.ID,
			Target:           docent.Query(def.Target),
			Title:            def.Title,
			Content:          def.Content,
			Placement:        placements[def.Placement],
			Class:            def.Class,
			AllowInteraction: def.AllowInteraction,
			AutoAdvance:      time.Duration(def.AutoAdvanceMS) * time.Millisecond,
		}
		for _, action := range def.Actions {
			step.Actions = append(step.Actions, docent.Action{
				ID:    action.ID,
				Label: action.Label,
			})
		}
		steps = append(steps, step)
	}
	return steps
}

// TourOptions merges the definition's overrides over the engine
// defaults.
func (d *Definition) TourOptions() docent.Options {
	opts := docent.DefaultOptions()
	if d.Options == nil {
		return opts
	}

	if d.Options.KeyboardNavigation != nil {
		opts.KeyboardNavigation = *d.Options.KeyboardNavigation
	}
	if d.Options.CloseOnClickOutside != nil {
		opts.CloseOnClickOutside = *d.Options.CloseOnClickOutside
	}
	if d.Options.ScrollToTarget != nil {
		opts.ScrollToTarget = *d.Options.ScrollToTarget
	}

	labels := d.Options.Labels
	if labels.Next != "" {
		opts.Labels.Next = labels.Next
	}
	if labels.Previous != "" {
		opts.Labels.Previous = labels.Previous
	}
	if labels.Finish != "" {
		opts.Labels.Finish = labels.Finish
	}
	if labels.Skip != "" {
		opts.Labels.Skip = labels.Skip
	}

	return opts
}

// Build constructs a tour over surface from the definition.
func (d *Definition) Build(surface docent.Surface) (*docent.Tour, error) {
	return docent.New(surface, d.StepList(), d.TourOptions())
}
