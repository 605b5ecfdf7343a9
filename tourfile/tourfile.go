// Package tourfile loads declarative tour definitions from YAML. A
// definition carries the step sequence and option overrides; hooks and
// action handlers are code, so they are attached after conversion.
package tourfile

// Definition is a complete tour file.
type Definition struct {
	Version int         `yaml:"version"`
	Tour    TourMeta    `yaml:"tour"`
	Options *OptionsDef `yaml:"options,omitempty"`
	Steps   []StepDef   `yaml:"steps"`
}

// TourMeta names and describes the tour.
type TourMeta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// OptionsDef overrides tour options. Absent fields keep the engine
// defaults, so booleans are pointers.
type OptionsDef struct {
	KeyboardNavigation  *bool     `yaml:"keyboard_navigation,omitempty"`
	CloseOnClickOutside *bool     `yaml:"close_on_click_outside,omitempty"`
	ScrollToTarget      *bool     `yaml:"scroll_to_target,omitempty"`
	Labels              LabelsDef `yaml:"labels,omitempty"`
}

// LabelsDef overrides navigation labels. Empty fields keep defaults.
type LabelsDef struct {
	Next     string `yaml:"next,omitempty"`
	Previous string `yaml:"previous,omitempty"`
	Finish   string `yaml:"finish,omitempty"`
	Skip     string `yaml:"skip,omitempty"`
}

// StepDef is one step of the tour. Target is a surface query; tour
// files cannot carry resolver functions.
type StepDef struct {
	ID               string      `yaml:"id,omitempty"`
	Target           string      `yaml:"target"`
	Title            string      `yaml:"title,omitempty"`
	Content          string      `yaml:"content,omitempty"`
	Placement        string      `yaml:"placement,omitempty"`
	Class            string      `yaml:"class,omitempty"`
	AllowInteraction bool        `yaml:"allow_interaction,omitempty"`
	AutoAdvanceMS    int         `yaml:"auto_advance_ms,omitempty"`
	Actions          []ActionDef `yaml:"actions,omitempty"`
}

// ActionDef is a custom action button. Handlers are attached in code
// after conversion, keyed by ID.
type ActionDef struct {
	ID    string `yaml:"id,omitempty"`
	Label string `yaml:"label"`
}
