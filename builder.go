package docent

import "time"

// Builder assembles a tour fluently:
//
//	tour, err := docent.NewBuilder(surface).
//		Step("search").Query("#search").Title("Search the catalog").
//		Step("filters").Query("#filters").Title("Narrow it down").
//		Build()
//
// Step setters apply to the most recently opened step; calling one
// before any Step is recorded and surfaced as a configuration error by
// Build.
type Builder struct {
	surface Surface
	opts    Options
	steps   []Step
	current *Step
	misuse  string
}

// NewBuilder starts a builder over surface with default options.
func NewBuilder(surface Surface) *Builder {
	return &Builder{surface: surface, opts: DefaultOptions()}
}

// WithOptions replaces the tour options.
func (b *Builder) WithOptions(opts Options) *Builder {
	b.opts = opts
	return b
}

// Step opens a new step with the given ID. An empty ID gets a
// generated one at Build.
func (b *Builder) Step(id string) *Builder {
	b.flush()
	b.current = &Step{ID: id}
	return b
}

// Query anchors the open step to a surface query.
func (b *Builder) Query(q string) *Builder {
	if s := b.open("Query"); s != nil {
		s.Target = Query(q)
	}
	return b
}

// ResolveWith anchors the open step to a direct resolver.
func (b *Builder) ResolveWith(fn func() Element) *Builder {
	if s := b.open("ResolveWith"); s != nil {
		s.Target = ResolveWith(fn)
	}
	return b
}

// Title sets the open step's title.
func (b *Builder) Title(title string) *Builder {
	if s := b.open("Title"); s != nil {
		s.Title = title
	}
	return b
}

// Content sets the open step's body text.
func (b *Builder) Content(content string) *Builder {
	if s := b.open("Content"); s != nil {
		s.Content = content
	}
	return b
}

// Placement sets the open step's placement hint.
func (b *Builder) Placement(p Placement) *Builder {
	if s := b.open("Placement"); s != nil {
		s.Placement = p
	}
	return b
}

// Class sets the open step's presentation hint.
func (b *Builder) Class(class string) *Builder {
	if s := b.open("Class"); s != nil {
		s.Class = class
	}
	return b
}

// AllowInteraction marks the open step's target as clickable through
// the overlay cutout.
func (b *Builder) AllowInteraction() *Builder {
	if s := b.open("AllowInteraction"); s != nil {
		s.AllowInteraction = true
	}
	return b
}

// AutoAdvance sets the open step's auto-advance delay.
func (b *Builder) AutoAdvance(d time.Duration) *Builder {
	if s := b.open("AutoAdvance"); s != nil {
		s.AutoAdvance = d
	}
	return b
}

// Action appends a custom action to the open step.
func (b *Builder) Action(id, label string, handler func()) *Builder {
	if s := b.open("Action"); s != nil {
		s.Actions = append(s.Actions, Action{ID: id, Label: label, Handler: handler})
	}
	return b
}

// OnBeforeShow sets the open step's before-show hook.
func (b *Builder) OnBeforeShow(hook Hook) *Builder {
	if s := b.open("OnBeforeShow"); s != nil {
		s.OnBeforeShow = hook
	}
	return b
}

// OnAfterShow sets the open step's after-show hook.
func (b *Builder) OnAfterShow(hook Hook) *Builder {
	if s := b.open("OnAfterShow"); s != nil {
		s.OnAfterShow = hook
	}
	return b
}

// OnBeforeHide sets the open step's before-hide hook.
func (b *Builder) OnBeforeHide(hook Hook) *Builder {
	if s := b.open("OnBeforeHide"); s != nil {
		s.OnBeforeHide = hook
	}
	return b
}

// OnAfterHide sets the open step's after-hide hook.
func (b *Builder) OnAfterHide(hook Hook) *Builder {
	if s := b.open("OnAfterHide"); s != nil {
		s.OnAfterHide = hook
	}
	return b
}

// Build finalizes the step list and constructs the tour.
func (b *Builder) Build() (*Tour, error) {
	b.flush()
	if b.misuse != "" {
		return nil, NewConfigurationError("builder", b.misuse)
	}
	return New(b.surface, b.steps, b.opts)
}

func (b *Builder) open(method string) *Step {
	if b.current == nil {
		if b.misuse == "" {
			b.misuse = method + " called before Step"
		}
		return nil
	}
	return b.current
}

func (b *Builder) flush() {
	if b.current != nil {
		b.steps = append(b.steps, *b.current)
		b.current = nil
	}
}
