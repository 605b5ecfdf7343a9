package teatour

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/docent-dev/docent"
)

// Model renders the active tour step as a popover card. It is an
// embeddable component: hosts forward messages through Update and
// place View's output in their own layout.
type Model struct {
	tour   *docent.Tour
	styles Styles
	state  docent.State
	width  int
}

// NewModel creates a popover component for tour.
func NewModel(tour *docent.Tour) Model {
	return Model{
		tour:   tour,
		styles: DefaultStyles(),
		state:  tour.State(),
	}
}

// WithStyles overrides the component's appearance.
func (m Model) WithStyles(styles Styles) Model {
	m.styles = styles
	return m
}

// Init implements the component contract. The model has no initial
// command; state arrives via Bind.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update consumes StateMsg snapshots, tracks the terminal width, and
// forwards navigation keys to the tour.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StateMsg:
		m.state = msg.State
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		if key, ok := mapKey(msg); ok {
			m.tour.HandleKey(key)
		}
	}
	return m, nil
}

func mapKey(msg tea.KeyMsg) (docent.Key, bool) {
	switch msg.String() {
	case "right":
		return docent.KeyArrowRight, true
	case "left":
		return docent.KeyArrowLeft, true
	case "enter":
		return docent.KeyEnter, true
	case "esc":
		return docent.KeyEscape, true
	}
	return docent.Key(0), false
}

// View renders the popover for the current step, or an empty string
// while the tour is disengaged.
func (m Model) View() string {
	if m.state.Status != docent.StatusActive && m.state.Status != docent.StatusPaused {
		return ""
	}
	step := m.state.Step
	if step == nil {
		return ""
	}

	header := m.styles.Title.Render(stepTitle(step))
	if m.state.Status == docent.StatusPaused {
		header += " " + m.styles.Badge.Render("[paused]")
	}

	lines := []string{header}
	if step.Content != "" {
		lines = append(lines, m.styles.Content.Render(step.Content))
	}
	lines = append(lines,
		m.styles.Progress.Render(fmt.Sprintf("%d/%d", m.state.StepIndex+1, m.state.TotalSteps)),
		m.styles.Hint.Render(m.hints()),
	)

	card := strings.Join(lines, "\n")
	if m.width > 0 {
		return m.styles.Card.MaxWidth(m.width).Render(card)
	}
	return m.styles.Card.Render(card)
}

func (m Model) hints() string {
	labels := m.tour.Options().Labels

	parts := make([]string, 0, 3)
	if !m.state.IsFirstStep {
		parts = append(parts, "left "+labels.Previous)
	}
	if m.state.IsLastStep {
		parts = append(parts, "enter "+labels.Finish)
	} else {
		parts = append(parts, "right "+labels.Next)
	}
	parts = append(parts, "esc "+labels.Skip)
	return strings.Join(parts, " | ")
}

func stepTitle(step *docent.Step) string {
	if step.Title != "" {
		return step.Title
	}
	return step.ID
}
