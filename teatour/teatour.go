// Package teatour renders tours inside bubbletea programs. It supplies
// a Surface mapping named terminal regions to tour targets, a popover
// component for the active step, and a bridge feeding tour state
// changes into a running program as messages.
package teatour

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/docent-dev/docent"
)

// StateMsg delivers a tour state snapshot to the program.
type StateMsg struct {
	State docent.State
}

// programObserver bridges tour notifications onto Program.Send.
type programObserver struct {
	program *tea.Program
}

func (o *programObserver) OnStateChange(state docent.State) {
	if o.program != nil {
		o.program.Send(StateMsg{State: state})
	}
}

// Bind forwards the tour's state changes to program as StateMsg values.
// Call the returned cancel before discarding the program.
func Bind(program *tea.Program, tour *docent.Tour) (cancel func()) {
	observer := &programObserver{program: program}
	tour.AddObserver(observer)
	return func() {
		tour.RemoveObserver(observer)
	}
}
