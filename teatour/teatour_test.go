package teatour_test

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docent-dev/docent"
	"github.com/docent-dev/docent/teatour"
)

func newTerminalTour(t *testing.T) (*docent.Tour, *teatour.Surface) {
	t.Helper()

	surface := teatour.NewSurface(120, 40)
	surface.SetRegion("menu", docent.Rect{X: 0, Y: 0, Width: 20, Height: 3})
	surface.SetRegion("editor", docent.Rect{X: 20, Y: 0, Width: 80, Height: 30})
	surface.SetRegion("status", docent.Rect{X: 0, Y: 37, Width: 120, Height: 3})

	tour, err := docent.New(surface, []docent.Step{
		{ID: "menu", Target: docent.Query("menu"), Title: "The menu", Content: "Commands live here."},
		{ID: "editor", Target: docent.Query("editor"), Title: "The editor", Content: "Your buffer."},
		{ID: "status", Target: docent.Query("status")},
	}, docent.DefaultOptions())
	require.NoError(t, err)
	return tour, surface
}

func TestSurfaceRegionIdentity(t *testing.T) {
	surface := teatour.NewSurface(80, 24)

	created := surface.SetRegion("panel", docent.Rect{X: 1, Y: 1, Width: 10, Height: 5})
	moved := surface.SetRegion("panel", docent.Rect{X: 4, Y: 2, Width: 12, Height: 6})

	assert.Same(t, created, moved)
	assert.Equal(t, docent.Rect{X: 4, Y: 2, Width: 12, Height: 6}, created.Bounds())
}

func TestSurfaceFindUnknownRegion(t *testing.T) {
	surface := teatour.NewSurface(80, 24)
	assert.Nil(t, surface.Find("nope"))
}

func TestSurfaceRemoveRegion(t *testing.T) {
	surface := teatour.NewSurface(80, 24)
	surface.SetRegion("panel", docent.Rect{X: 1, Y: 1, Width: 10, Height: 5})

	surface.RemoveRegion("panel")

	assert.Nil(t, surface.Find("panel"))
}

func TestSurfaceResizeRemeasuresAttachedTour(t *testing.T) {
	tour, surface := newTerminalTour(t)

	require.NoError(t, tour.Attach())
	defer tour.Detach()
	require.NoError(t, tour.Start(context.Background()))

	moved := docent.Rect{X: 0, Y: 0, Width: 30, Height: 4}
	surface.SetRegion("menu", moved)
	surface.Resize(100, 30)

	state := tour.State()
	require.NotNil(t, state.TargetRect)
	assert.Equal(t, moved, *state.TargetRect)
	assert.Equal(t, docent.Size{Width: 100, Height: 30}, surface.Viewport())
}

func TestModelViewWhenIdle(t *testing.T) {
	tour, _ := newTerminalTour(t)
	model := teatour.NewModel(tour)

	assert.Empty(t, model.View())
}

func TestModelViewActiveStep(t *testing.T) {
	tour, _ := newTerminalTour(t)
	require.NoError(t, tour.Start(context.Background()))

	model := teatour.NewModel(tour)
	model, _ = model.Update(teatour.StateMsg{State: tour.State()})

	view := model.View()
	assert.Contains(t, view, "The menu")
	assert.Contains(t, view, "Commands live here.")
	assert.Contains(t, view, "1/3")
	assert.Contains(t, view, "right Next")
	assert.Contains(t, view, "esc Skip")
	assert.NotContains(t, view, "left Back")
}

func TestModelViewLastStepHints(t *testing.T) {
	tour, _ := newTerminalTour(t)
	require.NoError(t, tour.Start(context.Background()))
	require.NoError(t, tour.GoTo(context.Background(), 2))

	model := teatour.NewModel(tour)
	model, _ = model.Update(teatour.StateMsg{State: tour.State()})

	view := model.View()
	assert.Contains(t, view, "3/3")
	assert.Contains(t, view, "enter Finish")
	assert.Contains(t, view, "left Back")
	assert.NotContains(t, view, "right Next")
}

func TestModelViewPausedBadge(t *testing.T) {
	tour, _ := newTerminalTour(t)
	require.NoError(t, tour.Start(context.Background()))
	require.NoError(t, tour.Pause())

	model := teatour.NewModel(tour)
	model, _ = model.Update(teatour.StateMsg{State: tour.State()})

	assert.Contains(t, model.View(), "[paused]")
}

func TestModelViewFallsBackToStepID(t *testing.T) {
	tour, _ := newTerminalTour(t)
	require.NoError(t, tour.Start(context.Background()))
	require.NoError(t, tour.GoToID(context.Background(), "status"))

	model := teatour.NewModel(tour)
	model, _ = model.Update(teatour.StateMsg{State: tour.State()})

	assert.Contains(t, model.View(), "status")
}

func TestModelKeysDriveTour(t *testing.T) {
	tour, _ := newTerminalTour(t)
	require.NoError(t, tour.Start(context.Background()))
	model := teatour.NewModel(tour)

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, tour.StepIndex())

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, tour.StepIndex())

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, tour.StepIndex())

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, docent.StatusIdle, tour.Status())

	// Unmapped keys are ignored.
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Equal(t, docent.StatusIdle, tour.Status())
	_ = model
}

func TestModelTracksWidth(t *testing.T) {
	tour, _ := newTerminalTour(t)
	require.NoError(t, tour.Start(context.Background()))

	model := teatour.NewModel(tour)
	model, _ = model.Update(teatour.StateMsg{State: tour.State()})
	model, _ = model.Update(tea.WindowSizeMsg{Width: 24, Height: 10})

	for _, line := range strings.Split(model.View(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 24)
	}
}
