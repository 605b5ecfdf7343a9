package overlay_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docent-dev/docent"
	"github.com/docent-dev/docent/overlay"
)

func TestNewOverlayIsHidden(t *testing.T) {
	ov := overlay.New(docent.Size{Width: 1024, Height: 768})

	assert.False(t, ov.Visible())
	assert.Empty(t, ov.Path())
	assert.Empty(t, ov.Markup())
	assert.Equal(t, overlay.DefaultOptions(), ov.Options())
}

func TestShowComputesPath(t *testing.T) {
	ov := overlay.New(docent.Size{Width: 1024, Height: 768})
	ov.Show(docent.Rect{X: 100, Y: 100, Width: 200, Height: 50})

	assert.True(t, ov.Visible())
	assert.Equal(t,
		overlay.CutoutPath(docent.Size{Width: 1024, Height: 768},
			docent.Rect{X: 100, Y: 100, Width: 200, Height: 50}, 8, 4),
		ov.Path())
}

func TestShowOptionsStick(t *testing.T) {
	ov := overlay.New(docent.Size{Width: 1024, Height: 768})

	ov.Show(docent.Rect{X: 100, Y: 100, Width: 200, Height: 50}, overlay.WithPadding(20))
	assert.Equal(t, 20.0, ov.Options().Padding)

	// A later call without options keeps the earlier override rather
	// than reverting to the default.
	ov.Show(docent.Rect{X: 100, Y: 100, Width: 200, Height: 50})
	assert.Equal(t, 20.0, ov.Options().Padding)
	assert.Equal(t, 4.0, ov.Options().Radius)
}

func TestHideClearsEverything(t *testing.T) {
	ov := overlay.New(docent.Size{Width: 1024, Height: 768})
	ov.Show(docent.Rect{X: 100, Y: 100, Width: 200, Height: 50})
	require.NotEmpty(t, ov.Path())

	ov.Hide()

	assert.False(t, ov.Visible())
	assert.Empty(t, ov.Path())
	_, ok := ov.Target()
	assert.False(t, ok)
}

func TestRefreshWhileHiddenStaysHidden(t *testing.T) {
	ov := overlay.New(docent.Size{Width: 1024, Height: 768})
	ov.Show(docent.Rect{X: 100, Y: 100, Width: 200, Height: 50})
	ov.Hide()

	ov.Refresh(docent.Rect{X: 10, Y: 10, Width: 50, Height: 50})

	assert.False(t, ov.Visible())
	assert.Empty(t, ov.Path())
}

func TestRefreshWhileVisibleRegenerates(t *testing.T) {
	ov := overlay.New(docent.Size{Width: 1024, Height: 768})
	ov.Show(docent.Rect{X: 100, Y: 100, Width: 200, Height: 50})
	before := ov.Path()

	ov.Refresh(docent.Rect{X: 300, Y: 120, Width: 200, Height: 50})

	assert.True(t, ov.Visible())
	assert.NotEqual(t, before, ov.Path())
}

func TestSetViewportRecomputesWhileVisible(t *testing.T) {
	ov := overlay.New(docent.Size{Width: 1024, Height: 768})
	ov.Show(docent.Rect{X: 100, Y: 100, Width: 200, Height: 50})
	before := ov.Path()

	ov.SetViewport(docent.Size{Width: 800, Height: 600})

	assert.NotEqual(t, before, ov.Path())
	assert.True(t, strings.HasPrefix(ov.Path(), "M800,0 "))
}

func TestSetViewportWhileHiddenOnlyStores(t *testing.T) {
	ov := overlay.New(docent.Size{Width: 1024, Height: 768})

	ov.SetViewport(docent.Size{Width: 800, Height: 600})

	assert.Empty(t, ov.Path())
	assert.Equal(t, docent.Size{Width: 800, Height: 600}, ov.Viewport())
}

func TestShowOffscreenTargetYieldsEmptyPath(t *testing.T) {
	ov := overlay.New(docent.Size{Width: 1024, Height: 768})
	ov.Show(docent.Rect{X: 5000, Y: 100, Width: 50, Height: 50})

	// Visible but nothing to draw; renderers suppress the element.
	assert.True(t, ov.Visible())
	assert.Empty(t, ov.Path())
	assert.Empty(t, ov.Markup())
}

func TestMarkup(t *testing.T) {
	ov := overlay.New(docent.Size{Width: 1024, Height: 768},
		overlay.WithColor("#123456"), overlay.WithOpacity(0.5))
	ov.Show(docent.Rect{X: 100, Y: 100, Width: 200, Height: 50})

	markup := ov.Markup()

	assert.True(t, strings.HasPrefix(markup, `<svg xmlns="http://www.w3.org/2000/svg" width="1024" height="768" viewBox="0 0 1024 768">`))
	assert.Contains(t, markup, `fill="#123456"`)
	assert.Contains(t, markup, `fill-opacity="0.5"`)
	assert.Contains(t, markup, `fill-rule="evenodd"`)
	assert.Contains(t, markup, `pointer-events="auto"`)
	assert.Contains(t, markup, `style="transition: d 300ms ease"`)
	assert.True(t, strings.HasSuffix(markup, `/></svg>`))
}

func TestMarkupInteractive(t *testing.T) {
	ov := overlay.New(docent.Size{Width: 1024, Height: 768})
	ov.ShowInteractive(docent.Rect{X: 100, Y: 100, Width: 200, Height: 50})

	assert.Contains(t, ov.Markup(), `pointer-events="none"`)
}

func TestMarkupWithoutAnimation(t *testing.T) {
	ov := overlay.New(docent.Size{Width: 1024, Height: 768}, overlay.WithAnimate(false))
	ov.Show(docent.Rect{X: 100, Y: 100, Width: 200, Height: 50})

	assert.NotContains(t, ov.Markup(), "transition")
}

func TestMarkupCustomDuration(t *testing.T) {
	ov := overlay.New(docent.Size{Width: 1024, Height: 768},
		overlay.WithDuration(150*time.Millisecond))
	ov.Show(docent.Rect{X: 100, Y: 100, Width: 200, Height: 50})

	assert.Contains(t, ov.Markup(), "transition: d 150ms ease")
}

func TestRefreshKeepsInteractive(t *testing.T) {
	ov := overlay.New(docent.Size{Width: 1024, Height: 768})
	ov.ShowInteractive(docent.Rect{X: 100, Y: 100, Width: 200, Height: 50})

	ov.Refresh(docent.Rect{X: 120, Y: 100, Width: 200, Height: 50})

	assert.Contains(t, ov.Markup(), `pointer-events="none"`)
}

func TestDefaultOptions(t *testing.T) {
	opts := overlay.DefaultOptions()

	assert.Equal(t, 8.0, opts.Padding)
	assert.Equal(t, 4.0, opts.Radius)
	assert.Equal(t, "black", opts.Color)
	assert.Equal(t, 0.75, opts.Opacity)
	assert.True(t, opts.Animate)
	assert.Equal(t, 300*time.Millisecond, opts.Duration)
}
