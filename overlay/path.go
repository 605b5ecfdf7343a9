// Package overlay generates SVG backdrop markup with a rounded
// rectangular cutout around a tour target. The generated path paints
// the whole viewport and, under the even-odd fill rule, leaves a
// transparent hole where the inner subpath overlaps the outer one.
package overlay

import (
	"math"
	"strconv"
	"strings"

	"github.com/docent-dev/docent"
)

// CutoutPath returns a single SVG path covering viewport with a hole
// around target. The target rectangle is inflated by padding on all
// sides and clamped to the viewport; corners are rounded by radius,
// clamped to half of the smaller cutout dimension. The result is empty
// when the viewport, the target, or the clamped cutout has no area.
//
// The path only renders as a cutout with fill-rule="evenodd"; Markup
// emits a complete element with that rule applied.
func CutoutPath(viewport docent.Size, target docent.Rect, padding, radius float64) string {
	if viewport.Width <= 0 || viewport.Height <= 0 || target.IsEmpty() {
		return ""
	}

	cut := clampToViewport(target.Inflate(padding), viewport)
	if cut.IsEmpty() {
		return ""
	}

	var path strings.Builder
	writeOuter(&path, viewport)
	path.WriteByte(' ')
	writeInner(&path, cut, clampRadius(radius, cut))
	return path.String()
}

// clampToViewport keeps r inside the viewport, shrinking its width and
// height as the origin and far edges are pulled in.
func clampToViewport(r docent.Rect, viewport docent.Size) docent.Rect {
	if r.X < 0 {
		r.Width += r.X
		r.X = 0
	}
	if r.Y < 0 {
		r.Height += r.Y
		r.Y = 0
	}
	if r.X+r.Width > viewport.Width {
		r.Width = viewport.Width - r.X
	}
	if r.Y+r.Height > viewport.Height {
		r.Height = viewport.Height - r.Y
	}
	return r
}

func clampRadius(radius float64, cut docent.Rect) float64 {
	if radius <= 0 {
		return 0
	}
	return math.Min(radius, math.Min(cut.Width, cut.Height)/2)
}

// writeOuter traces the full viewport clockwise in absolute commands.
func writeOuter(b *strings.Builder, viewport docent.Size) {
	w := fmtNum(viewport.Width)
	h := fmtNum(viewport.Height)
	b.WriteString("M")
	b.WriteString(w)
	b.WriteString(",0 L0,0 L0,")
	b.WriteString(h)
	b.WriteString(" L")
	b.WriteString(w)
	b.WriteString(",")
	b.WriteString(h)
	b.WriteString(" L")
	b.WriteString(w)
	b.WriteString(",0 Z")
}

// writeInner traces the cutout counter to the outer subpath's effect:
// under the even-odd rule the overlap is unfilled. Relative commands
// keep the string short; radius 0 degrades to a plain rectangle.
func writeInner(b *strings.Builder, cut docent.Rect, r float64) {
	if r == 0 {
		b.WriteString("M")
		b.WriteString(fmtNum(cut.X))
		b.WriteString(",")
		b.WriteString(fmtNum(cut.Y))
		b.WriteString(" h")
		b.WriteString(fmtNum(cut.Width))
		b.WriteString(" v")
		b.WriteString(fmtNum(cut.Height))
		b.WriteString(" h")
		b.WriteString(fmtNum(-cut.Width))
		b.WriteString(" v")
		b.WriteString(fmtNum(-cut.Height))
		b.WriteString(" z")
		return
	}

	innerW := cut.Width - 2*r
	innerH := cut.Height - 2*r

	b.WriteString("M")
	b.WriteString(fmtNum(cut.X + r))
	b.WriteString(",")
	b.WriteString(fmtNum(cut.Y))
	b.WriteString(" h")
	b.WriteString(fmtNum(innerW))
	writeArc(b, r, r, r)
	b.WriteString(" v")
	b.WriteString(fmtNum(innerH))
	writeArc(b, r, -r, r)
	b.WriteString(" h")
	b.WriteString(fmtNum(-innerW))
	writeArc(b, r, -r, -r)
	b.WriteString(" v")
	b.WriteString(fmtNum(-innerH))
	writeArc(b, r, r, -r)
	b.WriteString(" z")
}

// writeArc emits a quarter-circle corner. All four corners share the
// same sweep direction, matching the clockwise inner trace.
func writeArc(b *strings.Builder, r, dx, dy float64) {
	rs := fmtNum(r)
	b.WriteString(" a")
	b.WriteString(rs)
	b.WriteString(",")
	b.WriteString(rs)
	b.WriteString(" 0 0 1 ")
	b.WriteString(fmtNum(dx))
	b.WriteString(",")
	b.WriteString(fmtNum(dy))
}

// fmtNum renders v without trailing zeros; integral values print with
// no decimal point and negative zero normalizes to "0".
func fmtNum(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
