package overlay

import (
	"strconv"
	"strings"
	"time"
)

// Markup renders the overlay as a complete SVG element, for server-side
// rendering or golden-file comparison. It returns an empty string when
// the overlay is hidden or has no path to draw.
func (o *Overlay) Markup() string {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if !o.visible || o.path == "" {
		return ""
	}

	w := fmtNum(o.viewport.Width)
	h := fmtNum(o.viewport.Height)

	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="`)
	b.WriteString(w)
	b.WriteString(`" height="`)
	b.WriteString(h)
	b.WriteString(`" viewBox="0 0 `)
	b.WriteString(w)
	b.WriteString(" ")
	b.WriteString(h)
	b.WriteString(`"><path d="`)
	b.WriteString(o.path)
	b.WriteString(`" fill="`)
	b.WriteString(o.opts.Color)
	b.WriteString(`" fill-opacity="`)
	b.WriteString(fmtNum(o.opts.Opacity))
	b.WriteString(`" fill-rule="evenodd" pointer-events="`)
	if o.interactive {
		b.WriteString("none")
	} else {
		b.WriteString("auto")
	}
	b.WriteString(`"`)
	if o.opts.Animate {
		b.WriteString(` style="transition: d `)
		b.WriteString(strconv.FormatInt(int64(o.opts.Duration/time.Millisecond), 10))
		b.WriteString(`ms ease"`)
	}
	b.WriteString(`/></svg>`)
	return b.String()
}
