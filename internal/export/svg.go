package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/scenecore/internal/viz"
)

// SceneSVG draws the chosen view of a snapshot as a square SVG.
func SceneSVG(s Snapshot, view View, size int) string {
	if size <= 0 {
		size = 512
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, size, size, size, size, background)

	for _, sh := range plan(s, view, float64(size)) {
		switch sh.kind {
		case shapeLine:
			fmt.Fprintf(&sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f" stroke-opacity="%.2f" stroke-linecap="round"/>
`, sh.x1, sh.y1, sh.x2, sh.y2, sh.color, sh.width, sh.alpha)
		case shapeDisc:
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" fill-opacity="%.2f"/>
`, sh.x1, sh.y1, sh.r, sh.color, sh.alpha)
		case shapeRing:
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="%.1f" stroke-dasharray="4 4"/>
`, sh.x1, sh.y1, sh.r, sh.color, sh.width)
		}
		if sh.label != "" {
			fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="11">%s</text>
`, sh.x1+sh.r+3, sh.y1+4, cardColor, html.EscapeString(sh.label))
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// CanvasToSVG converts a braille canvas to an SVG of dots, scale units per
// dot.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}
	pw, ph := canvas.Pixels()
	width, height := float64(pw)*scale, float64(ph)*scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, background, cardColor)

	r := scale * 0.4
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if canvas.Lit(x, y) {
				fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, (float64(x)+0.5)*scale, (float64(y)+0.5)*scale, r)
			}
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}
