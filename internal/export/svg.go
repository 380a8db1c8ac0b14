// Package export renders series and forecasts to standalone SVG files.
package export

import (
	"fmt"
	"strings"
)

// Line is a named polyline in chart coordinates.
type Line struct {
	Values []float64
	Offset int // x position of the first sample
	Color  string
}

// ChartSVG renders one or more lines on a shared scale. The history
// series and the forecast are drawn as separate lines so the forecast
// horizon is visually distinct.
func ChartSVG(lines []Line, width, height int) string {
	total := 0
	for _, l := range lines {
		if end := l.Offset + len(l.Values); end > total {
			total = end
		}
	}
	if total < 2 {
		return ""
	}

	minY, maxY := 0.0, 0.0
	first := true
	for _, l := range lines {
		for _, v := range l.Values {
			if first {
				minY, maxY = v, v
				first = false
				continue
			}
			if v < minY {
				minY = v
			}
			if v > maxY {
				maxY = v
			}
		}
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for _, l := range lines {
		if len(l.Values) < 2 {
			continue
		}
		color := l.Color
		if color == "" {
			color = "#00ff00"
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for i, v := range l.Values {
			x := float64(l.Offset+i) / float64(total-1) * float64(width)
			y := float64(height) - (v-minY)/rangeY*float64(height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}
