package export

import (
	"strings"
	"testing"
)

func TestChartSVG(t *testing.T) {
	lines := []Line{
		{Values: []float64{1, 2, 3, 2, 1}, Color: "#4488ff"},
		{Values: []float64{1, 0}, Offset: 5, Color: "#ff8844"},
	}
	out := ChartSVG(lines, 640, 480)

	if !strings.HasPrefix(out, `<?xml version="1.0"`) {
		t.Error("missing xml declaration")
	}
	if !strings.Contains(out, "<svg") || !strings.HasSuffix(out, "</svg>") {
		t.Error("not a complete svg document")
	}
	if strings.Count(out, "<path") != 2 {
		t.Errorf("expected 2 paths, got %d", strings.Count(out, "<path"))
	}
	if !strings.Contains(out, "#4488ff") || !strings.Contains(out, "#ff8844") {
		t.Error("line colors not applied")
	}
}

func TestChartSVGDegenerate(t *testing.T) {
	if out := ChartSVG(nil, 100, 100); out != "" {
		t.Error("empty chart should render nothing")
	}
	if out := ChartSVG([]Line{{Values: []float64{1}}}, 100, 100); out != "" {
		t.Error("single-point chart should render nothing")
	}
}

func TestChartSVGConstantLine(t *testing.T) {
	// A flat line must not divide by a zero vertical range.
	out := ChartSVG([]Line{{Values: []float64{5, 5, 5}}}, 100, 100)
	if !strings.Contains(out, "<path") {
		t.Error("constant line should still render")
	}
	if strings.Contains(out, "NaN") || strings.Contains(out, "Inf") {
		t.Error("degenerate coordinates leaked into the output")
	}
}
