package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

const (
	plotWidth  = 80
	plotHeight = 12
)

var (
	captionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	graphStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

// Plot renders the speed trace and each actuator's applied limiter
// percentage as terminal graphs.
func Plot(speeds []float64, percents map[string][]float64) string {
	var b strings.Builder

	b.WriteString(captionStyle.Render("surface speed (m/s)"))
	b.WriteString("\n")
	b.WriteString(graphStyle.Render(graph(speeds)))
	b.WriteString("\n")

	names := make([]string, 0, len(percents))
	for name := range percents {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		b.WriteString(captionStyle.Render(fmt.Sprintf("%s limiter (%%)", name)))
		b.WriteString("\n")
		b.WriteString(graphStyle.Render(graph(percents[name])))
		b.WriteString("\n")
	}
	return b.String()
}

func graph(series []float64) string {
	if len(series) == 0 {
		return "(no data)"
	}
	return asciigraph.Plot(downsample(series, plotWidth),
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
	)
}

// downsample keeps terminal plots readable for long runs.
func downsample(series []float64, width int) []float64 {
	if len(series) <= width {
		return series
	}
	out := make([]float64, width)
	for i := range out {
		out[i] = series[i*len(series)/width]
	}
	return out
}
