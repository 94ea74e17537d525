package report

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"assetboard/internal/analytics"
	apperrors "assetboard/internal/errors"
)

const (
	barWidth     = 40
	barSpacing   = 16
	maxBarLabel  = 14
	chartHeight  = 480
	minBarsWidth = 640
)

// tagColors maps entry tags to the dashboard palette.
var tagColors = map[analytics.Tag]drawing.Color{
	analytics.TagGain:    drawing.ColorFromHex("10B981"),
	analytics.TagLoss:    drawing.ColorFromHex("EF4444"),
	analytics.TagNeutral: drawing.ColorFromHex("6B7280"),
	analytics.TagGroup:   drawing.ColorFromHex("2563EB"),
}

// rankingNeutral marks zero entries of a ranking; grey stays with the
// breakdown's "Other" slice.
var rankingNeutral = drawing.ColorFromHex("F59E0B")

// groupPalette tells neighbouring level-1 slices apart; they all carry
// the group tag.
var groupPalette = []drawing.Color{
	drawing.ColorFromHex("2563EB"),
	drawing.ColorFromHex("1D4ED8"),
	drawing.ColorFromHex("3B82F6"),
	drawing.ColorFromHex("1E40AF"),
	drawing.ColorFromHex("60A5FA"),
}

func rankingFill(tag analytics.Tag) drawing.Color {
	if tag == analytics.TagNeutral {
		return rankingNeutral
	}
	return drawing.Color{}
}

func tagStyle(tag analytics.Tag, fill drawing.Color) chart.Style {
	if fill.IsZero() {
		fill = tagColors[tag]
	}
	return chart.Style{
		FillColor:   fill,
		StrokeColor: drawing.ColorWhite,
		StrokeWidth: 1,
	}
}

// BreakdownChart renders the level-1 nodes of a breakdown as a PNG pie
// chart. A breakdown without positive nodes yields ErrEmptyChart.
func BreakdownChart(root analytics.GroupNode) ([]byte, error) {
	values := make([]chart.Value, 0, len(root.Children))
	for i, node := range root.Children {
		if node.Magnitude <= 0 {
			continue
		}
		var fill drawing.Color
		if node.Tag == analytics.TagGroup {
			fill = groupPalette[i%len(groupPalette)]
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %s", node.Name, analytics.FormatPercentage(node.Share)),
			Value: node.Magnitude,
			Style: tagStyle(node.Tag, fill),
		})
	}
	if len(values) == 0 {
		return nil, apperrors.ErrEmptyChart
	}

	pie := chart.PieChart{
		Title:  root.Name,
		Width:  chartHeight,
		Height: chartHeight,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// RankingChart renders up to limit ranked entries as a PNG bar chart
// coloured by tag. A limit of zero or less draws every entry. An empty
// ranking yields ErrEmptyChart.
func RankingChart(title string, entries []analytics.RankedEntry, limit int) ([]byte, error) {
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	if len(entries) == 0 {
		return nil, apperrors.ErrEmptyChart
	}

	bars := make([]chart.Value, len(entries))
	var top float64
	for i, e := range entries {
		bars[i] = chart.Value{
			Label: truncate(e.Name, maxBarLabel),
			Value: e.Magnitude,
			Style: tagStyle(e.Tag, rankingFill(e.Tag)),
		}
		if e.Magnitude > top {
			top = e.Magnitude
		}
	}

	width := len(bars)*(barWidth+barSpacing) + 160
	if width < minBarsWidth {
		width = minBarsWidth
	}

	graph := chart.BarChart{
		Title:      title,
		Width:      width,
		Height:     chartHeight,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		UseBaseValue: true,
		BaseValue:    0,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: top},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0fk", f/1000)
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
