package analyticsservice

import (
	"bytes"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartPalette holds the colours of generated charts.
type ChartPalette struct {
	Background drawing.Color
	Bar        drawing.Color
	TextColor  drawing.Color
}

// DefaultPalette is green bars on white.
var DefaultPalette = ChartPalette{
	Background: drawing.ColorWhite,
	Bar:        drawing.Color{R: 0, G: 122, B: 61, A: 255},
	TextColor:  drawing.Color{R: 40, G: 40, B: 40, A: 255},
}

// GenerateGoalsChart produces a PNG bar chart of goals scored per team.
func GenerateGoalsChart(teams []TeamSummary, palette ChartPalette) ([]byte, error) {
	if len(teams) == 0 {
		return renderNoDataPlaceholder(palette)
	}

	bars := make([]chart.Value, len(teams))
	maxGoals := 1.0
	for i, t := range teams {
		goals := float64(t.Stats.GoalsScored)
		if goals > maxGoals {
			maxGoals = goals
		}
		bars[i] = chart.Value{
			Label: t.Country,
			Value: goals,
			Style: chart.Style{
				FillColor:   palette.Bar,
				StrokeColor: palette.Bar,
			},
		}
	}

	graph := chart.BarChart{
		Title:  "Goals scored",
		Width:  100 + 90*len(teams),
		Height: 400,
		Background: chart.Style{
			FillColor: palette.Background,
			Padding:   chart.Box{Top: 40},
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		TitleStyle: chart.Style{
			FontColor: palette.TextColor,
		},
		XAxis: chart.Style{
			FontColor: palette.TextColor,
		},
		YAxis: chart.YAxis{
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
			// An all-zero history still needs a non-empty range.
			Range: &chart.ContinuousRange{Min: 0, Max: maxGoals},
		},
		BarWidth: 50,
		Bars:     bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

const (
	placeholderWidth  = 400
	placeholderHeight = 200
	placeholderText   = "No teams registered"
)

// renderNoDataPlaceholder paints a centred notice on a blank canvas. A chart
// needs at least one series to render, so this draws on the renderer directly.
func renderNoDataPlaceholder(palette ChartPalette) ([]byte, error) {
	r, err := chart.PNG(placeholderWidth, placeholderHeight)
	if err != nil {
		return nil, err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}
	r.SetDPI(chart.DefaultDPI)

	r.SetFillColor(palette.Background)
	r.MoveTo(0, 0)
	r.LineTo(placeholderWidth, 0)
	r.LineTo(placeholderWidth, placeholderHeight)
	r.LineTo(0, placeholderHeight)
	r.Close()
	r.Fill()

	r.SetFont(font)
	r.SetFontColor(palette.TextColor)
	r.SetFontSize(12)
	tb := r.MeasureText(placeholderText)
	r.Text(placeholderText, (placeholderWidth-tb.Width())/2, (placeholderHeight+tb.Height())/2)

	buffer := bytes.NewBuffer([]byte{})
	if err := r.Save(buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
