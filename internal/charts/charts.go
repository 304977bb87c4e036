// ABOUTME: Chart rendering for the dashboard using go-chart.
// ABOUTME: Bar charts of mean MENTHLTH by gender and BMI category, SVG or PNG.
package charts

import (
	"errors"
	"fmt"
	"io"

	"github.com/harperreed/genzhealth/internal/aggregate"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("no data to plot")

// Format selects the output encoding of a chart.
type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
)

// ParseFormat maps a file extension to a Format.
func ParseFormat(ext string) (Format, error) {
	switch Format(ext) {
	case SVG, PNG:
		return Format(ext), nil
	}
	return "", fmt.Errorf("unknown chart format: %q (use svg or png)", ext)
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == PNG {
		return "image/png"
	}
	return "image/svg+xml"
}

func (f Format) provider() chart.RendererProvider {
	if f == PNG {
		return chart.PNG
	}
	return chart.SVG
}

// Qualitative palettes.
var (
	set2 = []string{"66c2a5", "fc8d62", "8da0cb", "e78ac3", "a6d854", "ffd92f", "e5c494", "b3b3b3"}
	set1 = []string{"e41a1c", "377eb8", "4daf4a", "984ea3", "ff7f00", "ffff33", "a65628", "f781bf"}
	// Plotly's default sequence, used for the distribution chart.
	plotly = []string{"636efa", "EF553B", "00cc96", "ab63fa", "FFA15A", "19d3f3", "FF6692", "B6E880"}
)

// Color returns the hex color (with leading #) of the i-th entry of the
// distribution palette.
func Color(i int) string {
	return "#" + plotly[i%len(plotly)]
}

func paletteColor(palette []string, i int) drawing.Color {
	return drawing.ColorFromHex(palette[i%len(palette)])
}

const (
	defaultWidth  = 720
	defaultHeight = 420
	barWidth      = 100
)

// Titles are drawn centered by go-chart.
var titleStyle = chart.Style{FontSize: 14}

// GenderBars renders mean poor-mental-health days per gender.
func GenderBars(w io.Writer, groups []aggregate.GroupMean, f Format) error {
	return meanBars(w, "Avg Poor Mental Health Days by Gender", groups, set2, f)
}

// BMIBars renders mean poor-mental-health days per BMI category. Empty
// categories keep their slot on the axis.
func BMIBars(w io.Writer, groups []aggregate.GroupMean, f Format) error {
	return meanBars(w, "Avg Mental Health by BMI Category", groups, set1, f)
}

func meanBars(w io.Writer, title string, groups []aggregate.GroupMean, palette []string, f Format) error {
	if !aggregate.HasData(groups) {
		return ErrNoData
	}

	bars := make([]chart.Value, 0, len(groups))
	top := 0.0
	for i, g := range groups {
		v := 0.0
		if g.Mean != nil {
			v = aggregate.RoundTo2(*g.Mean)
		}
		if v > top {
			top = v
		}
		color := paletteColor(palette, i)
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%s (%s)", g.Key, g.Label()),
			Value: v,
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: color,
				StrokeWidth: 1,
			},
		})
	}

	graph := chart.BarChart{
		Title:      title,
		TitleStyle: titleStyle,
		Width:      defaultWidth,
		Height:     defaultHeight,
		BarWidth:   barWidth,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		YAxis: chart.YAxis{
			Name:           "Days",
			Range:          &chart.ContinuousRange{Min: 0, Max: axisMax(top)},
			ValueFormatter: daysFormatter,
		},
		Bars: bars,
	}

	if err := graph.Render(f.provider(), w); err != nil {
		return fmt.Errorf("render %q: %w", title, err)
	}
	return nil
}

// axisMax leaves headroom above the tallest bar and keeps the range
// non-zero when every value is 0.
func axisMax(top float64) float64 {
	if top <= 0 {
		return 1
	}
	return top * 1.15
}

func daysFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.1f", f)
	}
	return ""
}
