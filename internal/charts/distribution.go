// ABOUTME: Distribution chart: histogram of MENTHLTH stacked by gender.
// ABOUTME: Also lays out the rug strip marks rendered by the web page.
package charts

import (
	"fmt"
	"io"
	"math"

	"github.com/harperreed/genzhealth/internal/aggregate"
	"github.com/harperreed/genzhealth/internal/models"
	"github.com/wcharczuk/go-chart/v2"
)

// Distribution renders the histogram with one stacked layer per gender.
func Distribution(w io.Writer, h aggregate.Histogram, f Format) error {
	if h.IsEmpty() {
		return ErrNoData
	}

	bins := h.Bins()
	centers := make([]float64, bins)
	for i := 0; i < bins; i++ {
		centers[i] = (h.Edges[i] + h.Edges[i+1]) / 2
	}

	// Stacks are drawn tallest first so each later layer covers the one
	// below it, leaving a visible band per gender.
	cumulative := make([][]float64, len(h.Groups))
	running := make([]float64, bins)
	for gi, g := range h.Groups {
		for b := 0; b < bins; b++ {
			running[b] += float64(h.Counts[g][b])
		}
		cumulative[gi] = append([]float64(nil), running...)
	}

	top := 0.0
	for _, v := range running {
		top = math.Max(top, v)
	}

	series := make([]chart.Series, 0, len(h.Groups))
	for gi := len(h.Groups) - 1; gi >= 0; gi-- {
		color := paletteColor(plotly, gi)
		series = append(series, chart.HistogramSeries{
			Name: h.Groups[gi],
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: color,
				StrokeWidth: 1,
			},
			InnerSeries: chart.ContinuousSeries{
				XValues: centers,
				YValues: cumulative[gi],
			},
		})
	}

	lo, hi := h.Edges[0], h.Edges[bins]
	graph := chart.Chart{
		Title:      "Distribution of Poor Mental Health Days by Gender",
		TitleStyle: titleStyle,
		Width:      defaultWidth,
		Height:     defaultHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{
			Name:           models.FieldMentHlth.Label(),
			Range:          &chart.ContinuousRange{Min: lo, Max: hi},
			ValueFormatter: daysFormatter,
		},
		YAxis: chart.YAxis{
			Name:           "Count",
			Range:          &chart.ContinuousRange{Min: 0, Max: axisMax(top)},
			ValueFormatter: countFormatter,
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(f.provider(), w); err != nil {
		return fmt.Errorf("render distribution: %w", err)
	}
	return nil
}

func countFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return ""
}

// RugMark is one tick of the rug strip.
type RugMark struct {
	X       float64
	Y1, Y2  float64
	Color   string
	Tooltip string
}

// RugStrip is the laid-out rug plot drawn under the histogram.
type RugStrip struct {
	Width  int
	Height int
	Lanes  []RugLane
	Marks  []RugMark
}

// RugLane labels the row of one gender.
type RugLane struct {
	Label string
	Y     float64
	Color string
}

const (
	rugLaneHeight = 18
	rugPadLeft    = 80
	rugPadRight   = 16
)

// LayoutRug positions one mark per point: x by MENTHLTH on the histogram
// range, one lane per gender in the histogram's group order.
func LayoutRug(points []aggregate.RugPoint, h aggregate.Histogram) RugStrip {
	strip := RugStrip{Width: defaultWidth}
	if len(points) == 0 || h.IsEmpty() {
		return strip
	}

	lane := make(map[string]int, len(h.Groups))
	for i, g := range h.Groups {
		lane[g] = i
		strip.Lanes = append(strip.Lanes, RugLane{
			Label: g,
			Y:     float64(i*rugLaneHeight + rugLaneHeight/2),
			Color: Color(i),
		})
	}
	strip.Height = len(h.Groups) * rugLaneHeight

	lo, hi := h.Edges[0], h.Edges[h.Bins()]
	span := float64(defaultWidth - rugPadLeft - rugPadRight)
	for _, p := range points {
		i, ok := lane[p.Gender]
		if !ok {
			continue
		}
		x := rugPadLeft + (p.MentHlth-lo)/(hi-lo)*span
		strip.Marks = append(strip.Marks, RugMark{
			X:       x,
			Y1:      float64(i*rugLaneHeight + 2),
			Y2:      float64((i+1)*rugLaneHeight - 2),
			Color:   Color(i),
			Tooltip: rugTooltip(p),
		})
	}
	return strip
}

func rugTooltip(p aggregate.RugPoint) string {
	bmi := "n/a"
	if p.BMI != nil {
		bmi = fmt.Sprintf("%.1f", *p.BMI)
	}
	return fmt.Sprintf("%s: %g days\nBMI: %s\nExercise: %s\nDrinker: %s",
		p.Gender, p.MentHlth, bmi,
		models.StringOr(p.Exercise, "n/a"),
		models.StringOr(p.Drinker, "n/a"))
}
