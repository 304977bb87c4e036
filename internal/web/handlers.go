// ABOUTME: HTTP handlers for the dashboard page, chart images, and CSV export.
// ABOUTME: Each request parses the selection from the query string and recomputes.
package web

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/harperreed/genzhealth/internal/aggregate"
	"github.com/harperreed/genzhealth/internal/charts"
	"github.com/harperreed/genzhealth/internal/dashboard"
	"github.com/harperreed/genzhealth/internal/dataset"
	"github.com/harperreed/genzhealth/internal/filter"
	"github.com/harperreed/genzhealth/internal/report"
)

const (
	tabCharts = "charts"
	tabTable  = "table"

	pageSize = 50
)

type option struct {
	Value    string
	Selected bool
}

type control struct {
	Name    string
	Label   string
	Options []option
}

type tableData struct {
	Columns []string
	Rows    [][]string
	Page    int
	Pages   int
	PrevURL string
	NextURL string
}

type pageData struct {
	Title      string
	Subtitle   string
	Caption    string
	Controls   []control
	SampleSize int
	Empty      bool

	Tab       string
	ChartsURL string
	TableURL  string

	GenderChartURL       string
	BMIChartURL          string
	DistributionChartURL string
	HasGender            bool
	HasBMI               bool
	HasDistribution      bool
	Rug                  charts.RugStrip

	Table     tableData
	ExportURL string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sel := filter.ParseSelection(q)
	snap := s.svc.Snapshot(sel)

	tab := q.Get("tab")
	if tab != tabTable {
		tab = tabCharts
	}

	data := pageData{
		Title:      "Gen Z Health Habits Dashboard",
		Subtitle:   "Explore mental health patterns by gender, lifestyle, and BMI (BRFSS 2023)",
		Caption:    report.Attribution,
		Controls:   buildControls(s.svc.Options(), sel),
		SampleSize: snap.SampleSize,
		Empty:      snap.IsEmpty(),
		Tab:        tab,
		ChartsURL:  withQuery("/", sel, "tab", tabCharts),
		TableURL:   withQuery("/", sel, "tab", tabTable),
		ExportURL:  withQuery("/export.csv", sel),
	}

	switch tab {
	case tabCharts:
		data.GenderChartURL = withQuery("/charts/gender.svg", sel)
		data.BMIChartURL = withQuery("/charts/bmi.svg", sel)
		data.DistributionChartURL = withQuery("/charts/distribution.svg", sel)
		data.HasGender = aggregate.HasData(snap.ByGender)
		data.HasBMI = aggregate.HasData(snap.ByBMICategory)
		data.HasDistribution = !snap.Histogram.IsEmpty()
		data.Rug = charts.LayoutRug(snap.Rug, snap.Histogram)
	case tabTable:
		data.Table = buildTable(snap, sel, pageParam(q.Get("page")))
	}

	var buf bytes.Buffer
	if err := s.page.ExecuteTemplate(&buf, "dashboard.html", data); err != nil {
		log.Printf("render dashboard: %v", err)
		http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	ext := strings.TrimPrefix(path.Ext(name), ".")
	format, err := charts.ParseFormat(ext)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	snap := s.svc.Snapshot(filter.ParseSelection(r.URL.Query()))

	var buf bytes.Buffer
	switch strings.TrimSuffix(name, "."+ext) {
	case "gender":
		err = charts.GenderBars(&buf, snap.ByGender, format)
	case "bmi":
		err = charts.BMIBars(&buf, snap.ByBMICategory, format)
	case "distribution":
		err = charts.Distribution(&buf, snap.Histogram, format)
	default:
		http.NotFound(w, r)
		return
	}
	if errors.Is(err, charts.ErrNoData) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("render chart %s: %v", name, err)
		http.Error(w, "failed to render chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	view := s.svc.Filter(filter.ParseSelection(r.URL.Query()))

	data, err := dataset.EncodeCSV(view)
	if err != nil {
		log.Printf("export csv: %v", err)
		http.Error(w, "failed to export data", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", dataset.ExportFileName))
	_, _ = w.Write(data)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func buildControls(opts []dashboard.FilterOption, sel filter.Selection) []control {
	controls := make([]control, 0, len(opts))
	for _, o := range opts {
		current := sel.Get(o.Field)
		c := control{
			Name:  strings.ToLower(string(o.Field)),
			Label: o.Label,
		}
		for _, v := range o.Values {
			c.Options = append(c.Options, option{Value: v, Selected: v == current})
		}
		controls = append(controls, c)
	}
	return controls
}

func buildTable(snap *dashboard.Snapshot, sel filter.Selection, page int) tableData {
	total := snap.View.Len()
	pages := (total + pageSize - 1) / pageSize
	if pages == 0 {
		pages = 1
	}
	if page > pages {
		page = pages
	}

	t := tableData{
		Columns: snap.View.Columns(),
		Page:    page,
		Pages:   pages,
	}
	rows := snap.View.Page((page-1)*pageSize, pageSize)
	for i := 0; i < rows.Len(); i++ {
		t.Rows = append(t.Rows, rows.Cells(i))
	}
	if page > 1 {
		t.PrevURL = withQuery("/", sel, "tab", tabTable, "page", strconv.Itoa(page-1))
	}
	if page < pages {
		t.NextURL = withQuery("/", sel, "tab", tabTable, "page", strconv.Itoa(page+1))
	}
	return t
}

func pageParam(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// withQuery appends the selection and extra key/value pairs to a path.
func withQuery(p string, sel filter.Selection, kv ...string) string {
	q := sel.Query()
	for i := 0; i+1 < len(kv); i += 2 {
		q.Set(kv[i], kv[i+1])
	}
	if len(q) == 0 {
		return p
	}
	return p + "?" + q.Encode()
}
