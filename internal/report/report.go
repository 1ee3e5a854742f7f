// Package report renders the outcome of a run as a terminal table, a
// Markdown table or a JSON document.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/specialistvlad/seedgrid/internal/competition"
	"github.com/tidwall/sjson"
)

// StrategyRow describes one strategy of a run.
type StrategyRow struct {
	Label    string
	Flag     string
	Family   string
	Distinct int
	Cached   bool
	Elapsed  time.Duration
	Err      error
}

// Report is everything a run produced.
type Report struct {
	Graph       string
	Seeds       int
	Trials      int
	Strategies  []StrategyRow
	Competition []competition.TeamSummary
}

// Failed counts the strategies that ended with an error.
func (r *Report) Failed() int {
	failed := 0
	for _, s := range r.Strategies {
		if s.Err != nil {
			failed++
		}
	}
	return failed
}

// Mode controls the table output format.
type Mode int

const (
	ASCII    Mode = iota // Fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// WriteText renders the strategy table and, when present, the competition
// table.
func WriteText(w io.Writer, r *Report, m Mode) error {
	st := newTable(m)
	st.SetTitle(fmt.Sprintf("%s, %d seeds", r.Graph, r.Seeds))
	st.AppendHeader(table.Row{"Strategy", "Flag", "Family", "Distinct", "Source", "Elapsed", "Status"})
	for _, s := range r.Strategies {
		source := "generated"
		if s.Cached {
			source = "cached"
		}
		status := "ok"
		if s.Err != nil {
			status = s.Err.Error()
		}
		st.AppendRow(table.Row{s.Label, s.Flag, s.Family, s.Distinct, source, s.Elapsed.Round(time.Millisecond), status})
	}
	st.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 7, WidthMax: 60},
	})
	if _, err := io.WriteString(w, render(st, m)+"\n"); err != nil {
		return err
	}

	if len(r.Competition) == 0 {
		return nil
	}
	ct := newTable(m)
	ct.SetTitle(fmt.Sprintf("Competition, %d trials", r.Trials))
	ct.AppendHeader(table.Row{"Team", "Wins", "Mean payoff", "Mean unique seeds"})
	for _, s := range r.Competition {
		ct.AppendRow(table.Row{s.Team, s.Wins, fmt.Sprintf("%.2f", s.MeanPayoff), fmt.Sprintf("%.2f", s.MeanUnique)})
	}
	ct.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	_, err := io.WriteString(w, render(ct, m)+"\n")
	return err
}

func newTable(m Mode) table.Writer {
	t := table.NewWriter()
	if m == ASCII {
		t.SetStyle(table.StyleLight)
	}
	return t
}

func render(t table.Writer, m Mode) string {
	if m == Markdown {
		return t.RenderMarkdown()
	}
	return t.Render()
}

// JSON encodes the report as a JSON document.
func JSON(r *Report) ([]byte, error) {
	doc := `{"strategies":[],"competition":[]}`
	var err error
	set := func(path string, v any) {
		if err == nil {
			doc, err = sjson.Set(doc, path, v)
		}
	}

	set("graph", r.Graph)
	set("seeds", r.Seeds)
	set("trials", r.Trials)
	set("failed", r.Failed())

	for _, s := range r.Strategies {
		row := `{}`
		setRow := func(path string, v any) {
			if err == nil {
				row, err = sjson.Set(row, path, v)
			}
		}
		setRow("label", s.Label)
		setRow("flag", s.Flag)
		setRow("family", s.Family)
		setRow("distinct", s.Distinct)
		setRow("cached", s.Cached)
		setRow("elapsed_ms", s.Elapsed.Milliseconds())
		if s.Err != nil {
			setRow("error", s.Err.Error())
		}
		if err == nil {
			doc, err = sjson.SetRaw(doc, "strategies.-1", row)
		}
	}

	for _, s := range r.Competition {
		row := `{}`
		setRow := func(path string, v any) {
			if err == nil {
				row, err = sjson.Set(row, path, v)
			}
		}
		setRow("team", s.Team)
		setRow("wins", s.Wins)
		setRow("mean_payoff", s.MeanPayoff)
		setRow("mean_unique", s.MeanUnique)
		if err == nil {
			doc, err = sjson.SetRaw(doc, "competition.-1", row)
		}
	}

	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return []byte(doc), nil
}

// WriteFile writes the report to path. The extension picks the format:
// .json for JSON, .md for Markdown, anything else for a plain table.
func WriteFile(path string, r *Report) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	var data []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		var err error
		if data, err = JSON(r); err != nil {
			return err
		}
	case ".md":
		var b strings.Builder
		if err := WriteText(&b, r, Markdown); err != nil {
			return err
		}
		data = []byte(b.String())
	default:
		var b strings.Builder
		if err := WriteText(&b, r, ASCII); err != nil {
			return err
		}
		data = []byte(b.String())
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
