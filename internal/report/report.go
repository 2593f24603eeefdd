// SPDX-License-Identifier: MIT

// Package report renders summaries, single trials and the model list for the
// terminal.
//
// Styled output uses lipgloss tables and is meant for interactive terminals.
// Plain output is tab-separated with a header line, one row per value, so it
// can be piped into other tools; IsTerminal picks between the two.
package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/spinmix/coupling"
	"github.com/katalvlaran/spinmix/model"
	"github.com/katalvlaran/spinmix/record"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorBorder = lipgloss.Color("#16858E")
	colorMuted  = lipgloss.Color("#2C4A54")
	colorWarn   = lipgloss.Color("#F4D03F")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	warnStyle   = lipgloss.NewStyle().Foreground(colorWarn)
)

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func formatParam(p float64) string { return strconv.FormatFloat(p, 'g', -1, 64) }

func seriesRows(s record.Series) [][]string {
	rows := make([][]string, 0, len(s.Points))
	for _, p := range s.Points {
		rows = append(rows, []string{
			formatParam(p.Param),
			strconv.Itoa(p.Count),
			fmt.Sprintf("%.2f", p.Mean),
			strconv.FormatUint(p.Min, 10),
			strconv.FormatUint(p.Max, 10),
			fmt.Sprintf("%.2f", p.StdDev),
		})
	}
	return rows
}

var seriesHeaders = []string{"param", "trials", "mean", "min", "max", "stddev"}

// WriteSeries renders one table per series.
func WriteSeries(w io.Writer, series []record.Series, styled bool) error {
	if !styled {
		var b strings.Builder
		b.WriteString("series\t" + strings.Join(seriesHeaders, "\t") + "\n")
		for _, s := range series {
			for _, row := range seriesRows(s) {
				b.WriteString(s.Label + "\t" + strings.Join(row, "\t") + "\n")
			}
		}
		_, err := io.WriteString(w, b.String())
		return err
	}

	for i, s := range series {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		t := newTable(seriesHeaders, seriesRows(s))
		if _, err := fmt.Fprintf(w, "%s\n%s\n", titleStyle.Render(s.Label), t.Render()); err != nil {
			return err
		}
	}
	return nil
}

// Trial describes one finished trial for display.
type Trial struct {
	Model  string
	N      int
	Param  float64
	Result coupling.Result
}

// WriteTrial renders a single trial.
func WriteTrial(w io.Writer, tr Trial, styled bool) error {
	status := "coalesced"
	if !tr.Result.Coalesced {
		status = "not coalesced"
	}
	fields := [][2]string{
		{"model", tr.Model},
		{"n", strconv.Itoa(tr.N)},
		{"param", formatParam(tr.Param)},
		{"iterations", strconv.FormatUint(tr.Result.Steps, 10)},
		{"duration", tr.Result.Duration.String()},
		{"status", status},
	}
	if !styled {
		var b strings.Builder
		for _, f := range fields {
			b.WriteString(f[0] + "\t" + f[1] + "\n")
		}
		_, err := io.WriteString(w, b.String())
		return err
	}

	var b strings.Builder
	for _, f := range fields {
		v := f[1]
		if f[0] == "status" && !tr.Result.Coalesced {
			v = warnStyle.Render(v)
		}
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%-10s", f[0])) + " " + v + "\n")
	}
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1)
	_, err := fmt.Fprintln(w, box.Render(strings.TrimRight(b.String(), "\n")))
	return err
}

// WriteModels lists the registered models with their default ranges.
func WriteModels(w io.Writer, models []model.Model, styled bool) error {
	headers := []string{"model", "topology", "rule", "param", "low", "high", "step", "coupling", "note"}
	rows := make([][]string, 0, len(models))
	for _, m := range models {
		rows = append(rows, []string{
			m.Name, m.Kind.String(), m.Rule.Name(), m.Param,
			formatParam(m.Defaults.Low), formatParam(m.Defaults.High), formatParam(m.Defaults.Step),
			m.Coupling, m.Note,
		})
	}
	if !styled {
		var b strings.Builder
		b.WriteString(strings.Join(headers, "\t") + "\n")
		for _, r := range rows {
			b.WriteString(strings.Join(r, "\t") + "\n")
		}
		_, err := io.WriteString(w, b.String())
		return err
	}
	_, err := fmt.Fprintln(w, newTable(headers, rows).Render())
	return err
}

func newTable(headers []string, rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}
