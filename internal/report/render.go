package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	tableStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
)

const maxTableRows = 20

// Write renders the per-seed table, the mean population chart and the
// summary to w.
func Write(w io.Writer, opts Options, results []Result) error {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Life survey  %d soups  %dx%d  density %.2f  %d generations",
		len(results), opts.Rows, opts.Cols, opts.Density, opts.Generations)))
	b.WriteString("\n")
	b.WriteString(tableStyle.Render(table(results)))
	b.WriteString("\n")

	if mean := MeanHistory(results); len(mean) > 1 {
		chart := asciigraph.Plot(mean, asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption("mean population"))
		b.WriteString(graphStyle.Render(chart))
		b.WriteString("\n")
	}

	sum := Summarize(results)
	rows := []string{
		row("runs", fmt.Sprintf("%d", sum.Runs)),
		row("extinct", fmt.Sprintf("%d", sum.Extinct)),
		row("settled", fmt.Sprintf("%d", sum.Settled)),
		row("mean final", fmt.Sprintf("%.1f", sum.MeanFinal)),
		row("max peak", fmt.Sprintf("%d (seed %d)", sum.MaxPeak, sum.MaxPeakSeed)),
	}
	b.WriteString(statsStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}

func table(results []Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%8s %8s %8s %8s %8s %8s\n", "seed", "initial", "final", "peak", "repeat", "period")
	for i, r := range results {
		if i == maxTableRows {
			fmt.Fprintf(&b, "... %d more\n", len(results)-maxTableRows)
			break
		}
		repeat, period := "-", "-"
		if r.Settled() {
			repeat, period = fmt.Sprint(r.RepeatAt), fmt.Sprint(r.Period)
		}
		fmt.Fprintf(&b, "%8d %8d %8d %8d %8s %8s\n", r.Seed, r.Initial, r.Final, r.Peak, repeat, period)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
