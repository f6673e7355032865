package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#55BF3B"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7798BF")).Width(10)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"})
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#606060")).Padding(0, 1)
)

type renderSummary struct {
	RenderTo string
	Format   string
	Bytes    int
	Source   string
	OutPath  string
	Duration time.Duration
}

func (s renderSummary) rows() [][2]string {
	return [][2]string{
		{"target", s.RenderTo},
		{"format", s.Format},
		{"source", s.Source},
		{"output", fmt.Sprintf("%s (%d bytes)", s.OutPath, s.Bytes)},
		{"duration", s.Duration.Round(time.Millisecond).String()},
	}
}

// formatSummary renders a boxed summary on terminals and plain key: value
// lines everywhere else.
func formatSummary(s renderSummary, styled bool) string {
	if !styled {
		var b strings.Builder
		b.WriteString("Chart rendered\n")
		for _, row := range s.rows() {
			fmt.Fprintf(&b, "  %-9s %s\n", row[0]+":", row[1])
		}
		return strings.TrimRight(b.String(), "\n")
	}

	lines := []string{okStyle.Render("✔ Chart rendered")}
	for _, row := range s.rows() {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(row[0]), valueStyle.Render(row[1])))
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func isTerminal(writer io.Writer) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
