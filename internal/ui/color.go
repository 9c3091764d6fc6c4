package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chriserin/earley/internal/grammar"
)

var (
	newStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	trkStyle     = lipgloss.NewStyle().Faint(true)
	acceptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	rejectStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	headStyle    = lipgloss.NewStyle().Bold(true)
	arrowStyle   = lipgloss.NewStyle().Faint(true)
	diagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	verdictStyle = lipgloss.NewStyle().Faint(true)
)

func NewLine(w io.Writer, path string) {
	fmt.Fprintln(w, newStyle.Render("new")+"  "+path)
}

func TrkLine(w io.Writer, path string) {
	fmt.Fprintln(w, trkStyle.Render("trk")+"  "+path)
}

func SummaryLine(w io.Writer, count int) {
	fmt.Fprintf(w, "synced %d grammars\n", count)
}

func ListRow(w io.Writer, id int64, fileName string, ruleCount int, verdict string, idWidth, fileWidth int) {
	tag := fmt.Sprintf("@g:%d", id)
	rules := fmt.Sprintf("%d rules", ruleCount)
	if ruleCount == 1 {
		rules = "1 rule"
	}
	fmt.Fprintf(w, "%-*s  %-*s  %-9s %s\n", idWidth, tag, fileWidth, fileName, rules, verdictStyle.Render(verdict))
}

func ShowHeader(w io.Writer, id int64, fileName string) {
	fmt.Fprintln(w, headStyle.Render(fmt.Sprintf("@g:%d", id))+"  "+fileName)
}

func RuleLine(w io.Writer, r grammar.Rule) {
	body := grammar.Epsilon
	if len(r.Body) > 0 {
		body = strings.Join(r.Body, " ")
	}
	fmt.Fprintln(w, "  "+headStyle.Render(r.Head)+" "+arrowStyle.Render("→")+" "+body)
}

func LoadDiagnostic(w io.Writer, path string, e grammar.ParseError) {
	fmt.Fprintln(w, diagStyle.Render(fmt.Sprintf("%s:%d: %s", path, e.Line, e.Message)))
}

func HistoryRow(w io.Writer, accepted bool, sentence, fileName, parsedAt string) {
	mark := acceptStyle.Render("✓")
	if !accepted {
		mark = rejectStyle.Render("✗")
	}
	if sentence == "" {
		sentence = grammar.Epsilon
	}
	fmt.Fprintf(w, "  %s  %-30s %-20s %s\n", mark, "'"+sentence+"'", fileName, trkStyle.Render(parsedAt))
}

func HistorySummary(w io.Writer, total, accepted int) {
	fmt.Fprintf(w, "%d parses (%d accepted, %d rejected)\n", total, accepted, total-accepted)
}

func Verdict(w io.Writer, accepted bool) {
	if accepted {
		fmt.Fprintln(w, acceptStyle.Render("✓ Accepted by the grammar"))
	} else {
		fmt.Fprintln(w, rejectStyle.Render("✗ Not accepted by the grammar"))
	}
}
