package ui

import (
	"fmt"
	"io"

	"github.com/chriserin/earley/internal/earley"
	"github.com/chriserin/earley/internal/grammar"
)

// Tracer writes one faint line per recognizer decision and dumps the
// finished chart column by column. It implements earley.Tracer.
type Tracer struct {
	W io.Writer
}

func (t *Tracer) Predict(symbol string, position int) {
	fmt.Fprintln(t.W, trkStyle.Render(fmt.Sprintf("[PREDICT] Expanding %s at position %d", symbol, position)))
}

func (t *Tracer) Scan(symbol string, position int) {
	fmt.Fprintln(t.W, trkStyle.Render(fmt.Sprintf("[SCAN] Matching '%s' at position %d", symbol, position)))
}

func (t *Tracer) Complete(rule grammar.Rule, start, end int) {
	fmt.Fprintln(t.W, trkStyle.Render(fmt.Sprintf("[COMPLETE] Completing rule %s from position %d to %d", rule, start, end)))
}

func (t *Tracer) FinalChart(chart *earley.Chart) {
	fmt.Fprintln(t.W, "\n--- Chart ---")
	for i := 0; i < chart.Len(); i++ {
		fmt.Fprintf(t.W, "Chart[%d]:\n", i)
		for _, s := range chart.States(i) {
			fmt.Fprintf(t.W, "  %s\n", s)
		}
	}
}
