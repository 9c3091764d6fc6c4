package earley

import "github.com/chriserin/earley/internal/grammar"

// Tracer observes recognizer decisions. The engine calls it on every
// predict, scan, and complete that fires, and once with the finished
// chart after the last column is exhausted. Tracing is a side channel:
// a nil Tracer must produce byte-identical parse results.
type Tracer interface {
	// Predict is called when the nonterminal after a state's dot is
	// expanded at the given position.
	Predict(symbol string, position int)
	// Scan is called when a terminal matches the input token at the
	// given position.
	Scan(symbol string, position int)
	// Complete is called when a finished rule instance spanning
	// start..end propagates to its waiters.
	Complete(rule grammar.Rule, start, end int)
	// FinalChart is called once with the completed chart.
	FinalChart(chart *Chart)
}
