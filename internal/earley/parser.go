package earley

import (
	"github.com/chriserin/earley/internal/grammar"
)

// startHead is the head of the synthetic augmented start rule. It is
// lowercase on purpose so it can never collide with a predicted
// nonterminal under the uppercase naming convention.
const startHead = "γ"

// DefaultStart is the nonterminal a whole sentence must derive from
// when the caller does not name one.
const DefaultStart = "S"

// Parser recognizes sentences against a context-free grammar using
// Earley's algorithm and reconstructs one concrete parse tree from the
// completed chart.
//
// A Parser is cheap and stateless between calls: each Parse builds a
// fresh chart and discards it on return, so one Parser may be reused
// across sentences.
type Parser struct {
	Grammar *grammar.Grammar
	Start   string // start nonterminal; DefaultStart when empty
	Tracer  Tracer // optional observer; nil changes nothing
}

// Parse runs the recognizer over an already-tokenized sentence and, on
// acceptance, reconstructs a parse tree. The tree is nil when the only
// derivation of the whole sentence is epsilon.
func (p *Parser) Parse(tokens []string) (bool, *Tree) {
	start := p.Start
	if start == "" {
		start = DefaultStart
	}

	chart := NewChart(len(tokens))
	startRule := grammar.Rule{Head: startHead, Body: []string{start}}
	chart.Add(State{Rule: startRule}, 0)

	// Worklist fixpoint per column: predict and complete may append to
	// the column being processed, so the loop re-reads the column's
	// current length on every step rather than snapshotting it.
	for i := 0; i <= len(tokens); i++ {
		for j := 0; j < len(chart.columns[i].states); j++ {
			state := chart.columns[i].states[j]
			switch {
			case state.IsComplete():
				p.complete(chart, state, i)
			case grammar.IsNonterminal(state.NextSymbol()):
				p.predict(chart, state, i)
			default:
				p.scan(chart, state, i, tokens)
			}
		}
	}

	if p.Tracer != nil {
		p.Tracer.FinalChart(chart)
	}

	return p.accept(chart, start, tokens)
}

// predict expands the nonterminal after the dot: every rule for that
// symbol enters the current column at dot zero. An empty-body rule is
// born complete and would otherwise never reach the complete step, so
// it is completed on the spot. Completion fires even when the epsilon
// state was already present, because a waiter added after the first
// prediction still needs advancing.
func (p *Parser) predict(chart *Chart, state State, position int) {
	symbol := state.NextSymbol()
	if p.Tracer != nil {
		p.Tracer.Predict(symbol, position)
	}
	for _, rule := range p.Grammar.RulesFor(symbol) {
		predicted := State{Rule: rule, Start: position}
		chart.Add(predicted, position)
		if len(rule.Body) == 0 {
			p.complete(chart, predicted, position)
		}
	}
}

// scan advances over a terminal that literally matches the next input
// token, placing the advanced state in the following column.
func (p *Parser) scan(chart *Chart, state State, position int, tokens []string) {
	if position >= len(tokens) {
		return
	}
	symbol := state.NextSymbol()
	if symbol != tokens[position] {
		return
	}
	if p.Tracer != nil {
		p.Tracer.Scan(symbol, position)
	}
	chart.Add(state.advance(Span{Start: position, End: position + 1}), position+1)
}

// complete propagates a finished rule instance: every state in the
// column where the instance began that is waiting on its head advances
// into the current column. The loop is index-based over the origin
// column because, when the instance spans zero tokens, advancing a
// waiter appends to the very column being walked.
func (p *Parser) complete(chart *Chart, state State, position int) {
	if !state.IsComplete() {
		return
	}
	if p.Tracer != nil {
		p.Tracer.Complete(state.Rule, state.Start, position)
	}
	origin := &chart.columns[state.Start]
	for j := 0; j < len(origin.states); j++ {
		waiter := origin.states[j]
		if waiter.IsComplete() || waiter.NextSymbol() != state.Rule.Head {
			continue
		}
		chart.Add(waiter.advance(Span{Start: state.Start, End: position}), position)
	}
}

// accept checks the final column for a completed augmented start rule
// spanning the whole input, then picks the derivation to build a tree
// from: the first completed start-symbol state with at least one
// backpointer, in insertion order. When only an epsilon derivation of
// the start symbol exists the sentence is accepted without a tree.
func (p *Parser) accept(chart *Chart, start string, tokens []string) (bool, *Tree) {
	final := chart.States(len(tokens))

	accepted := false
	for _, s := range final {
		if s.Rule.Head == startHead && s.IsComplete() && s.Start == 0 {
			accepted = true
			break
		}
	}
	if !accepted {
		return false, nil
	}

	for _, s := range final {
		if s.IsComplete() && s.Rule.Head == start && s.Start == 0 && len(s.Backpointers) > 0 {
			return true, p.buildTree(chart, s, tokens)
		}
	}
	return true, nil
}
