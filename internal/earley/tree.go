package earley

import (
	"fmt"

	"github.com/chriserin/earley/internal/grammar"
)

// Tree is a concrete parse tree node: a symbol plus ordered children.
// Terminal nodes hold the matched token and have no children; a node
// derived from an epsilon rule has no children either.
type Tree struct {
	Symbol   string
	Children []*Tree
}

// Leaves returns the terminal symbols of the tree left to right. For
// any tree built from an accepted parse they reproduce the input token
// sequence exactly.
func (t *Tree) Leaves() []string {
	if len(t.Children) == 0 {
		if grammar.IsNonterminal(t.Symbol) {
			return nil
		}
		return []string{t.Symbol}
	}
	var leaves []string
	for _, child := range t.Children {
		leaves = append(leaves, child.Leaves()...)
	}
	return leaves
}

// buildTree reconstructs the derivation recorded by a completed state's
// backpointers. Each matched body symbol has a span: terminals become
// leaves holding the scanned token, nonterminals are resolved to the
// first completed state with the right head and origin stored in the
// span's end column, then rebuilt recursively.
//
// A span with no matching completed state cannot happen on a chart the
// recognizer itself produced; hitting one means the engine is broken,
// so it panics rather than returning a corrupted tree.
func (p *Parser) buildTree(chart *Chart, state State, tokens []string) *Tree {
	if len(state.Rule.Body) == 0 {
		return &Tree{Symbol: state.Rule.Head}
	}

	children := make([]*Tree, 0, len(state.Rule.Body))
	for i, symbol := range state.Rule.Body {
		bp := state.Backpointers[i]
		if !grammar.IsNonterminal(symbol) {
			children = append(children, &Tree{Symbol: tokens[bp.Start]})
			continue
		}
		child, ok := p.findCompleted(chart, symbol, bp)
		if !ok {
			panic(fmt.Sprintf("earley: no completed %s state spanning %d..%d in chart", symbol, bp.Start, bp.End))
		}
		children = append(children, p.buildTree(chart, child, tokens))
	}

	return &Tree{Symbol: state.Rule.Head, Children: children}
}

func (p *Parser) findCompleted(chart *Chart, head string, bp Span) (State, bool) {
	for _, s := range chart.States(bp.End) {
		if s.IsComplete() && s.Rule.Head == head && s.Start == bp.Start {
			return s, true
		}
	}
	return State{}, false
}
