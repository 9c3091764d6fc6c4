package earley

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chriserin/earley/internal/grammar"
)

// Span records where one already-matched body symbol was derived from.
type Span struct {
	Start int
	End   int
}

// State is a partially or fully matched rule instance: the rule, how
// many body symbols have been matched (dot), the chart column where the
// instance began, and one span per matched symbol. States are values;
// two states with equal rule, dot, start, and backpointers are the same
// state, which is what lets the chart deduplicate recursive predictions.
type State struct {
	Rule         grammar.Rule
	Dot          int
	Start        int
	Backpointers []Span
}

// NextSymbol returns the body symbol after the dot, or "" when the dot
// has reached the end of the body.
func (s State) NextSymbol() string {
	if s.Dot < len(s.Rule.Body) {
		return s.Rule.Body[s.Dot]
	}
	return ""
}

func (s State) IsComplete() bool {
	return s.Dot >= len(s.Rule.Body)
}

// advance returns a copy of s with the dot moved past one body symbol
// derived from the given span. The backpointer slice is copied, never
// shared, because states outlive the completion that created them.
func (s State) advance(span Span) State {
	bps := make([]Span, len(s.Backpointers)+1)
	copy(bps, s.Backpointers)
	bps[len(s.Backpointers)] = span
	return State{Rule: s.Rule, Dot: s.Dot + 1, Start: s.Start, Backpointers: bps}
}

// key is the structural identity used for chart deduplication.
func (s State) key() string {
	var b strings.Builder
	b.WriteString(s.Rule.Head)
	for _, sym := range s.Rule.Body {
		b.WriteByte(0x1f)
		b.WriteString(sym)
	}
	b.WriteByte(0x1e)
	b.WriteString(strconv.Itoa(s.Dot))
	b.WriteByte(0x1e)
	b.WriteString(strconv.Itoa(s.Start))
	for _, bp := range s.Backpointers {
		b.WriteByte(0x1e)
		b.WriteString(strconv.Itoa(bp.Start))
		b.WriteByte(0x1f)
		b.WriteString(strconv.Itoa(bp.End))
	}
	return b.String()
}

func (s State) String() string {
	body := make([]string, 0, len(s.Rule.Body)+1)
	if len(s.Rule.Body) == 0 {
		body = append(body, grammar.Epsilon)
	} else {
		body = append(body, s.Rule.Body...)
	}
	dotted := make([]string, 0, len(body)+1)
	dotted = append(dotted, body[:s.Dot]...)
	dotted = append(dotted, "•")
	dotted = append(dotted, body[s.Dot:]...)
	return fmt.Sprintf("%s → %s (%d)", s.Rule.Head, strings.Join(dotted, " "), s.Start)
}
