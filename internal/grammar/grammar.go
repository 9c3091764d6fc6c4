package grammar

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rule maps a head symbol to an ordered sequence of body symbols.
// An empty body denotes an epsilon rule.
type Rule struct {
	Head string
	Body []string
}

func (r Rule) String() string {
	if len(r.Body) == 0 {
		return r.Head + " → ε"
	}
	return r.Head + " → " + strings.Join(r.Body, " ")
}

// Grammar is an immutable, ordered rule set. Declaration order is
// preserved because prediction order determines which derivation wins
// ties under ambiguity.
type Grammar struct {
	rules []Rule
}

func New(rules []Rule) *Grammar {
	return &Grammar{rules: rules}
}

// Rules returns all rules in declaration order.
func (g *Grammar) Rules() []Rule {
	return g.rules
}

// RulesFor returns the rules whose head equals the given symbol, in
// declaration order. A symbol with no rules yields nil.
func (g *Grammar) RulesFor(head string) []Rule {
	var matched []Rule
	for _, r := range g.rules {
		if r.Head == head {
			matched = append(matched, r)
		}
	}
	return matched
}

// IsNonterminal reports whether a symbol names a nonterminal. Symbols
// starting with an uppercase letter are nonterminals; everything else
// is a terminal matched literally against input tokens.
func IsNonterminal(symbol string) bool {
	r, _ := utf8.DecodeRuneInString(symbol)
	return unicode.IsUpper(r)
}

// Tokenize splits a sentence on whitespace into the terminal sequence
// the engine consumes. A blank sentence yields no tokens, representing
// the epsilon sentence.
func Tokenize(sentence string) []string {
	return strings.Fields(sentence)
}
