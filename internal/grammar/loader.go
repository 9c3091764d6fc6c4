package grammar

import (
	"fmt"
	"os"
	"strings"
)

// Epsilon is the body marker for an empty production in grammar text.
const Epsilon = "ε"

type ParseError struct {
	Line    int
	Message string
}

// ParseRules parses grammar text into a rule list. Each non-blank,
// non-comment line has the form
//
//	Head → sym1 sym2 | sym3 | ε
//
// with pipe-separated alternatives and ε denoting an empty body. The
// ASCII arrow -> is accepted as an alias. Malformed lines are skipped
// and reported as ParseErrors; they never abort loading.
func ParseRules(content []byte) ([]Rule, []ParseError) {
	var rules []Rule
	var errors []ParseError

	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		head, bodyText, ok := splitArrow(trimmed)
		if !ok {
			errors = append(errors, ParseError{Line: i + 1, Message: "missing → separator"})
			continue
		}

		head = strings.TrimSpace(head)
		if head == "" || len(strings.Fields(head)) != 1 {
			errors = append(errors, ParseError{Line: i + 1, Message: fmt.Sprintf("invalid head %q", head)})
			continue
		}

		for _, alt := range strings.Split(bodyText, "|") {
			alt = strings.TrimSpace(alt)
			if alt == Epsilon || alt == "" {
				rules = append(rules, Rule{Head: head})
				continue
			}
			rules = append(rules, Rule{Head: head, Body: strings.Fields(alt)})
		}
	}

	return rules, errors
}

func splitArrow(line string) (head, body string, ok bool) {
	if h, b, found := strings.Cut(line, "→"); found {
		return h, b, true
	}
	if h, b, found := strings.Cut(line, "->"); found {
		return h, b, true
	}
	return "", "", false
}

// LoadFile reads and parses a grammar file. Per-line diagnostics come
// back as ParseErrors; the returned error covers I/O failures only.
func LoadFile(path string) (*Grammar, []ParseError, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	rules, parseErrors := ParseRules(content)
	return New(rules), parseErrors, nil
}
