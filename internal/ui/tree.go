package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/chriserin/earley/internal/earley"
)

const (
	branchTail = "└── "
	branchMid  = "├── "
	indentTail = "    "
	indentMid  = "│   "
)

// RenderTree lays out a parse tree with box-drawing connectors, one
// symbol per line, children indented under their parent.
func RenderTree(t *earley.Tree) string {
	var b strings.Builder
	renderNode(&b, t, "", true)
	return b.String()
}

func renderNode(b *strings.Builder, t *earley.Tree, prefix string, isTail bool) {
	branch := branchMid
	indent := indentMid
	if isTail {
		branch = branchTail
		indent = indentTail
	}
	b.WriteString(prefix + branch + t.Symbol + "\n")
	for i, child := range t.Children {
		renderNode(b, child, prefix+indent, i == len(t.Children)-1)
	}
}

// PrintTree writes the rendered tree under a section header, matching
// the trace output sections.
func PrintTree(w io.Writer, t *earley.Tree) {
	fmt.Fprintln(w, "\n--- Parse Tree ---")
	fmt.Fprint(w, RenderTree(t))
}
