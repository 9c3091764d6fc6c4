package cmd

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chriserin/earley/internal/db"
	"github.com/chriserin/earley/internal/earley"
	"github.com/chriserin/earley/internal/grammar"
	"github.com/chriserin/earley/internal/ui"
	"github.com/spf13/cobra"
)

var parseTraceFlag bool

var parseCmd = &cobra.Command{
	Use:   "parse <grammar> [sentence...]",
	Short: "Parse a sentence against a grammar",
	Long: `Parse a sentence against a grammar given as a registered ID or a
file path. An omitted sentence parses the empty (epsilon) sentence.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunParse(cmd.OutOrStdout(), args[0], strings.Join(args[1:], " "), parseTraceFlag)
	},
}

func init() {
	parseCmd.Flags().BoolVar(&parseTraceFlag, "trace", false, "Show predict/scan/complete decisions and the final chart")
	rootCmd.AddCommand(parseCmd)
}

func RunParse(w io.Writer, grammarArg, sentence string, trace bool) error {
	source, err := resolveGrammar(grammarArg)
	if err != nil {
		return err
	}

	g, diagnostics, err := grammar.LoadFile(source.path)
	if err != nil {
		return err
	}
	for _, d := range diagnostics {
		ui.LoadDiagnostic(w, source.path, d)
	}

	accepted := parseSentence(w, g, sentence, trace)

	if source.registered {
		if err := recordParse(source.id, sentence, accepted); err != nil {
			return err
		}
	}
	return nil
}

// parseSentence tokenizes, runs the engine, and prints the verdict and
// tree. Shared by parse and repl.
func parseSentence(w io.Writer, g *grammar.Grammar, sentence string, trace bool) bool {
	display := sentence
	if strings.TrimSpace(display) == "" {
		display = grammar.Epsilon
	}
	fmt.Fprintf(w, "Parsing: '%s'\n", display)

	parser := &earley.Parser{Grammar: g}
	if trace {
		parser.Tracer = &ui.Tracer{W: w}
	}

	accepted, tree := parser.Parse(grammar.Tokenize(sentence))
	ui.Verdict(w, accepted)
	if tree != nil {
		ui.PrintTree(w, tree)
	}
	return accepted
}

// grammarSource is a resolved grammar argument: the file to load and,
// when the grammar is registered in the workspace database, its ID.
type grammarSource struct {
	path       string
	id         int64
	registered bool
}

// resolveGrammar accepts a registered grammar ID (bare integer or
// @g:N) or a file path. A path that happens to be registered resolves
// to its ID too, so its parses still land in the history.
func resolveGrammar(arg string) (grammarSource, error) {
	trimmed := strings.TrimPrefix(arg, "@g:")
	if id, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		if _, err := os.Stat("grammars"); os.IsNotExist(err) {
			return grammarSource{}, fmt.Errorf("run `earley init` first")
		}
		sqlDB, err := db.Open("grammars/earley.db")
		if err != nil {
			return grammarSource{}, fmt.Errorf("opening database: %w", err)
		}
		defer sqlDB.Close()

		var filePath string
		if err := sqlDB.QueryRow(`SELECT file_path FROM grammars WHERE id = ?`, id).Scan(&filePath); err != nil {
			return grammarSource{}, fmt.Errorf("grammar %d not found", id)
		}
		return grammarSource{path: filePath, id: id, registered: true}, nil
	}

	source := grammarSource{path: arg}
	if _, err := os.Stat("grammars/earley.db"); err == nil {
		sqlDB, err := db.Open("grammars/earley.db")
		if err != nil {
			return grammarSource{}, fmt.Errorf("opening database: %w", err)
		}
		defer sqlDB.Close()

		var id int64
		err = sqlDB.QueryRow(`SELECT id FROM grammars WHERE file_path = ?`, arg).Scan(&id)
		if err == nil {
			source.id = id
			source.registered = true
		} else if err != sql.ErrNoRows {
			return grammarSource{}, fmt.Errorf("querying %s: %w", arg, err)
		}
	}
	return source, nil
}

func recordParse(grammarID int64, sentence string, accepted bool) error {
	sqlDB, err := db.Open("grammars/earley.db")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	_, err = sqlDB.Exec(`INSERT INTO parses (grammar_id, sentence, accepted) VALUES (?, ?, ?)`,
		grammarID, sentence, accepted)
	if err != nil {
		return fmt.Errorf("recording parse: %w", err)
	}
	return nil
}
