package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/chriserin/earley/internal/grammar"
	"github.com/chriserin/earley/internal/ui"
	"github.com/spf13/cobra"
)

var replTraceFlag bool

var replCmd = &cobra.Command{
	Use:   "repl <grammar>",
	Short: "Interactively parse sentences against a grammar",
	Long: `Read sentences line by line and parse each against the grammar.
An empty line parses the empty (epsilon) sentence; 'exit' or EOF quits.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunRepl(cmd.InOrStdin(), cmd.OutOrStdout(), args[0], replTraceFlag)
	},
}

func init() {
	replCmd.Flags().BoolVar(&replTraceFlag, "trace", false, "Show predict/scan/complete decisions and the final chart")
	rootCmd.AddCommand(replCmd)
}

func RunRepl(in io.Reader, w io.Writer, grammarArg string, trace bool) error {
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
	fmt.Fprintf(w, "loaded %d rules from %s\n", len(g.Rules()), source.path)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(w)
			break
		}
		line := scanner.Text()
		if line == "exit" {
			break
		}

		accepted := parseSentence(w, g, line, trace)

		if source.registered {
			if err := recordParse(source.id, line, accepted); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}
