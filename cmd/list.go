package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chriserin/earley/internal/db"
	"github.com/chriserin/earley/internal/grammar"
	"github.com/chriserin/earley/internal/ui"
	"github.com/spf13/cobra"
)

var (
	verdictFlag  string
	unparsedFlag bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered grammars",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunList(cmd.OutOrStdout(), verdictFlag, unparsedFlag)
	},
}

func init() {
	listCmd.Flags().StringVar(&verdictFlag, "verdict", "", "Filter by last parse verdict (accepted or rejected)")
	listCmd.Flags().BoolVar(&unparsedFlag, "unparsed", false, "Show only grammars with no recorded parses")
	rootCmd.AddCommand(listCmd)
}

type listRow struct {
	id        int64
	fileName  string
	ruleCount int
	verdict   string
}

func RunList(w io.Writer, verdictFilter string, unparsed bool) error {
	if _, err := os.Stat("grammars"); os.IsNotExist(err) {
		return fmt.Errorf("run `earley init` first")
	}

	sqlDB, err := db.Open("grammars/earley.db")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	rows, err := sqlDB.Query(`
		SELECT g.id, g.file_path,
			COALESCE(
				(SELECT CASE WHEN accepted THEN 'accepted' ELSE 'rejected' END
				 FROM parses WHERE grammar_id = g.id ORDER BY parsed_at DESC, id DESC LIMIT 1),
				'no-parses'
			) AS last_verdict
		FROM grammars g
		ORDER BY g.file_path, g.id
	`)
	if err != nil {
		return fmt.Errorf("querying grammars: %w", err)
	}
	defer rows.Close()

	var results []listRow
	for rows.Next() {
		var r listRow
		var filePath string
		if err := rows.Scan(&r.id, &filePath, &r.verdict); err != nil {
			return fmt.Errorf("scanning row: %w", err)
		}
		r.fileName = filepath.Base(filePath)

		if verdictFilter != "" && r.verdict != verdictFilter {
			continue
		}
		if unparsed && r.verdict != "no-parses" {
			continue
		}

		if content, err := os.ReadFile(filePath); err == nil {
			rules, _ := grammar.ParseRules(content)
			r.ruleCount = len(rules)
		}

		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rows: %w", err)
	}

	if len(results) == 0 {
		return nil
	}

	// Compute column widths
	idWidth, fileWidth := 0, 0
	for _, r := range results {
		tag := fmt.Sprintf("@g:%d", r.id)
		if len(tag) > idWidth {
			idWidth = len(tag)
		}
		if len(r.fileName) > fileWidth {
			fileWidth = len(r.fileName)
		}
	}

	for _, r := range results {
		ui.ListRow(w, r.id, r.fileName, r.ruleCount, r.verdict, idWidth, fileWidth)
	}

	return nil
}
