package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chriserin/earley/internal/db"
	"github.com/chriserin/earley/internal/ui"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [<id>]",
	Short: "Show past parse attempts, newest first",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rawID := ""
		if len(args) > 0 {
			rawID = args[0]
		}
		return RunHistory(cmd.OutOrStdout(), rawID)
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func RunHistory(w io.Writer, rawID string) error {
	if _, err := os.Stat("grammars"); os.IsNotExist(err) {
		return fmt.Errorf("run `earley init` first")
	}

	sqlDB, err := db.Open("grammars/earley.db")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	query := `
		SELECT g.file_path, p.sentence, p.accepted, p.parsed_at
		FROM parses p
		JOIN grammars g ON p.grammar_id = g.id
	`
	var args []any

	if rawID != "" {
		rawID = strings.TrimPrefix(rawID, "@g:")
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid grammar ID: %s", rawID)
		}
		var existingID int64
		if err := sqlDB.QueryRow(`SELECT id FROM grammars WHERE id = ?`, id).Scan(&existingID); err != nil {
			return fmt.Errorf("grammar %d not found", id)
		}
		query += ` WHERE p.grammar_id = ?`
		args = append(args, id)
	}
	query += ` ORDER BY p.parsed_at DESC, p.id DESC`

	rows, err := sqlDB.Query(query, args...)
	if err != nil {
		return fmt.Errorf("querying parses: %w", err)
	}
	defer rows.Close()

	total, acceptedCount := 0, 0
	for rows.Next() {
		var filePath, sentence, parsedAt string
		var accepted bool
		if err := rows.Scan(&filePath, &sentence, &accepted, &parsedAt); err != nil {
			return fmt.Errorf("scanning parse row: %w", err)
		}
		ui.HistoryRow(w, accepted, sentence, filepath.Base(filePath), parsedAt)
		total++
		if accepted {
			acceptedCount++
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rows: %w", err)
	}

	if total == 0 {
		fmt.Fprintln(w, "no parses recorded")
		return nil
	}

	ui.HistorySummary(w, total, acceptedCount)
	return nil
}
