package cmd

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/chriserin/earley/internal/db"
	"github.com/chriserin/earley/internal/ui"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Scan grammars/ for .grammar files and register new ones",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunSync(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func RunSync(w io.Writer) error {
	if _, err := os.Stat("grammars"); os.IsNotExist(err) {
		return fmt.Errorf("run `earley init` first")
	}

	sqlDB, err := db.Open("grammars/earley.db")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	matches, err := filepath.Glob("grammars/*.grammar")
	if err != nil {
		return fmt.Errorf("scanning grammars/: %w", err)
	}
	sort.Strings(matches)

	count := 0
	for _, path := range matches {
		var id int
		err := sqlDB.QueryRow(`SELECT id FROM grammars WHERE file_path = ?`, path).Scan(&id)
		if err == sql.ErrNoRows {
			_, err = sqlDB.Exec(`INSERT INTO grammars (file_path) VALUES (?)`, path)
			if err != nil {
				return fmt.Errorf("inserting %s: %w", path, err)
			}
			ui.NewLine(w, path)
		} else if err != nil {
			return fmt.Errorf("querying %s: %w", path, err)
		} else {
			ui.TrkLine(w, path)
		}
		count++
	}

	ui.SummaryLine(w, count)
	return nil
}
