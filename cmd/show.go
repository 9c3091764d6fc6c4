package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chriserin/earley/internal/db"
	"github.com/chriserin/earley/internal/grammar"
	"github.com/chriserin/earley/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a registered grammar's rules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunShow(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func RunShow(w io.Writer, rawID string) error {
	// Strip @g: prefix if present
	rawID = strings.TrimPrefix(rawID, "@g:")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid grammar ID: %s", rawID)
	}

	if _, err := os.Stat("grammars"); os.IsNotExist(err) {
		return fmt.Errorf("run `earley init` first")
	}

	sqlDB, err := db.Open("grammars/earley.db")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	var filePath string
	err = sqlDB.QueryRow(`SELECT file_path FROM grammars WHERE id = ?`, id).Scan(&filePath)
	if err != nil {
		return fmt.Errorf("grammar %d not found", id)
	}

	g, diagnostics, err := grammar.LoadFile(filePath)
	if err != nil {
		return err
	}

	ui.ShowHeader(w, id, filepath.Base(filePath))
	for _, d := range diagnostics {
		ui.LoadDiagnostic(w, filePath, d)
	}

	fmt.Fprintln(w)
	for _, r := range g.Rules() {
		ui.RuleLine(w, r)
	}

	return nil
}
