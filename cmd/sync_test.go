package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriserin/earley/internal/db"
)

func TestSync_RequiresInit(t *testing.T) {
	inTempDir(t)

	var buf bytes.Buffer
	err := RunSync(&buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "earley init")
}

func TestSync_RegistersNewGrammar(t *testing.T) {
	inTempDir(t)
	runInit(t)
	path := writeGrammar(t, "sentence.grammar", sentenceGrammar)

	var buf bytes.Buffer
	require.NoError(t, RunSync(&buf))

	out := buf.String()
	assert.Contains(t, out, "new")
	assert.Contains(t, out, path)
	assert.Contains(t, out, "synced 1 grammars")

	sqlDB, err := db.Open("grammars/earley.db")
	require.NoError(t, err)
	defer sqlDB.Close()

	var filePath string
	require.NoError(t, sqlDB.QueryRow(`SELECT file_path FROM grammars WHERE id = 1`).Scan(&filePath))
	assert.Equal(t, path, filePath)
}

func TestSync_AlreadyRegisteredIsTracked(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeGrammar(t, "sentence.grammar", sentenceGrammar)

	var first bytes.Buffer
	require.NoError(t, RunSync(&first))

	var second bytes.Buffer
	require.NoError(t, RunSync(&second))

	out := second.String()
	assert.Contains(t, out, "trk")
	assert.NotContains(t, out, "new")

	sqlDB, err := db.Open("grammars/earley.db")
	require.NoError(t, err)
	defer sqlDB.Close()

	var count int
	require.NoError(t, sqlDB.QueryRow(`SELECT COUNT(*) FROM grammars`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestSync_IgnoresOtherExtensions(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeGrammar(t, "notes.txt", "not a grammar")

	var buf bytes.Buffer
	require.NoError(t, RunSync(&buf))
	assert.Contains(t, buf.String(), "synced 0 grammars")
}

func TestSync_MultipleGrammarsSortedByPath(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeGrammar(t, "b.grammar", "S → b\n")
	writeGrammar(t, "a.grammar", "S → a\n")

	var buf bytes.Buffer
	require.NoError(t, RunSync(&buf))

	out := buf.String()
	assert.Less(t, bytes.Index([]byte(out), []byte("a.grammar")), bytes.Index([]byte(out), []byte("b.grammar")))
	assert.Contains(t, out, "synced 2 grammars")
}
