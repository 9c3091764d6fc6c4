package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShow_RequiresInit(t *testing.T) {
	inTempDir(t)

	var buf bytes.Buffer
	err := RunShow(&buf, "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "earley init")
}

func TestShow_InvalidID(t *testing.T) {
	inTempDir(t)

	var buf bytes.Buffer
	err := RunShow(&buf, "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid grammar ID")
}

func TestShow_UnknownID(t *testing.T) {
	inTempDir(t)
	runInit(t)

	var buf bytes.Buffer
	err := RunShow(&buf, "7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grammar 7 not found")
}

func TestShow_PrintsRules(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeGrammar(t, "sentence.grammar", sentenceGrammar)
	var syncOut bytes.Buffer
	require.NoError(t, RunSync(&syncOut))

	var buf bytes.Buffer
	require.NoError(t, RunShow(&buf, "1"))

	out := buf.String()
	assert.Contains(t, out, "@g:1")
	assert.Contains(t, out, "sentence.grammar")
	assert.Contains(t, out, "NP VP")
	assert.Contains(t, out, "a dog")
	assert.Contains(t, out, "ran")
}

func TestShow_AcceptsTagPrefix(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeGrammar(t, "epsilon.grammar", "S → ε\n")
	var syncOut bytes.Buffer
	require.NoError(t, RunSync(&syncOut))

	var buf bytes.Buffer
	require.NoError(t, RunShow(&buf, "@g:1"))
	assert.Contains(t, buf.String(), "ε")
}

func TestShow_SurfacesLoadDiagnostics(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeGrammar(t, "partial.grammar", "S → a\nbroken\n")
	var syncOut bytes.Buffer
	require.NoError(t, RunSync(&syncOut))

	var buf bytes.Buffer
	require.NoError(t, RunShow(&buf, "1"))

	out := buf.String()
	assert.Contains(t, out, "missing → separator")
	assert.Contains(t, out, ":2:")
}
