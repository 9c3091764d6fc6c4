package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_RequiresInit(t *testing.T) {
	inTempDir(t)

	var buf bytes.Buffer
	err := RunList(&buf, "", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "earley init")
}

func TestList_EmptyWorkspacePrintsNothing(t *testing.T) {
	inTempDir(t)
	runInit(t)

	var buf bytes.Buffer
	require.NoError(t, RunList(&buf, "", false))
	assert.Empty(t, buf.String())
}

func TestList_ShowsRegisteredGrammars(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeGrammar(t, "sentence.grammar", sentenceGrammar)
	writeGrammar(t, "epsilon.grammar", "S → ε\n")
	var syncOut bytes.Buffer
	require.NoError(t, RunSync(&syncOut))

	var buf bytes.Buffer
	require.NoError(t, RunList(&buf, "", false))

	out := buf.String()
	assert.Contains(t, out, "@g:1")
	assert.Contains(t, out, "@g:2")
	assert.Contains(t, out, "sentence.grammar")
	assert.Contains(t, out, "epsilon.grammar")
	assert.Contains(t, out, "3 rules")
	assert.Contains(t, out, "1 rule")
	assert.Contains(t, out, "no-parses")
}

func TestList_ShowsLastParseVerdict(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeGrammar(t, "sentence.grammar", sentenceGrammar)
	var syncOut bytes.Buffer
	require.NoError(t, RunSync(&syncOut))

	var parseOut bytes.Buffer
	require.NoError(t, RunParse(&parseOut, "1", "a dog ran", false))

	var buf bytes.Buffer
	require.NoError(t, RunList(&buf, "", false))
	assert.Contains(t, buf.String(), "accepted")
}

func TestList_VerdictFilter(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeGrammar(t, "sentence.grammar", sentenceGrammar)
	writeGrammar(t, "epsilon.grammar", "S → ε\n")
	var syncOut bytes.Buffer
	require.NoError(t, RunSync(&syncOut))

	var parseOut bytes.Buffer
	require.NoError(t, RunParse(&parseOut, "2", "a dog ran", false))

	var buf bytes.Buffer
	require.NoError(t, RunList(&buf, "accepted", false))

	out := buf.String()
	assert.Contains(t, out, "sentence.grammar")
	assert.NotContains(t, out, "epsilon.grammar")
}

func TestList_UnparsedFilter(t *testing.T) {
	inTempDir(t)
	runInit(t)
	writeGrammar(t, "sentence.grammar", sentenceGrammar)
	writeGrammar(t, "epsilon.grammar", "S → ε\n")
	var syncOut bytes.Buffer
	require.NoError(t, RunSync(&syncOut))

	var parseOut bytes.Buffer
	require.NoError(t, RunParse(&parseOut, "2", "a dog ran", false))

	var buf bytes.Buffer
	require.NoError(t, RunList(&buf, "", true))

	out := buf.String()
	assert.Contains(t, out, "epsilon.grammar")
	assert.NotContains(t, out, "sentence.grammar")
}
