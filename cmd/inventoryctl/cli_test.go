package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizeCommandTextOutput(t *testing.T) {
	var out bytes.Buffer
	optimizeCmd.SetOut(&out)
	optimizeCmd.SetArgs([]string{"item-exists"})
	optimizeFormat = "text"
	require.NoError(t, optimizeCmd.Execute())

	assert.Contains(t, out.String(), "item-exists")
	assert.Contains(t, out.String(), "after:")
}

func TestOptimizeCommandCBOROutput(t *testing.T) {
	var out bytes.Buffer
	optimizeCmd.SetOut(&out)
	optimizeCmd.SetArgs([]string{"withdraw", "--format", "cbor"})
	require.NoError(t, optimizeCmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)
	assert.NotEmpty(t, lines[0])
}

func TestOptimizeCommandUnknownCircuit(t *testing.T) {
	var out bytes.Buffer
	optimizeCmd.SetOut(&out)
	optimizeCmd.SetArgs([]string{"does-not-exist"})
	assert.Error(t, optimizeCmd.Execute())
}

func TestAnalyzeCommandListsAllCircuitsByDefault(t *testing.T) {
	var out bytes.Buffer
	analyzeCmd.SetOut(&out)
	analyzeCmd.SetArgs([]string{})
	require.NoError(t, analyzeCmd.Execute())

	for _, name := range []string{"item-exists", "withdraw", "deposit", "transfer"} {
		assert.Contains(t, out.String(), name)
	}
}
