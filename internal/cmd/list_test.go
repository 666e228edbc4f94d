package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommand(t *testing.T) {
	output, err := execute(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	require.Len(t, lines, 6)

	wantPrefixes := []string{
		"adapter    structural",
		"decorator  structural",
		"factory    creational",
		"observer   behavioral",
		"singleton  creational",
		"visitor    behavioral",
	}
	for i, prefix := range wantPrefixes {
		assert.True(t, strings.HasPrefix(lines[i], prefix), "line %d = %q", i, lines[i])
	}
	assert.Contains(t, lines[5], "Separates operations from the object structure")
}

func TestListRejectsArgs(t *testing.T) {
	_, err := execute(t, "list", "extra")
	assert.Error(t, err)
}

func TestDescribeCommand(t *testing.T) {
	output, err := execute(t, "describe", "Visitor")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(output, "Visitor (behavioral)\n"), output)
	assert.Contains(t, output, "\n  Participants\n  ------------\n")
	assert.Contains(t, output, "\n    - SizeCalculator sums file sizes over a subtree.\n")
	assert.NotContains(t, output, "---\nname:")
}

func TestDescribeUnknown(t *testing.T) {
	_, err := execute(t, "describe", "builder")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown demo")
	assert.Contains(t, err.Error(), "visitor")
}

func TestDescribeRequiresOneArg(t *testing.T) {
	_, err := execute(t, "describe")
	assert.Error(t, err)
}
