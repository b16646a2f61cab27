package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/scottcagno/fjs/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot(t *testing.T) {
	out, _, err := execute(t, "aaaa", "aa")
	require.NoError(t, err)
	assert.Equal(t, "match 1 found at position 0\n"+
		"match 2 found at position 1\n"+
		"match 3 found at position 2\n", out)
}

func TestRoot_NoMatch(t *testing.T) {
	out, _, err := execute(t, "The cat sat on the mat", "dog")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRoot_Usage(t *testing.T) {
	for _, args := range [][]string{nil, {"only-text"}, {"a", "b", "c"}} {
		out, errOut, err := execute(t, args...)
		require.Error(t, err, "args %q", args)
		assert.Contains(t, err.Error(), "accepts 2 arg(s)")
		assert.Contains(t, out+errOut, "Usage:")
		assert.NotContains(t, out, "found at position")
	}
}

func TestRoot_PatternTooLong(t *testing.T) {
	out, errOut, err := execute(t, "--max-pattern-length", "3", "abcdefgh", "abcde")
	require.ErrorIs(t, err, search.ErrPatternTooLong)
	assert.Contains(t, err.Error(), "--max-pattern-length >= 5")
	assert.NotContains(t, out+errOut, "Usage:")
	assert.Contains(t, errOut, "reconfigure with")
}

func TestRoot_EnvMaxPatternLength(t *testing.T) {
	t.Setenv(envMaxPatternLength, "2")
	_, _, err := execute(t, "aaaa", "aaa")
	require.ErrorIs(t, err, search.ErrPatternTooLong)

	long := strings.Repeat("ab", search.DefaultMaxPatternLength)
	t.Setenv(envMaxPatternLength, "1000")
	out, _, err := execute(t, long, long)
	require.NoError(t, err)
	assert.Equal(t, "match 1 found at position 0\n", out)
}
