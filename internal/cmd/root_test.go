package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/fsearch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loremText = "Lorem ipsum dolor sit amet, consectetur adipiscing elit.\n" +
	"Integer nec odio. Praesent libero.\n" +
	"Sed cursus ante dapibus diam.\n" +
	"\n" +
	"Phasellus faucibus mi quis dui ultrices tristique. Morbi efficitur leo felis.\n" +
	"Nulla quis sem at nibh elementum imperdiet.\n"

// execute runs the root command in-process and captures both streams.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func TestRootCommand_Help(t *testing.T) {
	stdout, _, err := execute(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, stdout, "fsearch [pattern]")
	assert.Contains(t, stdout, "--wordlist")
	assert.Contains(t, stdout, "init-config")
}

func TestRootCommand_HasInitConfig(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "fsearch [pattern]", cmd.Use)

	found := false
	for _, sub := range cmd.Commands() {
		if sub.Name() == "init-config" {
			found = true
		}
	}
	assert.True(t, found, "init-config subcommand should be registered")
}

func TestSearch_SummaryTable(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.txt":     "test one\nTEST two\n",
		"b.txt":     "nothing\n",
		"sub/c.txt": "x\n",
	})

	stdout, stderr, err := execute(t, "-d", dir, "test")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.True(t, strings.HasPrefix(lines[0], "Path"))
	assert.Contains(t, lines[0], "Found")
	assert.NotContains(t, lines[0], "Matched")
	assert.True(t, strings.HasPrefix(lines[2], "a.txt"))
	assert.True(t, strings.HasSuffix(lines[2], " 2"))
	assert.Equal(t, "3 files scanned, 1 with matches", lines[len(lines)-1])
}

func TestSearch_FullModeHighlights(t *testing.T) {
	dir := writeTree(t, map[string]string{"lorem.txt": loremText})
	file := filepath.Join(dir, "lorem.txt")

	stdout, _, err := execute(t, "-d", file, "-m", "full", "--color", "always", "faucibus mi quis dui")
	require.NoError(t, err)

	assert.Contains(t, stdout, file)
	assert.Contains(t, stdout, "    Phasellus \x1b[91mfaucibus mi quis dui\x1b[0m ultrices tristique. Morbi efficitur leo felis.\n")
	assert.NotContains(t, stdout, "Lorem ipsum")
}

func TestSearch_FullModePlainWithLineNumbers(t *testing.T) {
	dir := writeTree(t, map[string]string{"lorem.txt": loremText})

	stdout, _, err := execute(t, "-d", dir, "-m", "full", "--color", "never", "--line-numbers", "-p", "quis")
	require.NoError(t, err)

	expected := filepath.Join(dir, "lorem.txt") + "\n" +
		"    5: Phasellus faucibus mi quis dui ultrices tristique. Morbi efficitur leo felis.\n" +
		"    6: Nulla quis sem at nibh elementum imperdiet.\n"
	assert.Equal(t, expected, stdout)
}

func TestSearch_CaseSensitive(t *testing.T) {
	dir := writeTree(t, map[string]string{"f.txt": "Needle needle NEEDLE\n"})

	stdout, _, err := execute(t, "-d", dir, "-m", "full", "--color", "never", "-i", "needle")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Needle needle NEEDLE")

	stdout, _, err = execute(t, "-d", dir, "-i", "nEEDLE")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 files scanned, 0 with matches")
}

func TestSearch_Wordlist(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"sample.txt": "a test line\nnothing here\nTest again\nlast line\n",
	})
	wordlist := filepath.Join(t.TempDir(), "terms.txt")
	require.NoError(t, os.WriteFile(wordlist, []byte("test\n123\n"), 0644))

	stdout, _, err := execute(t, "-d", dir, "-w", wordlist)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Matched")
	assert.Contains(t, stdout, "%Matched")
	assert.Contains(t, stdout, "50.00%")
}

func TestSearch_EmptyWordlistWarns(t *testing.T) {
	dir := writeTree(t, map[string]string{"f.txt": "anything\n"})
	wordlist := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(wordlist, []byte("\n\n"), 0644))

	stdout, stderr, err := execute(t, "-d", dir, "-w", wordlist)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Wordlist is empty")
	assert.Contains(t, stdout, "0.00%")
}

func TestSearch_NoFilesWarns(t *testing.T) {
	dir := t.TempDir()

	stdout, stderr, err := execute(t, "-d", dir, "x")
	require.NoError(t, err)
	assert.Contains(t, stderr, "No files to search")
	assert.Contains(t, stdout, "0 files scanned, 0 with matches")
}

func TestSearch_Filters(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"top.txt":          "hit\n",
		"top.log":          "hit\n",
		".hidden.txt":      "hit\n",
		"one/two/deep.txt": "hit\n",
	})

	stdout, _, err := execute(t, "-d", dir, "-x", "log", "-l", "0", "hit")
	require.NoError(t, err)
	assert.Contains(t, stdout, "top.txt")
	assert.NotContains(t, stdout, "top.log")
	assert.NotContains(t, stdout, ".hidden.txt")
	assert.NotContains(t, stdout, "deep.txt")

	stdout, _, err = execute(t, "-d", dir, "-n", "hit")
	require.NoError(t, err)
	assert.Contains(t, stdout, ".hidden.txt")
	assert.Contains(t, stdout, "deep.txt")
	assert.Contains(t, stdout, "4 files scanned, 4 with matches")
}

func TestSearch_ConfigFileAndFlagPrecedence(t *testing.T) {
	dir := writeTree(t, map[string]string{"lorem.txt": loremText})
	configPath := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("mode: full\ncolor: never\n"), 0644))

	stdout, _, err := execute(t, "--config", configPath, "-d", dir, "Nulla")
	require.NoError(t, err)
	assert.Contains(t, stdout, "    Nulla quis sem at nibh elementum imperdiet.\n")

	stdout, _, err = execute(t, "--config", configPath, "-d", dir, "-m", "simple", "Nulla")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 files scanned, 1 with matches")
}

func TestSearch_LogLevelInfo(t *testing.T) {
	dir := writeTree(t, map[string]string{"f.txt": "x\n"})

	_, stderr, err := execute(t, "-d", dir, "--log-level", "info", "x")
	require.NoError(t, err)
	assert.Contains(t, stderr, "[INFO] Enumerated 1 file(s)")
	assert.Contains(t, stderr, "[INFO] Scanned 1 file(s), 1 with matches")
}

func TestSearch_ArgumentErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	tests := []struct {
		name string
		args []string
	}{
		{name: "pattern and wordlist", args: []string{"-d", missing, "-w", "terms.txt", "x"}},
		{name: "flag pattern and wordlist", args: []string{"-d", missing, "-w", "terms.txt", "-p", "x"}},
		{name: "neither pattern nor wordlist", args: []string{"-d", missing}},
		{name: "conflicting patterns", args: []string{"-d", missing, "-p", "a", "b"}},
		{name: "too many positionals", args: []string{"-d", missing, "a", "b"}},
		{name: "bad mode", args: []string{"-d", missing, "-m", "verbose", "x"}},
		{name: "bad color", args: []string{"-d", missing, "--color", "sometimes", "x"}},
		{name: "bad depth", args: []string{"-d", missing, "-l", "-5", "x"}},
		{name: "bad log level", args: []string{"-d", missing, "--log-level", "loud", "x"}},
		{name: "unknown flag", args: []string{"-d", missing, "--recursive", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.Error(t, err)

			var argErr *models.ArgumentError
			assert.True(t, errors.As(err, &argErr), "expected ArgumentError, got %T: %v", err, err)
			assert.Equal(t, models.ExitUsageError, models.ExitCode(err))
			assert.Empty(t, stdout)
		})
	}
}

func TestSearch_SamePatternTwiceIsAccepted(t *testing.T) {
	dir := writeTree(t, map[string]string{"f.txt": "abc\n"})

	stdout, _, err := execute(t, "-d", dir, "-p", "abc", "abc")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 files scanned, 1 with matches")
}

func TestSearch_PatternError(t *testing.T) {
	dir := writeTree(t, map[string]string{"f.txt": "abc\n"})

	_, _, err := execute(t, "-d", dir, "[unclosed")
	require.Error(t, err)

	var patErr *models.PatternError
	require.True(t, errors.As(err, &patErr))
	assert.Equal(t, "[unclosed", patErr.Pattern)
	assert.Equal(t, models.ExitUsageError, models.ExitCode(err))
}

func TestSearch_IOErrors(t *testing.T) {
	t.Run("missing root", func(t *testing.T) {
		_, _, err := execute(t, "-d", filepath.Join(t.TempDir(), "missing"), "x")
		require.Error(t, err)

		var ioErr *models.IOError
		assert.True(t, errors.As(err, &ioErr))
		assert.True(t, errors.Is(err, os.ErrNotExist))
		assert.Equal(t, models.ExitFailure, models.ExitCode(err))
	})

	t.Run("missing wordlist", func(t *testing.T) {
		dir := writeTree(t, map[string]string{"f.txt": "abc\n"})
		_, _, err := execute(t, "-d", dir, "-w", filepath.Join(dir, "nope.txt"))
		require.Error(t, err)

		var ioErr *models.IOError
		assert.True(t, errors.As(err, &ioErr))
		assert.Equal(t, models.ExitFailure, models.ExitCode(err))
	})
}

func TestSearch_ProgressOnStderr(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.txt": "x\n", "b.txt": "y\n"})

	stdout, stderr, err := execute(t, "-d", dir, "--progress", "x")
	require.NoError(t, err)

	assert.Contains(t, stderr, "Scanning 2 file(s):\n")
	assert.Contains(t, stderr, "  [1/2] a.txt\n")
	assert.Contains(t, stderr, "  [2/2] b.txt\n")
	assert.NotContains(t, stdout, "[1/2]")
}
