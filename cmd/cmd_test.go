package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/tensequiz/internal/catalog"
)

// execute runs the root command with args and returns its output. Flag
// values persist on the package-level commands, so they are reset first.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	require.NoError(t, wordsCmd.Flags().Set("json", "false"))
	require.NoError(t, rootCmd.PersistentFlags().Set("words", ""))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestHintCommand(t *testing.T) {
	out, err := execute(t, "hint", "went")
	require.NoError(t, err)
	assert.Equal(t, "w _ n t\n", out)
}

func TestHintCommand_RequiresWord(t *testing.T) {
	_, err := execute(t, "hint")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "tensequiz "))
}

func TestWordsCommand_Table(t *testing.T) {
	out, err := execute(t, "words")
	require.NoError(t, err)
	for _, want := range []string{"Present", "am / is", "watched", "보다"} {
		assert.Contains(t, out, want)
	}
}

func TestWordsCommand_JSONRoundTrips(t *testing.T) {
	out, err := execute(t, "words", "--json")
	require.NoError(t, err)

	var entries []catalog.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Equal(t, catalog.Default().Entries(), entries)

	// The JSON output is a valid --words file.
	_, err = catalog.Parse("stdout", []byte(out))
	assert.NoError(t, err)
}

func TestWordsCommand_CustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	data := `[{"id": 1, "present": "run", "past": "ran", "translation": "달리다"}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out, err := execute(t, "words", "--words", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ran")
	assert.NotContains(t, out, "watched")
}

func TestWordsCommand_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 0, "present": "", "past": "x"}]`), 0o644))

	_, err := execute(t, "words", "--words", path)
	require.Error(t, err)

	var verr *catalog.ValidationError
	assert.True(t, errors.As(err, &verr))
}
