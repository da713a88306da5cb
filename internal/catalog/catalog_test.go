package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_UniqueIDs(t *testing.T) {
	c := Default()
	require.Equal(t, 19, c.Len())

	seen := make(map[int]bool)
	for _, e := range c.Entries() {
		assert.False(t, seen[e.ID], "duplicate id %d", e.ID)
		seen[e.ID] = true
		assert.NotEmpty(t, e.Present)
		assert.NotEmpty(t, e.Past)
		assert.NotEmpty(t, e.Translation)
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	c := Default()
	entries := c.Entries()
	entries[0].Present = "changed"

	first, ok := c.ByID(entries[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "changed", first.Present)
}

func TestByID(t *testing.T) {
	c := Default()

	e, ok := c.ByID(14)
	require.True(t, ok)
	assert.Equal(t, "go", e.Present)
	assert.Equal(t, "went", e.Past)

	_, ok = c.ByID(999)
	assert.False(t, ok)
}

func TestVariants(t *testing.T) {
	tests := []struct {
		field string
		want  []string
	}{
		{"was", []string{"was"}},
		{"am / is", []string{"am", "is"}},
		{"", []string{""}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Variants(tc.field), "Variants(%q)", tc.field)
	}
}

func TestParse_Valid(t *testing.T) {
	data := []byte(`[
		{"id": 1, "present": "run", "past": "ran", "translation": "달리다"},
		{"id": 2, "present": "sing", "past": "sang", "translation": "노래하다"}
	]`)

	c, err := Parse("test.json", data)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	e, ok := c.ByID(2)
	require.True(t, ok)
	assert.Equal(t, "sang", e.Past)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{`},
		{"empty array", `[]`},
		{"object", `{"id": 1}`},
		{"missing past", `[{"id": 1, "present": "run", "translation": "x"}]`},
		{"empty present", `[{"id": 1, "present": "", "past": "ran", "translation": "x"}]`},
		{"zero id", `[{"id": 0, "present": "run", "past": "ran", "translation": "x"}]`},
		{"fractional id", `[{"id": 1.5, "present": "run", "past": "ran", "translation": "x"}]`},
		{"extra field", `[{"id": 1, "present": "run", "past": "ran", "translation": "x", "level": 2}]`},
		{"duplicate id", `[
			{"id": 1, "present": "run", "past": "ran", "translation": "x"},
			{"id": 1, "present": "sing", "past": "sang", "translation": "y"}
		]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("bad.json", []byte(tt.data))
			require.Error(t, err)

			var valErr *ValidationError
			assert.True(t, errors.As(err, &valErr), "expected *ValidationError, got %T", err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 7, "present": "see", "past": "saw", "translation": "보다"}]`), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
