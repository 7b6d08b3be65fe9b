package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads every turn in order", func(t *testing.T) {
		// Given: a script file with three turns
		path := filepath.Join(t.TempDir(), "turns.yml")
		content := "turns:\n  - {row: 0, col: 0}\n  - {row: 2, col: 0}\n  - row: 1\n    col: 1\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: the script is loaded
		turns, err := Load(path)

		// Then: the turns should come back in file order
		require.NoError(t, err)
		assert.Equal(t, []Turn{{Row: 0, Col: 0}, {Row: 2, Col: 0}, {Row: 1, Col: 1}}, turns)
	})

	t.Run("Missing file", func(t *testing.T) {
		// When: a script that does not exist is loaded
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))

		// Then: the file error should be wrapped
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Broken YAML", func(t *testing.T) {
		// When: garbage is decoded
		_, err := Decode([]byte("turns: [{row: 1"))

		// Then: an error should be returned
		require.Error(t, err)
		assert.Contains(t, err.Error(), "can't decode script")
	})
}

func TestParse(t *testing.T) {
	t.Run("Valid line", func(t *testing.T) {
		turn, err := Parse("  2   1 ")

		require.NoError(t, err)
		assert.Equal(t, Turn{Row: 2, Col: 1}, turn)
	})

	t.Run("Negative coordinates are left to the board", func(t *testing.T) {
		turn, err := Parse("-1 4")

		require.NoError(t, err)
		assert.Equal(t, Turn{Row: -1, Col: 4}, turn)
	})

	tests := []struct {
		name string
		line string
	}{
		{name: "Empty line", line: ""},
		{name: "One field", line: "1"},
		{name: "Three fields", line: "1 2 3"},
		{name: "Row not a number", line: "a 2"},
		{name: "Col not a number", line: "1 b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.line)

			require.ErrorIs(t, err, ErrInvalidTurn)
		})
	}
}
