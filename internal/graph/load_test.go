package graph

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_MixedIDs(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	data := []byte(`{"1": [2, "3"], "2": ["1"], "4": []}`)

	// --- Act ---
	g, err := Parse("mixed", data)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "mixed", g.Name())
	assert.Equal(t, IDsOf("1", "2", "3", "4"), g.Nodes())
	assert.Equal(t, IDsOf("1"), g.Neighbors("3"), "referenced-only nodes are added and edges symmetrised")
	assert.Equal(t, 2, g.EdgeCount())
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := map[string]string{
		"invalid json":      `{"1": [2,`,
		"not an object":     `[1, 2]`,
		"adjacency string":  `{"1": "2"}`,
		"nested neighbour":  `{"1": [[2]]}`,
		"boolean neighbour": `{"1": [true]}`,
	}
	for name, input := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse("bad", []byte(input))
			require.Error(t, err)
		})
	}
}

func TestLoad_GraphLoadError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := Load(context.Background(), dir, "missing.5")

	var loadErr *GraphLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "missing.5", loadErr.Name)
	assert.Equal(t, filepath.Join(dir, "missing.5.json"), loadErr.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_MalformedIsGraphLoadError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir, "bad.2"), []byte(`{"1": 5}`), 0o600))

	_, err := Load(context.Background(), dir, "bad.2")

	var loadErr *GraphLoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestLoad_ReadsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir, "tri.1"), []byte(`{"a": ["b", "c"], "b": ["c"]}`), 0o600))

	g, err := Load(context.Background(), dir, "tri.1")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 3, g.EdgeCount())
}
