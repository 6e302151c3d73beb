package identity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kerrors "github.com/PolarWolf314/rvault/internal/errors"
)

func TestRead_FreshRootIsNotInitialized(t *testing.T) {
	root := t.TempDir()
	_, err := Read(root)
	assert.ErrorIs(t, err, kerrors.ErrNotInitialized)
}

func TestWriteThenRead(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "vault")

	require.NoError(t, Write(root, "KEYID"))
	id, err := Read(root)
	require.NoError(t, err)
	assert.Equal(t, "KEYID", id)

	data, err := os.ReadFile(filepath.Join(root, ".rvault"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"KEYID"}`, string(data))
}

func TestWrite_OverwritesBinding(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, Write(root, "OLD"))
	require.NoError(t, Write(root, "NEW"))

	id, err := Read(root)
	require.NoError(t, err)
	assert.Equal(t, "NEW", id)
}

func TestWrite_RejectsEmptyID(t *testing.T) {
	assert.ErrorIs(t, Write(t.TempDir(), ""), kerrors.ErrInvalidConfig)
}

func TestRead_NumericIDIsRejectedClearly(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(Path(root), []byte(`{"id": 123}`), 0600))

	_, err := Read(root)
	assert.ErrorIs(t, err, kerrors.ErrNotInitialized)
	assert.ErrorContains(t, err, "id must be a string, found a number")
}

func TestRead_NotInitializedCases(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{"missing root", func(t *testing.T) string {
			return filepath.Join(t.TempDir(), "missing")
		}},
		{"root is a file", func(t *testing.T) string {
			path := filepath.Join(t.TempDir(), "file")
			require.NoError(t, os.WriteFile(path, nil, 0600))
			return path
		}},
		{"unparseable binding", func(t *testing.T) string {
			root := t.TempDir()
			require.NoError(t, os.WriteFile(Path(root), []byte("not json"), 0600))
			return root
		}},
		{"binding without id", func(t *testing.T) string {
			root := t.TempDir()
			require.NoError(t, os.WriteFile(Path(root), []byte(`{"name":"x"}`), 0600))
			return root
		}},
		{"null id", func(t *testing.T) string {
			root := t.TempDir()
			require.NoError(t, os.WriteFile(Path(root), []byte(`{"id":null}`), 0600))
			return root
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(tt.setup(t))
			assert.ErrorIs(t, err, kerrors.ErrNotInitialized)
		})
	}
}
