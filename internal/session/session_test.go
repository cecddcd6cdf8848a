package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileState_MissingFileIsNotCompleted(t *testing.T) {
	s := NewFileState(filepath.Join(t.TempDir(), "state.toml"))
	assert.False(t, s.HasUploaded())
}

func TestFileState_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s := NewFileState("")
	require.NoError(t, s.SetUploaded(true))

	_, err := os.Stat(filepath.Join(home, ".config", "darkroom", "state.toml"))
	require.NoError(t, err)
	assert.True(t, NewFileState("").HasUploaded())
}

func TestFileState_SetCreatesDirsAndClears(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.toml")
	s := NewFileState(path)

	require.NoError(t, s.SetUploaded(true))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "has_uploaded = true")
	assert.True(t, s.HasUploaded())

	require.NoError(t, s.SetUploaded(false))
	assert.False(t, s.HasUploaded())

	// clearing twice is fine
	require.NoError(t, s.SetUploaded(false))
}

func TestFileState_CorruptFileDegrades(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(path, []byte("has_uploaded = ["), 0o644))

	assert.False(t, NewFileState(path).HasUploaded())
}

func TestFileState_ExplicitFalse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(path, []byte("has_uploaded = false\n"), 0o644))

	assert.False(t, NewFileState(path).HasUploaded())
}

func TestMemoryState(t *testing.T) {
	s := NewMemoryState(false)
	assert.False(t, s.HasUploaded())

	require.NoError(t, s.SetUploaded(true))
	assert.True(t, s.HasUploaded())

	assert.True(t, NewMemoryState(true).HasUploaded())
}
