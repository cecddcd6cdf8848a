// Package session persists the client-side "upload already completed" marker.
// The marker lives in ~/.config/darkroom/state.toml by default.
package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

const defaultStatePath = "~/.config/darkroom/state.toml"

// DefaultPath returns the default state file path.
func DefaultPath() string {
	return defaultStatePath
}

type fileContents struct {
	HasUploaded bool `toml:"has_uploaded"`
}

// FileState stores the completion marker in a TOML file.
type FileState struct {
	path string
}

// NewFileState returns a FileState for path. An empty path selects the default.
func NewFileState(path string) *FileState {
	return &FileState{path: path}
}

// Path returns the configured path, unresolved.
func (s *FileState) Path() string {
	if strings.TrimSpace(s.path) == "" {
		return defaultStatePath
	}
	return s.path
}

// HasUploaded reports whether the marker is set. A missing or unreadable
// file counts as not completed.
func (s *FileState) HasUploaded() bool {
	resolved, err := expandPath(s.Path())
	if err != nil {
		return false
	}

	file, err := os.Open(resolved)
	if err != nil {
		return false
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return false
	}

	var contents fileContents
	if err := toml.Unmarshal(data, &contents); err != nil {
		return false
	}
	return contents.HasUploaded
}

// SetUploaded writes the marker, creating directories as needed.
func (s *FileState) SetUploaded(done bool) error {
	resolved, err := expandPath(s.Path())
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if !done {
		if err := os.Remove(resolved); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove state: %w", err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	data, err := toml.Marshal(fileContents{HasUploaded: true})
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

// MemoryState keeps the marker in memory only.
type MemoryState struct {
	mu   sync.Mutex
	done bool
}

// NewMemoryState returns a MemoryState with the given initial value.
func NewMemoryState(done bool) *MemoryState {
	return &MemoryState{done: done}
}

func (s *MemoryState) HasUploaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

func (s *MemoryState) SetUploaded(done bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.done = done
	return nil
}
