// Package session keeps the last texts typed into the two panes so they can
// be restored on the next start.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const sessionFile = "session.json"

// Store manages draft persistence.
type Store struct {
	dir     string
	Left    string    `json:"left"`
	Right   string    `json:"right"`
	SavedAt time.Time `json:"savedAt"`
}

// DefaultDir returns ~/.textdiff.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home dir: %w", err)
	}
	return filepath.Join(home, ".textdiff"), nil
}

// New creates a store rooted at dir and loads any saved drafts.
// An empty dir means DefaultDir.
func New(dir string) (*Store, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating session dir: %w", err)
	}

	s := &Store{dir: dir}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads drafts from disk. A missing file leaves the store empty.
func (s *Store) Load() error {
	data, err := os.ReadFile(filepath.Join(s.dir, sessionFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading session: %w", err)
	}
	if err := json.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parsing session: %w", err)
	}
	return nil
}

// Save writes the drafts to disk.
func (s *Store) Save() error {
	s.SavedAt = time.Now().UTC()
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, sessionFile), data, 0644); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

// Set replaces both drafts.
func (s *Store) Set(left, right string) {
	s.Left = left
	s.Right = right
}

// Empty reports whether no draft text is stored.
func (s *Store) Empty() bool {
	return s.Left == "" && s.Right == ""
}

// Reset clears the drafts and persists the empty state.
func (s *Store) Reset() error {
	s.Left = ""
	s.Right = ""
	return s.Save()
}
