package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultHighScorePath is where the high score record lives by default.
const DefaultHighScorePath = "~/.dash/high_score.json"

// highScoreRecord is the on-disk format.
type highScoreRecord struct {
	HighScore int `json:"high_score"`
}

// HighScoreFile reads and writes the all-time high score as JSON.
type HighScoreFile struct {
	path string
}

// NewHighScoreFile creates a record at path. A leading ~ is expanded.
func NewHighScoreFile(path string) (*HighScoreFile, error) {
	if path == "" {
		path = DefaultHighScorePath
	}
	expanded, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return &HighScoreFile{path: expanded}, nil
}

// Path returns the resolved file path.
func (f *HighScoreFile) Path() string {
	return f.path
}

// Load returns the stored high score. A missing file yields 0 and no
// error. An unreadable or corrupt file yields 0 and an error the caller
// may log; play continues either way.
func (f *HighScoreFile) Load() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read high score: %w", err)
	}

	var rec highScoreRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("storage: corrupt high score file %s: %w", f.path, err)
	}
	if rec.HighScore < 0 {
		return 0, fmt.Errorf("storage: corrupt high score file %s: negative score %d", f.path, rec.HighScore)
	}

	return rec.HighScore, nil
}

// Save writes score, replacing the file atomically.
func (f *HighScoreFile) Save(score int) error {
	data, err := json.Marshal(highScoreRecord{HighScore: score})
	if err != nil {
		return fmt.Errorf("storage: cannot encode high score: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".high_score-*.json")
	if err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("storage: cannot replace high score: %w", err)
	}

	return nil
}

// Reset removes the record. A missing file is not an error.
func (f *HighScoreFile) Reset() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: cannot remove high score: %w", err)
	}
	return nil
}
