package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestHighScoreFile(t *testing.T) *HighScoreFile {
	t.Helper()
	f, err := NewHighScoreFile(filepath.Join(t.TempDir(), "nested", "high_score.json"))
	if err != nil {
		t.Fatalf("NewHighScoreFile() failed: %v", err)
	}
	return f
}

func TestHighScoreMissingFile(t *testing.T) {
	f := newTestHighScoreFile(t)

	score, err := f.Load()
	if err != nil {
		t.Errorf("Load() of a missing file should not fail: %v", err)
	}
	if score != 0 {
		t.Errorf("Load() = %d, expected 0", score)
	}
}

func TestHighScoreSaveLoad(t *testing.T) {
	f := newTestHighScoreFile(t)

	if err := f.Save(42); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	score, err := f.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if score != 42 {
		t.Errorf("Load() = %d, expected 42", score)
	}

	data, err := os.ReadFile(f.Path())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"high_score":42}` {
		t.Errorf("file content = %s", data)
	}

	// No temp files left behind
	entries, _ := os.ReadDir(filepath.Dir(f.Path()))
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, expected only the record", len(entries))
	}
}

func TestHighScoreCorruptFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "high score: lots"},
		{"wrong type", `{"high_score": "ten"}`},
		{"negative", `{"high_score": -3}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newTestHighScoreFile(t)
			os.MkdirAll(filepath.Dir(f.Path()), 0o755)
			if err := os.WriteFile(f.Path(), []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}

			score, err := f.Load()
			if err == nil {
				t.Error("Load() should report a corrupt file")
			}
			if score != 0 {
				t.Errorf("Load() = %d, expected 0 for a corrupt file", score)
			}
		})
	}
}

func TestHighScoreReset(t *testing.T) {
	f := newTestHighScoreFile(t)

	if err := f.Reset(); err != nil {
		t.Errorf("Reset() of a missing file should not fail: %v", err)
	}

	f.Save(7)
	if err := f.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if score, _ := f.Load(); score != 0 {
		t.Errorf("Load() after Reset() = %d, expected 0", score)
	}
}
