package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"nhl-watchability-service/internal/domain"
)

// Result is the end-of-run artifact shape.
type Result struct {
	GeneratedAt time.Time          `json:"generatedAt"`
	Timezones   domain.Leaderboard `json:"timezones"`
}

// Writer persists the leaderboard as a JSON artifact. This is a run output,
// not cross-run state: nothing reads it back.
type Writer struct {
	path string
}

// NewWriter constructs a writer targeting the given path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteLeaderboard writes the artifact atomically (temp file + rename) so a
// crashed run never leaves a half-written file behind.
func (w *Writer) WriteLeaderboard(board domain.Leaderboard, generatedAt time.Time) error {
	if w == nil || w.path == "" {
		return fmt.Errorf("results writer not configured")
	}
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(Result{
		GeneratedAt: generatedAt.UTC(),
		Timezones:   board,
	}, "", "  ")
	if err != nil {
		return err
	}

	tmp := w.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, w.path)
}
