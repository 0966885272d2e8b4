package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoDocument is returned by Load when no transcript exists on disk yet.
var ErrNoDocument = errors.New("no transcript document")

// Store persists a transcript Document.
type Store interface {
	Load() (Document, error) // returns ErrNoDocument if none exists
	Save(Document) error
	Path() string
}

// diskStore is the concrete Store for one session's markdown file.
type diskStore struct {
	path string
}

// NewStore returns a Store for the given session inside dir, creating the
// directory if needed.
func NewStore(dir, sessionID string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating transcript directory: %w", err)
	}
	return &diskStore{path: filepath.Join(dir, sessionID+".md")}, nil
}

func (d *diskStore) Path() string { return d.path }

// Load reads and splits the transcript file.
func (d *diskStore) Load() (Document, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Document{}, ErrNoDocument
		}
		return Document{}, fmt.Errorf("failed to read transcript: %w", err)
	}
	return Parse(data), nil
}

// Save writes the full rendered document to a temp file in the same
// directory and atomically replaces the target, so a concurrent reader
// never observes a partially-written transcript.
func (d *diskStore) Save(doc Document) error {
	tmp, err := os.CreateTemp(filepath.Dir(d.path), "transcript-*.md.tmp")
	if err != nil {
		return fmt.Errorf("failed to persist transcript: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up the temp file on any error path.
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.WriteString(doc.Render()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to persist transcript: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to persist transcript: %w", err)
	}

	if err = os.Rename(tmpName, d.path); err != nil {
		return fmt.Errorf("failed to persist transcript: %w", err)
	}
	return nil
}
