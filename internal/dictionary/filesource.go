package dictionary

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/lexiz/internal/engine"
)

// FileSource implements the engine's external source collaborator over a
// local JSON dictionary file (same schema as the curated table). The file is
// read fresh on every fetch — the tutor keeps no cross-call state, and the
// learner can edit their dictionary between evaluations.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource reading from path. The path is not
// checked until the first fetch; a missing file is a per-fetch failure the
// resolver degrades over, not a construction error.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Fetch looks word up in the dictionary file. Returns (nil, nil) when the
// file does not contain the word.
func (s *FileSource) Fetch(ctx context.Context, word string) (*engine.WordEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read user dictionary: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := parseDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("user dictionary %s: %w", s.path, err)
	}

	want := strings.ToLower(strings.TrimSpace(word))
	for _, e := range doc.Entries {
		if strings.ToLower(e.Word) == want {
			entry := toWordEntry(e)
			return &entry, nil
		}
	}
	return nil, nil
}
