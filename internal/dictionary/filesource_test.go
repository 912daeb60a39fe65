package dictionary

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/lexiz/internal/engine"
)

func writeUserDict(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write user dictionary: %v", err)
	}
	return path
}

const userDict = `{
  "entries": [
    {
      "word": "ephemeral",
      "meaning": "Lasting for a very short time.",
      "partOfSpeech": "adjective",
      "difficulty": "advanced",
      "examples": ["The fame proved ephemeral."],
      "synonyms": ["fleeting", "transient"]
    }
  ]
}`

func TestFileSource_Fetch(t *testing.T) {
	src := NewFileSource(writeUserDict(t, userDict))

	entry, err := src.Fetch(context.Background(), "Ephemeral")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if entry == nil {
		t.Fatal("Fetch returned nil entry for a present word")
	}
	if entry.PartOfSpeech != engine.Adjective {
		t.Errorf("partOfSpeech = %v, want %v", entry.PartOfSpeech, engine.Adjective)
	}
	if entry.Difficulty != engine.Advanced {
		t.Errorf("difficulty = %v, want %v", entry.Difficulty, engine.Advanced)
	}
}

func TestFileSource_MissReturnsNilNil(t *testing.T) {
	src := NewFileSource(writeUserDict(t, userDict))

	entry, err := src.Fetch(context.Background(), "banana")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if entry != nil {
		t.Errorf("Fetch returned %+v for an absent word, want nil", entry)
	}
}

func TestFileSource_MissingFile(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "nope.json"))

	if _, err := src.Fetch(context.Background(), "anything"); err == nil {
		t.Error("Fetch on a missing file returned no error")
	}
}

func TestFileSource_InvalidDocument(t *testing.T) {
	src := NewFileSource(writeUserDict(t, `{"entries": [{"word": "x"}]}`))

	if _, err := src.Fetch(context.Background(), "x"); err == nil {
		t.Error("Fetch accepted a document missing required fields")
	}
}

func TestFileSource_CancelledContext(t *testing.T) {
	src := NewFileSource(writeUserDict(t, userDict))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := src.Fetch(ctx, "ephemeral"); err == nil {
		t.Error("Fetch with cancelled context returned no error")
	}
}

// slowSource blocks until its context is done.
type slowSource struct{}

func (slowSource) Fetch(ctx context.Context, _ string) (*engine.WordEntry, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestWithTimeout_BoundsSlowSource(t *testing.T) {
	src := WithTimeout(slowSource{}, 10*time.Millisecond)

	start := time.Now()
	_, err := src.Fetch(context.Background(), "anything")
	elapsed := time.Since(start)

	if err == nil {
		t.Error("slow fetch returned no error")
	}
	if elapsed > time.Second {
		t.Errorf("fetch took %v, timeout did not bound it", elapsed)
	}
}

func TestWithTimeout_PassesThroughFastSource(t *testing.T) {
	src := WithTimeout(NewFileSource(writeUserDict(t, userDict)), time.Second)

	entry, err := src.Fetch(context.Background(), "ephemeral")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if entry == nil {
		t.Fatal("Fetch returned nil entry")
	}
}
