package engine

import (
	"context"
	"sync"
)

// MockSource is a deterministic Source for testing. It serves entries from a
// fixed map and records every fetched word.
type MockSource struct {
	mu      sync.Mutex
	entries map[string]WordEntry

	// Err, when set, is returned by every Fetch call.
	Err error

	// Calls records the words fetched, in order.
	Calls []string
}

// NewMockSource creates a MockSource serving the given entries.
func NewMockSource(entries map[string]WordEntry) *MockSource {
	if entries == nil {
		entries = map[string]WordEntry{}
	}
	return &MockSource{entries: entries}
}

// Fetch returns the canned entry for word, or (nil, nil) when absent.
func (m *MockSource) Fetch(_ context.Context, word string) (*WordEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, word)

	if m.Err != nil {
		return nil, m.Err
	}
	entry, ok := m.entries[word]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

// CallCount returns the number of Fetch calls made.
func (m *MockSource) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockTagger is a deterministic Tagger for testing. It returns a fixed tag,
// or abstains when Abstain is set.
type MockTagger struct {
	POS     PartOfSpeech
	Abstain bool
}

// Tag returns the canned classification.
func (m MockTagger) Tag(_ string, _ Span) (PartOfSpeech, bool) {
	if m.Abstain {
		return "", false
	}
	return m.POS, true
}
