package engine

import "context"

// LocalDictionary is the curated word table collaborator. Lookups are exact
// but case-insensitive.
type LocalDictionary interface {
	Lookup(word string) (WordEntry, bool)
}

// Source is the external dictionary collaborator. Fetch may block on I/O and
// must honor ctx; a nil entry with nil error means the word was not found.
// The resolver treats errors and timeouts exactly like "not found" — the
// external path degrades, it never fails an evaluation.
type Source interface {
	Fetch(ctx context.Context, word string) (*WordEntry, error)
}

// resolveStrategy is one fallible lookup in the resolver's ordered chain.
// Keeping each step behind this interface keeps them independently testable.
type resolveStrategy interface {
	tryResolve(ctx context.Context, word string) (WordEntry, bool)
}

// Resolver produces a WordEntry for any word by trying, in order: the local
// curated table, the external source (when enabled), and heuristic inference.
// The order is load-bearing — a curated entry always beats the external
// source, which always beats the heuristic guess.
type Resolver struct {
	local  LocalDictionary
	source Source
}

// NewResolver builds a Resolver. Both collaborators are optional: a nil
// dictionary or source simply removes that step from the chain.
func NewResolver(local LocalDictionary, source Source) *Resolver {
	return &Resolver{local: local, source: source}
}

// Resolve returns descriptive metadata for word. It never fails: every path
// terminates in a valid WordEntry. The caller is responsible for rejecting
// empty words before resolution.
func (r *Resolver) Resolve(ctx context.Context, word string, useExternal bool) WordEntry {
	strategies := make([]resolveStrategy, 0, 3)
	if r.local != nil {
		strategies = append(strategies, localStrategy{dict: r.local})
	}
	if useExternal && r.source != nil {
		strategies = append(strategies, externalStrategy{source: r.source})
	}
	strategies = append(strategies, heuristicStrategy{})

	for _, s := range strategies {
		if entry, ok := s.tryResolve(ctx, word); ok {
			return entry
		}
	}

	// Unreachable: the heuristic strategy always succeeds.
	return buildFallbackEntry(word)
}

type localStrategy struct {
	dict LocalDictionary
}

func (s localStrategy) tryResolve(_ context.Context, word string) (WordEntry, bool) {
	entry, ok := s.dict.Lookup(word)
	if !ok {
		return WordEntry{}, false
	}
	return normalizeEntry(entry), true
}

type externalStrategy struct {
	source Source
}

func (s externalStrategy) tryResolve(ctx context.Context, word string) (WordEntry, bool) {
	entry, err := s.source.Fetch(ctx, word)
	if err != nil || entry == nil || entry.Meaning == "" {
		return WordEntry{}, false
	}
	return normalizeEntry(*entry), true
}

type heuristicStrategy struct{}

func (heuristicStrategy) tryResolve(_ context.Context, word string) (WordEntry, bool) {
	return buildFallbackEntry(word), true
}

// normalizeEntry enforces entry invariants on data from collaborators:
// slices are never nil and the part of speech is always a known value.
func normalizeEntry(e WordEntry) WordEntry {
	if e.Examples == nil {
		e.Examples = []string{}
	}
	if e.Synonyms == nil {
		e.Synonyms = []string{}
	}
	if !e.PartOfSpeech.IsValid() {
		e.PartOfSpeech = Other
	}
	if !e.Difficulty.IsValid() {
		e.Difficulty = Intermediate
	}
	return e
}
