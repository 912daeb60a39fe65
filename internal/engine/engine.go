// Package engine evaluates a learner's use of a target vocabulary word inside
// a self-authored sentence. It resolves descriptive metadata for the word
// through a layered lookup (curated table, optional external source,
// heuristic inference), locates the word in the sentence, classifies its
// grammatical role in context, and composes structured feedback with a
// corrective example when the usage falls short.
//
// The engine is a pure synchronous computation over its inputs and injected
// collaborators. The only operation permitted to block is the external source
// lookup, which is context-bounded and degrades to the heuristic path on any
// failure. Evaluations share no mutable state, so concurrent calls need no
// locking, and no failure inside the engine is fatal: every call returns a
// well-formed EvaluationResult.
package engine

import (
	"context"
	"strings"
)

// Engine is the tutor evaluation engine.
type Engine struct {
	resolver *Resolver
	tagger   Tagger
}

// Options configures an Engine. Every collaborator is optional; a missing
// one degrades the corresponding lookup rather than disabling evaluation.
type Options struct {
	// Local is the curated word table consulted first.
	Local LocalDictionary

	// Source is the external dictionary, consulted only when an evaluation
	// asks for it. Wrap it with a timeout decorator before passing it in;
	// the engine itself imposes no deadline beyond the caller's context.
	Source Source

	// Tagger classifies the located token's role in context. When nil or
	// abstaining, the expected role from the resolved entry is used.
	Tagger Tagger
}

// New creates an Engine from the given collaborators.
func New(opts Options) *Engine {
	return &Engine{
		resolver: NewResolver(opts.Local, opts.Source),
		tagger:   opts.Tagger,
	}
}

// Evaluate scores the learner's sentence against the target word and returns
// structured feedback. Deterministic given deterministic collaborators:
// identical inputs yield identical results.
func (e *Engine) Evaluate(ctx context.Context, word, sentence string, useExternal bool) EvaluationResult {
	word = strings.TrimSpace(word)
	if word == "" {
		return composeEmptyWord()
	}

	entry := e.resolver.Resolve(ctx, word, useExternal)

	span, found := Locate(sentence, word)
	if !found {
		return composeAbsent(word, entry)
	}

	actual := classifyToken(e.tagger, sentence, span, entry.PartOfSpeech)
	roleMatch, natural := classifyUsage(sentence, span, actual, entry.PartOfSpeech)

	return composeVerdict(word, entry, actual, roleMatch, natural)
}
