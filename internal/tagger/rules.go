// Package tagger provides the default implementation of the engine's
// grammatical tagger collaborator: a small rule table over closed-class word
// lists, suffix morphology, and the token's immediate left context. It is
// deliberately modest — when no rule fires it abstains and lets the engine
// fall back to the role the dictionary entry expects.
package tagger

import (
	"strings"

	"github.com/abhisek/lexiz/internal/engine"
)

// Rules is a stateless rule-based tagger. Safe for concurrent use.
type Rules struct{}

// New creates a rule-based tagger.
func New() *Rules {
	return &Rules{}
}

// Closed-class words. Function words tag as Other: the tutor teaches content
// vocabulary, and Other is the safe role for everything structural.
var functionWords = makeSet(
	"a", "an", "the", "my", "his", "her", "their", "our", "your", "its",
	"this", "that", "these", "those",
	"i", "we", "they", "she", "he", "you", "it",
	"in", "on", "at", "by", "for", "with", "from", "to", "of", "about",
	"and", "but", "or", "nor", "so", "yet",
	"not", "no", "very", "too",
)

// Small lexicons of common content words, enough to cover everyday learner
// sentences without a real NLP model.
var (
	knownVerbs = makeSet(
		"is", "am", "are", "was", "were", "be", "been",
		"have", "has", "had", "do", "does", "did",
		"go", "goes", "went", "run", "runs", "ran",
		"say", "says", "said", "make", "makes", "made",
		"see", "sees", "saw", "get", "gets", "got",
		"feel", "feels", "felt", "know", "knows", "knew",
		"learn", "learns", "read", "reads", "write", "writes",
	)
	knownNouns = makeSet(
		"book", "books", "day", "days", "time", "word", "words",
		"friend", "friends", "school", "home", "water", "food",
		"teacher", "student", "morning", "night", "year", "years",
		"dog", "cat", "house", "car", "city", "family",
	)
	knownAdjectives = makeSet(
		"good", "bad", "big", "small", "happy", "sad", "new", "old",
		"young", "long", "short", "high", "low", "hot", "cold",
		"easy", "hard", "fast", "slow", "kind", "brave",
	)
	knownAdverbs = makeSet(
		"quickly", "slowly", "always", "never", "often", "rarely",
		"sometimes", "usually", "really", "well", "badly", "early",
		"late", "soon", "here", "there", "today", "yesterday", "tomorrow",
	)
)

// Left-context cues, mirroring the collocations learners actually produce.
var (
	linkingVerbCues = makeSet("is", "am", "are", "was", "were", "feel", "feels", "seem", "seems", "become", "becomes", "looks", "look")
	pronounCues     = makeSet("i", "we", "they", "she", "he", "you", "it")
	determinerCues  = makeSet("a", "an", "the", "my", "his", "her", "their", "our", "your")
)

// Suffix rules checked after the lexicons; ordered longest first.
var morphologyRules = []struct {
	suffix string
	pos    engine.PartOfSpeech
}{
	{"ment", engine.Noun},
	{"ness", engine.Noun},
	{"tion", engine.Noun},
	{"able", engine.Adjective},
	{"less", engine.Adjective},
	{"ing", engine.Verb},
	{"ous", engine.Adjective},
	{"ful", engine.Adjective},
	{"ive", engine.Adjective},
	{"ed", engine.Verb},
}

// Tag classifies the token at span. Precedence: closed-class and content
// lexicons, the "-ly" adverb rule, the token's left context, then general
// suffix morphology. Returns false when nothing fires.
func (*Rules) Tag(sentence string, span engine.Span) (engine.PartOfSpeech, bool) {
	if span.Start < 0 || span.End > len(sentence) || span.Start >= span.End {
		return "", false
	}
	token := strings.ToLower(sentence[span.Start:span.End])

	if _, ok := functionWords[token]; ok {
		return engine.Other, true
	}
	if _, ok := knownVerbs[token]; ok {
		return engine.Verb, true
	}
	if _, ok := knownNouns[token]; ok {
		return engine.Noun, true
	}
	if _, ok := knownAdjectives[token]; ok {
		return engine.Adjective, true
	}
	if _, ok := knownAdverbs[token]; ok {
		return engine.Adverb, true
	}

	// "-ly" is the strongest morphological signal in English and beats the
	// left-context cues ("I am resiliently ..." is an adverb, not an
	// adjective, despite the linking verb).
	if len(token) > 2 && strings.HasSuffix(token, "ly") {
		return engine.Adverb, true
	}

	if prev, ok := previousWord(sentence, span); ok {
		if _, hit := linkingVerbCues[prev]; hit {
			return engine.Adjective, true
		}
		if _, hit := pronounCues[prev]; hit {
			return engine.Verb, true
		}
		if _, hit := determinerCues[prev]; hit {
			return engine.Noun, true
		}
	}

	for _, rule := range morphologyRules {
		if len(token) > len(rule.suffix) && strings.HasSuffix(token, rule.suffix) {
			return rule.pos, true
		}
	}

	return "", false
}

// previousWord returns the lowercased whitespace-delimited word immediately
// before the span, stripped of trailing punctuation.
func previousWord(sentence string, span engine.Span) (string, bool) {
	if span.Start <= 0 || span.Start > len(sentence) {
		return "", false
	}
	fields := strings.Fields(sentence[:span.Start])
	if len(fields) == 0 {
		return "", false
	}
	prev := strings.ToLower(fields[len(fields)-1])
	prev = strings.TrimRight(prev, ".,;:!?\"")
	return prev, prev != ""
}

func makeSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
