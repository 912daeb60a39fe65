package engine

import "strings"

// Left-context word sets for the naturalness rules. Deliberately small and
// fixed: the rule inspects exactly one preceding word, nothing more.
var (
	linkingVerbs = wordSet("is", "am", "are", "was", "were", "feel", "seem", "become", "looks", "look")
	pronouns     = wordSet("i", "we", "they", "she", "he", "you", "it")
	determiners  = wordSet("a", "an", "the", "my", "his", "her", "their")
)

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// classifyUsage decides whether the located token is used correctly for its
// expected role. roleMatch is a straight equality check between the actual
// and expected parts of speech. natural applies a coarse collocation rule to
// the single whitespace-separated word immediately before the span:
//
//   - adjectives want a preceding linking verb ("is", "feels", ...)
//   - verbs want a preceding subject pronoun ("I", "they", ...)
//   - nouns want a preceding determiner ("a", "the", "my", ...)
//   - every other role is unconstrained
//
// A target word that opens the sentence has no left context and is unnatural
// for the three constrained roles. This single-word precision is intentional;
// the feedback messages are written around it.
func classifyUsage(sentence string, span Span, actual, expected PartOfSpeech) (roleMatch, natural bool) {
	roleMatch = actual == expected

	prev, hasPrev := precedingWord(sentence, span)

	switch actual {
	case Adjective:
		natural = hasPrev && contains(linkingVerbs, prev)
	case Verb:
		natural = hasPrev && contains(pronouns, prev)
	case Noun:
		natural = hasPrev && contains(determiners, prev)
	case Adverb, Other:
		natural = true
	default:
		natural = true
	}

	return roleMatch, natural
}

// precedingWord returns the last whitespace-delimited word strictly before
// the span, lowercased. No punctuation stripping — "is," does not count as
// "is", matching the coarseness of the rule.
func precedingWord(sentence string, span Span) (string, bool) {
	if span.Start <= 0 || span.Start > len(sentence) {
		return "", false
	}
	fields := strings.Fields(sentence[:span.Start])
	if len(fields) == 0 {
		return "", false
	}
	return strings.ToLower(fields[len(fields)-1]), true
}

func contains(set map[string]struct{}, word string) bool {
	_, ok := set[word]
	return ok
}
