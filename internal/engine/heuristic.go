package engine

import (
	"fmt"
	"unicode/utf8"
)

// suffixRules maps word endings to inferred parts of speech. Ordered longest
// suffix first so "-ment" wins over "-ed"-style overlaps; ties keep their
// listed order.
var suffixRules = []struct {
	suffix string
	pos    PartOfSpeech
}{
	{"ment", Noun},
	{"ness", Noun},
	{"able", Adjective},
	{"less", Adjective},
	{"ing", Verb},
	{"ion", Noun},
	{"ous", Adjective},
	{"ful", Adjective},
	{"ive", Adjective},
	{"ly", Adverb},
	{"ed", Verb},
	{"al", Adjective},
}

// inferPartOfSpeech guesses a word's role from its ending. Words matching no
// rule default to adjective — for a vocabulary tutor that is the least bad
// guess, since it produces a usable "I am X." corrective template.
func inferPartOfSpeech(word string) PartOfSpeech {
	for _, rule := range suffixRules {
		if len(word) > len(rule.suffix) && hasSuffixFold(word, rule.suffix) {
			return rule.pos
		}
	}
	return Adjective
}

// hasSuffixFold is a case-insensitive HasSuffix for ASCII suffixes.
func hasSuffixFold(word, suffix string) bool {
	if len(word) < len(suffix) {
		return false
	}
	tail := word[len(word)-len(suffix):]
	for i := 0; i < len(suffix); i++ {
		c := tail[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != suffix[i] {
			return false
		}
	}
	return true
}

// inferDifficulty buckets a word by character length: short words are
// beginner material, long words advanced.
func inferDifficulty(word string) Difficulty {
	switch n := utf8.RuneCountInString(word); {
	case n <= 5:
		return Beginner
	case n <= 9:
		return Intermediate
	default:
		return Advanced
	}
}

// buildFallbackEntry synthesizes a WordEntry for a word absent from every
// dictionary. The entry is templated but always valid: non-empty meaning,
// two example sentences, empty (never nil) synonyms.
func buildFallbackEntry(word string) WordEntry {
	pos := inferPartOfSpeech(word)
	return WordEntry{
		Difficulty:   inferDifficulty(word),
		Meaning:      fallbackMeaning(word, pos),
		PartOfSpeech: pos,
		Examples: []string{
			exampleSentence(pos, word),
			secondExampleSentence(pos, word),
		},
		Synonyms: []string{},
	}
}

func fallbackMeaning(word string, pos PartOfSpeech) string {
	return fmt.Sprintf("%q is an English word commonly used as %s.", word, withArticle(pos.Readable()))
}

// withArticle prefixes a role name with its indefinite article.
func withArticle(role string) string {
	switch role[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an " + role
	default:
		return "a " + role
	}
}

// secondExampleSentence is the variant example used alongside
// exampleSentence in fallback entries.
func secondExampleSentence(pos PartOfSpeech, word string) string {
	switch pos {
	case Adjective:
		return fmt.Sprintf("The movie was really %s.", word)
	case Verb:
		return fmt.Sprintf("They %s together on weekends.", word)
	case Noun:
		return fmt.Sprintf("My friend showed me a %s.", word)
	case Adverb:
		return fmt.Sprintf("He finished the task %s.", word)
	default:
		return fmt.Sprintf("The word %s came up in my book.", word)
	}
}
