package engine

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Locate finds the first occurrence of target inside sentence and expands it
// to full word boundaries. The search is case-insensitive; the returned span
// covers the smallest token of letters and apostrophes that contains the
// match. Searching "resilient" inside "resiliently" therefore yields the span
// of the whole token "resiliently", so the caller never mistakes a prefix hit
// for an exact use of the word.
//
// Returns false if target (after trimming whitespace) is empty or absent.
//
// Offsets are byte offsets into the original sentence. Case folding is done
// with strings.ToLower, which preserves byte positions for the ASCII input
// this tutor works with.
func Locate(sentence, target string) (Span, bool) {
	target = strings.TrimSpace(target)
	if target == "" {
		return Span{}, false
	}

	idx := strings.Index(strings.ToLower(sentence), strings.ToLower(target))
	if idx < 0 {
		return Span{}, false
	}

	start := idx
	end := idx + len(target)

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(sentence[:start])
		if !isWordRune(r) {
			break
		}
		start -= size
	}
	for end < len(sentence) {
		r, size := utf8.DecodeRuneInString(sentence[end:])
		if !isWordRune(r) {
			break
		}
		end += size
	}

	return Span{Start: start, End: end}, true
}

// isWordRune reports whether r belongs to a word token. Apostrophes are
// intra-word characters ("don't" is one token).
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || r == '\''
}
