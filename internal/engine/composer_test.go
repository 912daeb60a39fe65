package engine

import (
	"strings"
	"testing"
)

func TestExampleSentence_TotalAndContainsWord(t *testing.T) {
	roles := []PartOfSpeech{Noun, Verb, Adjective, Adverb, Other}

	for _, pos := range roles {
		got := exampleSentence(pos, "banana")
		if got == "" {
			t.Errorf("%s: empty corrective sentence", pos)
		}
		if !strings.Contains(got, "banana") {
			t.Errorf("%s: corrective sentence %q does not contain the word", pos, got)
		}
	}
}

func TestExampleSentence_Templates(t *testing.T) {
	tests := []struct {
		pos  PartOfSpeech
		want string
	}{
		{Adjective, "I am resilient."},
		{Verb, "I resilient every day."},
		{Noun, "This is a resilient."},
		{Adverb, "She did it resilient."},
		{Other, "I know the word resilient."},
	}

	for _, tc := range tests {
		if got := exampleSentence(tc.pos, "resilient"); got != tc.want {
			t.Errorf("exampleSentence(%s) = %q, want %q", tc.pos, got, tc.want)
		}
	}
}

func TestComposeAbsent(t *testing.T) {
	entry := buildFallbackEntry("banana")
	result := composeAbsent("banana", entry)

	if result.SentenceFeedback.Status != VerdictIncorrect {
		t.Errorf("status = %v, want %v", result.SentenceFeedback.Status, VerdictIncorrect)
	}
	// "banana" matches no suffix rule, so it falls back to adjective.
	if got := result.SentenceFeedback.CorrectedSentence; got != "I am banana." {
		t.Errorf("correctedSentence = %q, want %q", got, "I am banana.")
	}
	if result.SentenceFeedback.Explanation == "" {
		t.Error("explanation is empty")
	}
}

func TestComposeVerdict_Correct(t *testing.T) {
	entry := WordEntry{
		Difficulty:   Intermediate,
		Meaning:      "able to recover quickly",
		PartOfSpeech: Adjective,
		Examples:     []string{},
		Synonyms:     []string{},
	}

	result := composeVerdict("resilient", entry, Adjective, true, true)

	if result.SentenceFeedback.Status != VerdictCorrect {
		t.Errorf("status = %v, want %v", result.SentenceFeedback.Status, VerdictCorrect)
	}
	if result.SentenceFeedback.CorrectedSentence != "" {
		t.Errorf("correctedSentence = %q, want empty", result.SentenceFeedback.CorrectedSentence)
	}
}

func TestComposeVerdict_UnnaturalUsage(t *testing.T) {
	entry := WordEntry{
		Difficulty:   Intermediate,
		Meaning:      "able to recover quickly",
		PartOfSpeech: Adjective,
		Examples:     []string{},
		Synonyms:     []string{},
	}

	result := composeVerdict("resilient", entry, Adjective, true, false)

	if result.SentenceFeedback.Status != VerdictMostlyCorrect {
		t.Errorf("status = %v, want %v", result.SentenceFeedback.Status, VerdictMostlyCorrect)
	}
	if !strings.Contains(result.SentenceFeedback.Explanation, "natural") {
		t.Errorf("explanation %q should mention naturalness", result.SentenceFeedback.Explanation)
	}
	if got := result.SentenceFeedback.CorrectedSentence; got != "I am resilient." {
		t.Errorf("correctedSentence = %q, want %q", got, "I am resilient.")
	}
}

func TestComposeVerdict_RoleMismatch(t *testing.T) {
	entry := WordEntry{
		Difficulty:   Intermediate,
		Meaning:      "able to recover quickly",
		PartOfSpeech: Adjective,
		Examples:     []string{},
		Synonyms:     []string{},
	}

	result := composeVerdict("resilient", entry, Adverb, false, true)

	if result.SentenceFeedback.Status != VerdictMostlyCorrect {
		t.Errorf("status = %v, want %v", result.SentenceFeedback.Status, VerdictMostlyCorrect)
	}
	expl := result.SentenceFeedback.Explanation
	if !strings.Contains(expl, "adverb") || !strings.Contains(expl, "adjective") {
		t.Errorf("explanation %q should name both roles", expl)
	}
	// Correction uses the expected role, not the actual one.
	if got := result.SentenceFeedback.CorrectedSentence; got != "I am resilient." {
		t.Errorf("correctedSentence = %q, want %q", got, "I am resilient.")
	}
}

func TestReadableRoles(t *testing.T) {
	tests := []struct {
		pos  PartOfSpeech
		want string
	}{
		{Noun, "noun"},
		{Verb, "verb"},
		{Adjective, "adjective"},
		{Adverb, "adverb"},
		{Other, "word"},
	}

	for _, tc := range tests {
		if got := tc.pos.Readable(); got != tc.want {
			t.Errorf("%s.Readable() = %q, want %q", tc.pos, got, tc.want)
		}
	}
}
