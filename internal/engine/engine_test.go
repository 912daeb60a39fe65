package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func testEngine() *Engine {
	local := mapDictionary{
		"resilient": {
			Difficulty:   Intermediate,
			Meaning:      "able to recover quickly from difficulties",
			PartOfSpeech: Adjective,
			Examples:     []string{"She stayed resilient after the setback."},
			Synonyms:     []string{"tough", "hardy"},
		},
	}
	return New(Options{Local: local})
}

func TestEvaluate_CorrectUsage(t *testing.T) {
	e := testEngine()

	result := e.Evaluate(context.Background(), "resilient", "I am resilient when I feel sad.", false)

	if result.SentenceFeedback.Status != VerdictCorrect {
		t.Errorf("status = %v, want %v", result.SentenceFeedback.Status, VerdictCorrect)
	}
	if result.SentenceFeedback.CorrectedSentence != "" {
		t.Errorf("correctedSentence = %q, want empty", result.SentenceFeedback.CorrectedSentence)
	}
	if result.WordAnalysis.Meaning != "able to recover quickly from difficulties" {
		t.Errorf("meaning = %q, want the curated definition", result.WordAnalysis.Meaning)
	}
}

func TestEvaluate_SentenceInitialIsMostlyCorrect(t *testing.T) {
	e := testEngine()

	result := e.Evaluate(context.Background(), "resilient", "Resilient is good.", false)

	if result.SentenceFeedback.Status != VerdictMostlyCorrect {
		t.Errorf("status = %v, want %v", result.SentenceFeedback.Status, VerdictMostlyCorrect)
	}
	if got := result.SentenceFeedback.CorrectedSentence; got != "I am resilient." {
		t.Errorf("correctedSentence = %q, want %q", got, "I am resilient.")
	}
}

func TestEvaluate_WordAbsent(t *testing.T) {
	e := testEngine()

	result := e.Evaluate(context.Background(), "banana", "I like apples a lot.", false)

	if result.SentenceFeedback.Status != VerdictIncorrect {
		t.Errorf("status = %v, want %v", result.SentenceFeedback.Status, VerdictIncorrect)
	}
	// "banana" has no suffix match, so the heuristic role is adjective.
	if got := result.SentenceFeedback.CorrectedSentence; got != "I am banana." {
		t.Errorf("correctedSentence = %q, want %q", got, "I am banana.")
	}
}

func TestEvaluate_EmptyWord(t *testing.T) {
	e := testEngine()

	for _, word := range []string{"", "   ", "\t"} {
		result := e.Evaluate(context.Background(), word, "anything", false)

		if result.SentenceFeedback.Status != VerdictIncorrect {
			t.Errorf("%q: status = %v, want %v", word, result.SentenceFeedback.Status, VerdictIncorrect)
		}
		if result.WordAnalysis.Meaning != "No word provided." {
			t.Errorf("%q: meaning = %q, want %q", word, result.WordAnalysis.Meaning, "No word provided.")
		}
		if len(result.WordAnalysis.Examples) != 0 || len(result.WordAnalysis.Synonyms) != 0 {
			t.Errorf("%q: examples/synonyms not empty", word)
		}
		if result.SentenceFeedback.CorrectedSentence != "" {
			t.Errorf("%q: correctedSentence = %q, want empty", word, result.SentenceFeedback.CorrectedSentence)
		}
	}
}

func TestEvaluate_TaggerOverridesRole(t *testing.T) {
	local := mapDictionary{
		"resilient": {
			Difficulty:   Intermediate,
			Meaning:      "able to recover quickly",
			PartOfSpeech: Adjective,
			Examples:     []string{},
			Synonyms:     []string{},
		},
	}
	e := New(Options{Local: local, Tagger: MockTagger{POS: Adverb}})

	result := e.Evaluate(context.Background(), "resilient", "I am resilient today.", false)

	// Tagger says adverb, entry expects adjective: role mismatch.
	if result.SentenceFeedback.Status != VerdictMostlyCorrect {
		t.Errorf("status = %v, want %v", result.SentenceFeedback.Status, VerdictMostlyCorrect)
	}
}

func TestEvaluate_TaggerAbstainsFallsBackToExpected(t *testing.T) {
	local := mapDictionary{
		"resilient": {
			Difficulty:   Intermediate,
			Meaning:      "able to recover quickly",
			PartOfSpeech: Adjective,
			Examples:     []string{},
			Synonyms:     []string{},
		},
	}
	e := New(Options{Local: local, Tagger: MockTagger{Abstain: true}})

	result := e.Evaluate(context.Background(), "resilient", "I am resilient today.", false)

	if result.SentenceFeedback.Status != VerdictCorrect {
		t.Errorf("status = %v, want %v", result.SentenceFeedback.Status, VerdictCorrect)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	e := testEngine()
	ctx := context.Background()

	first := e.Evaluate(ctx, "resilient", "I am resilient when I feel sad.", false)
	second := e.Evaluate(ctx, "resilient", "I am resilient when I feel sad.", false)

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal first: %v", err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal second: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("results differ:\n%s\n%s", a, b)
	}
}

func TestEvaluate_OutputShape(t *testing.T) {
	e := testEngine()

	result := e.Evaluate(context.Background(), "resilient", "I am resilient.", false)

	raw, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"wordAnalysis", "sentenceFeedback"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("output missing top-level key %q", key)
		}
	}

	var analysis map[string]json.RawMessage
	if err := json.Unmarshal(decoded["wordAnalysis"], &analysis); err != nil {
		t.Fatalf("unmarshal wordAnalysis: %v", err)
	}
	for _, key := range []string{"difficulty", "meaning", "examples", "synonyms"} {
		if _, ok := analysis[key]; !ok {
			t.Errorf("wordAnalysis missing key %q", key)
		}
	}

	var feedback map[string]json.RawMessage
	if err := json.Unmarshal(decoded["sentenceFeedback"], &feedback); err != nil {
		t.Fatalf("unmarshal sentenceFeedback: %v", err)
	}
	for _, key := range []string{"status", "explanation", "correctedSentence"} {
		if _, ok := feedback[key]; !ok {
			t.Errorf("sentenceFeedback missing key %q", key)
		}
	}
}

func TestEvaluate_ExpandedTokenIsNotAnExactUse(t *testing.T) {
	e := testEngine()

	// "resilient" inside "resiliently": the located token is the adverb form.
	// With no tagger, role falls back to the expected adjective, but the
	// left-context rule still judges the expanded token's position.
	result := e.Evaluate(context.Background(), "resilient", "I am resiliently confident.", false)

	if result.SentenceFeedback.Status == VerdictIncorrect {
		t.Errorf("status = %v, the word was present", result.SentenceFeedback.Status)
	}
}
