package engine

import "fmt"

// exampleSentence generates a simple corrective sentence for word in the
// given role. Total: every role produces a sentence containing the word.
func exampleSentence(pos PartOfSpeech, word string) string {
	switch pos {
	case Adjective:
		return fmt.Sprintf("I am %s.", word)
	case Verb:
		return fmt.Sprintf("I %s every day.", word)
	case Noun:
		return fmt.Sprintf("This is a %s.", word)
	case Adverb:
		return fmt.Sprintf("She did it %s.", word)
	default:
		return fmt.Sprintf("I know the word %s.", word)
	}
}

// composeAbsent builds the result for a sentence that never uses the word.
func composeAbsent(word string, entry WordEntry) EvaluationResult {
	return EvaluationResult{
		WordAnalysis: analysisFrom(entry),
		SentenceFeedback: SentenceFeedback{
			Status:            VerdictIncorrect,
			Explanation:       fmt.Sprintf("The word %q does not appear in your sentence.", word),
			CorrectedSentence: exampleSentence(entry.PartOfSpeech, word),
		},
	}
}

// composeVerdict builds the result for a sentence that contains the word,
// from the classifier's role-match and naturalness signals. Corrections are
// always templated from the expected role — the learner should see the word
// used the way the dictionary entry intends, not the way they misused it.
func composeVerdict(word string, entry WordEntry, actual PartOfSpeech, roleMatch, natural bool) EvaluationResult {
	analysis := analysisFrom(entry)

	if roleMatch && natural {
		return EvaluationResult{
			WordAnalysis: analysis,
			SentenceFeedback: SentenceFeedback{
				Status:      VerdictCorrect,
				Explanation: "Great job! You used the word correctly and naturally.",
			},
		}
	}

	explanation := ""
	if roleMatch {
		explanation = "Close! You used the word in the right role, but the phrasing could sound more natural."
	} else {
		explanation = fmt.Sprintf("You used %q as %s, but it works best as %s.",
			word, withArticle(actual.Readable()), withArticle(entry.PartOfSpeech.Readable()))
	}

	return EvaluationResult{
		WordAnalysis: analysis,
		SentenceFeedback: SentenceFeedback{
			Status:            VerdictMostlyCorrect,
			Explanation:       explanation,
			CorrectedSentence: exampleSentence(entry.PartOfSpeech, word),
		},
	}
}

// composeEmptyWord is the fixed result for an empty or whitespace-only word.
// It is the one case where an incorrect verdict carries no correction —
// there is no word to build a sentence around.
func composeEmptyWord() EvaluationResult {
	return EvaluationResult{
		WordAnalysis: WordAnalysis{
			Difficulty: Beginner,
			Examples:   []string{},
			Meaning:    "No word provided.",
			Synonyms:   []string{},
		},
		SentenceFeedback: SentenceFeedback{
			Status:      VerdictIncorrect,
			Explanation: "Please enter a word to practice.",
		},
	}
}

// analysisFrom flattens a WordEntry into the learner-facing analysis record.
func analysisFrom(entry WordEntry) WordAnalysis {
	return WordAnalysis{
		Difficulty: entry.Difficulty,
		Examples:   entry.Examples,
		Meaning:    entry.Meaning,
		Synonyms:   entry.Synonyms,
	}
}
