package engine

// PartOfSpeech is the grammatical role of a word. It is a closed set —
// the classifier and composer switch exhaustively over it, so a new role
// forces every call site to be revisited.
type PartOfSpeech string

const (
	Noun      PartOfSpeech = "noun"
	Verb      PartOfSpeech = "verb"
	Adjective PartOfSpeech = "adjective"
	Adverb    PartOfSpeech = "adverb"
	Other     PartOfSpeech = "other"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case Noun, Verb, Adjective, Adverb, Other:
		return true
	}
	return false
}

// Readable returns the name used in learner-facing explanations.
// Other reads as "word" — telling a learner they used something
// "as an other" helps nobody.
func (p PartOfSpeech) Readable() string {
	if p == Other {
		return "word"
	}
	return string(p)
}

// Difficulty buckets a word by how advanced it is.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

// Verdict classifies how well the learner used the target word.
type Verdict string

const (
	VerdictCorrect       Verdict = "correct"
	VerdictMostlyCorrect Verdict = "mostly_correct"
	VerdictIncorrect     Verdict = "incorrect"
)

func (v Verdict) String() string { return string(v) }

// Span identifies one word occurrence inside a sentence as byte offsets.
// The range [Start, End) covers a contiguous run of letters and apostrophes.
type Span struct {
	Start int
	End   int
}

// WordEntry is the descriptive metadata for a single word. Entries are
// immutable value types: created by one of the resolver strategies, consumed
// once per evaluation, never cached across calls.
type WordEntry struct {
	// Difficulty is the learner-facing difficulty bucket.
	Difficulty Difficulty

	// Meaning is a short definition. Never empty in a valid entry.
	Meaning string

	// PartOfSpeech is the role the word is expected to play in a sentence.
	PartOfSpeech PartOfSpeech

	// Examples holds example sentences. May be empty, never nil.
	Examples []string

	// Synonyms holds synonym words. May be empty, never nil.
	Synonyms []string
}

// WordAnalysis is the word-facing half of an evaluation result. It is the
// resolved WordEntry flattened for output, minus the part of speech (that is
// an internal signal, not learner feedback).
//
// JSON fields are ordered alphabetically so encoded output has sorted keys.
type WordAnalysis struct {
	Difficulty Difficulty `json:"difficulty"`
	Examples   []string   `json:"examples"`
	Meaning    string     `json:"meaning"`
	Synonyms   []string   `json:"synonyms"`
}

// SentenceFeedback is the sentence-facing half of an evaluation result.
type SentenceFeedback struct {
	// CorrectedSentence is a generated example of proper usage. Empty exactly
	// when no correction is needed (status correct) or none can be built
	// (the empty-word case).
	CorrectedSentence string `json:"correctedSentence"`

	// Explanation tells the learner why they got this verdict.
	Explanation string `json:"explanation"`

	Status Verdict `json:"status"`
}

// EvaluationResult is the sole output of the engine. It is fully determined
// by the inputs and the injected collaborators — no hidden state.
type EvaluationResult struct {
	SentenceFeedback SentenceFeedback `json:"sentenceFeedback"`
	WordAnalysis     WordAnalysis     `json:"wordAnalysis"`
}
