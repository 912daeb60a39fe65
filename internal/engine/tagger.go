package engine

// Tagger classifies the grammatical role of a token in context. It is an
// external collaborator: implementations may be backed by anything from a
// rule table to a full NLP pipeline. Returning false means the tagger cannot
// classify the token; the engine then falls back to the expected role.
//
// Implementations must be stateless and safe for concurrent use.
type Tagger interface {
	// Tag returns the part of speech of the token at span within sentence.
	Tag(sentence string, span Span) (PartOfSpeech, bool)
}

// classifyToken asks the tagger for the role of the located token and
// substitutes expected when the tagger abstains, guaranteeing downstream
// logic a non-absent classification.
func classifyToken(t Tagger, sentence string, span Span, expected PartOfSpeech) PartOfSpeech {
	if t == nil {
		return expected
	}
	pos, ok := t.Tag(sentence, span)
	if !ok || !pos.IsValid() {
		return expected
	}
	return pos
}
