// Package nlp classifies chatbot messages into intents and extracts the
// entities (budget, place, bedroom count, person name) that feed the shared
// filter engine.
package nlp

// EntityExtractor is the capability interface for pulling typed values out
// of unstructured text. Implementations only need approximate entity spans,
// not full parsing; a rule-based matcher is sufficient. A miss is reported
// through the bool, never through an error.
type EntityExtractor interface {
	// Money returns a monetary amount mentioned in the text, interpreted
	// by callers as an upper price bound.
	Money(text string) (float64, bool)

	// Place returns a place name mentioned in the text.
	Place(text string) (string, bool)

	// CardinalNoun returns a cardinal number adjacent to a noun, such as
	// the 3 in "3 bedroom apartment". Amounts already claimed as money do
	// not count.
	CardinalNoun(text string) (int, bool)

	// Person returns a person name, either after an introduction phrase
	// ("my name is X") or as a detected person entity.
	Person(text string) (string, bool)
}
