package nlp

import (
	"errors"
	"strings"

	"github.com/Neeraj-Gupta12/PropBot/internal/model"
)

// ErrInvalidInput is returned for empty or blank message text.
var ErrInvalidInput = errors.New("message is required")

// Fixed phrase sets. Single words are matched at word boundaries so "this"
// is not a greeting.
var (
	greetingPhrases = []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening"}
	identityPhrases = []string{"who are you"}
	thanksPhrases   = []string{"thank you", "thanks"}
	farewellPhrases = []string{"bye", "goodbye"}
	helpPhrases     = []string{"help"}
)

// Interpreter turns free text into exactly one Intent. It is stateless:
// every call is independent and there is no conversation memory.
type Interpreter struct {
	extractor EntityExtractor
}

// NewInterpreter creates an interpreter over the given entity extractor.
func NewInterpreter(extractor EntityExtractor) *Interpreter {
	return &Interpreter{extractor: extractor}
}

// Interpret classifies the message. Detection order is part of the contract:
// greeting, identity, thanks, farewell, help, then query. Entity extraction
// misses are treated as "entity absent", never as a failure; only blank
// input is an error.
func (i *Interpreter) Interpret(text string) (*model.Intent, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrInvalidInput
	}

	lower := strings.ToLower(text)

	if containsAny(lower, greetingPhrases) {
		intent := &model.Intent{Kind: model.IntentGreeting}
		if name, ok := i.extractor.Person(text); ok {
			intent.Name = name
		}
		return intent, nil
	}
	if containsAny(lower, identityPhrases) {
		return &model.Intent{Kind: model.IntentIdentity}, nil
	}
	if containsAny(lower, thanksPhrases) {
		return &model.Intent{Kind: model.IntentThanks}, nil
	}
	if containsAny(lower, farewellPhrases) {
		return &model.Intent{Kind: model.IntentFarewell}, nil
	}
	if containsAny(lower, helpPhrases) {
		return &model.Intent{Kind: model.IntentHelp}, nil
	}

	return i.queryIntent(text), nil
}

// queryIntent builds a filter from whatever entities the extractor found.
// Budget becomes an upper price bound, a place becomes a location
// constraint, and a cardinal-next-to-noun becomes an exact bedroom count
// (not a minimum; the direct filter path differs on purpose). With no
// entity at all the intent switches to keyword-scan mode.
func (i *Interpreter) queryIntent(text string) *model.Intent {
	intent := &model.Intent{Kind: model.IntentQuery}

	budget, hasBudget := i.extractor.Money(text)
	place, hasPlace := i.extractor.Place(text)
	bedrooms, hasBedrooms := i.extractor.CardinalNoun(text)

	if !hasBudget && !hasPlace && !hasBedrooms {
		intent.KeywordScan = true
		return intent
	}

	spec := &model.FilterSpec{}
	if hasBudget {
		spec.PriceMax = &budget
		intent.Budget = &budget
	}
	if hasPlace {
		spec.Locations = []string{place}
		intent.Location = place
	}
	if hasBedrooms {
		spec.Bedrooms = &bedrooms
		spec.BedroomsExact = true
		intent.Bedrooms = &bedrooms
	}
	intent.Spec = spec
	return intent
}

func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if phraseIndex(lower, p) >= 0 {
			return true
		}
	}
	return false
}
