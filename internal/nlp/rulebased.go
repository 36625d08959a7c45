package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

// RuleBased is a deterministic EntityExtractor built from regular
// expressions, a small word-number table and an optional place gazetteer.
type RuleBased struct {
	places []string // canonical casing, matched case-insensitively
}

// NewRuleBased creates a rule-based extractor. The optional places seed the
// gazetteer (typically the distinct locations of the current catalog);
// capitalized tokens after a locative preposition are recognized either way.
func NewRuleBased(places ...string) *RuleBased {
	rb := &RuleBased{places: make([]string, 0, len(places))}
	seen := make(map[string]struct{}, len(places))
	for _, p := range places {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[strings.ToLower(p)]; ok {
			continue
		}
		seen[strings.ToLower(p)] = struct{}{}
		rb.places = append(rb.places, p)
	}
	return rb
}

var (
	// $1,500,000 / $500k / $1.2m
	dollarAmountRe = regexp.MustCompile(`(?i)\$\s*([0-9][0-9,]*(?:\.[0-9]+)?)\s*([km])?\b`)
	// under 500000 / below 500k / budget of 1m
	cuedAmountRe = regexp.MustCompile(`(?i)\b(?:under|below|within|less than|up to|max(?:imum)?|budget(?: of| is)?)\s+\$?\s*([0-9][0-9,]*(?:\.[0-9]+)?)\s*([km])?\b`)

	prepositions = map[string]bool{"in": true, "at": true, "near": true, "around": true}

	introPhrases = []string{"my name is", "i am", "i'm", "call me"}

	wordNumbers = map[string]int{
		"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
		"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	}

	capitalizedRe = regexp.MustCompile(`^[A-Z][a-z]+$`)
)

// Money extracts a monetary amount: a $-prefixed number anywhere, or a bare
// number following a budget cue word.
func (rb *RuleBased) Money(text string) (float64, bool) {
	amount, _, ok := rb.money(text)
	return amount, ok
}

// money also returns the matched span so CardinalNoun can ignore it.
func (rb *RuleBased) money(text string) (float64, []int, bool) {
	for _, re := range []*regexp.Regexp{dollarAmountRe, cuedAmountRe} {
		loc := re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		raw := strings.ReplaceAll(text[loc[2]:loc[3]], ",", "")
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		if loc[4] >= 0 {
			switch strings.ToLower(text[loc[4]:loc[5]]) {
			case "k":
				amount *= 1_000
			case "m":
				amount *= 1_000_000
			}
		}
		return amount, loc[0:2], true
	}
	return 0, nil, false
}

// Place matches the gazetteer first (longest entry wins), then falls back to
// a run of capitalized tokens after a locative preposition.
func (rb *RuleBased) Place(text string) (string, bool) {
	lower := strings.ToLower(text)

	best := ""
	for _, p := range rb.places {
		if strings.Contains(lower, strings.ToLower(p)) && len(p) > len(best) {
			best = p
		}
	}
	if best != "" {
		return best, true
	}

	tokens := tokenize(text)
	for i, tok := range tokens {
		if !prepositions[strings.ToLower(tok)] {
			continue
		}
		var run []string
		for j := i + 1; j < len(tokens) && capitalizedRe.MatchString(tokens[j]); j++ {
			run = append(run, tokens[j])
		}
		if len(run) > 0 {
			return strings.Join(run, " "), true
		}
	}
	return "", false
}

// CardinalNoun finds a number (digit or word) immediately followed by a noun
// token, skipping any span already consumed by money extraction.
func (rb *RuleBased) CardinalNoun(text string) (int, bool) {
	if _, span, ok := rb.money(text); ok {
		text = text[:span[0]] + strings.Repeat(" ", span[1]-span[0]) + text[span[1]:]
	}

	tokens := tokenize(text)
	for i, tok := range tokens {
		n, ok := parseCardinal(tok)
		if !ok || i+1 >= len(tokens) {
			continue
		}
		if isNounLike(tokens[i+1]) {
			return n, true
		}
	}
	return 0, false
}

// Person captures the token after an introduction phrase, else the first
// capitalized token that is neither the leading token nor part of the
// detected place.
func (rb *RuleBased) Person(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, phrase := range introPhrases {
		idx := phraseIndex(lower, phrase)
		if idx < 0 {
			continue
		}
		rest := tokenize(text[idx+len(phrase):])
		if len(rest) > 0 {
			return rest[0], true
		}
	}

	placeTokens := map[string]bool{}
	if place, ok := rb.Place(text); ok {
		for _, t := range tokenize(place) {
			placeTokens[strings.ToLower(t)] = true
		}
	}
	tokens := tokenize(text)
	for i, tok := range tokens {
		if i == 0 || placeTokens[strings.ToLower(tok)] {
			continue
		}
		if capitalizedRe.MatchString(tok) {
			return tok, true
		}
	}
	return "", false
}

// tokenize splits on whitespace and punctuation, keeping letters, digits and
// decimal points together.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return false
		case r == '.' || r == '\'':
			return false
		default:
			return true
		}
	})
}

func parseCardinal(tok string) (int, bool) {
	if n, ok := wordNumbers[strings.ToLower(tok)]; ok {
		return n, true
	}
	n, err := strconv.Atoi(strings.TrimSuffix(tok, "."))
	if err != nil {
		return 0, false
	}
	return n, true
}

// isNounLike accepts an alphabetic token that is not a budget cue, so "3
// bedroom" counts but "3 under" does not.
func isNounLike(tok string) bool {
	tok = strings.ToLower(strings.TrimSuffix(tok, "."))
	if len(tok) < 2 {
		return false
	}
	switch tok {
	case "under", "below", "within", "less", "max", "maximum", "up":
		return false
	}
	for _, r := range tok {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// phraseIndex finds phrase in text at word boundaries.
func phraseIndex(text, phrase string) int {
	for from := 0; ; {
		idx := strings.Index(text[from:], phrase)
		if idx < 0 {
			return -1
		}
		idx += from
		if boundedAt(text, idx, len(phrase)) {
			return idx
		}
		from = idx + 1
	}
}

func boundedAt(text string, idx, length int) bool {
	if idx > 0 && isWordChar(text[idx-1]) {
		return false
	}
	end := idx + length
	if end < len(text) && isWordChar(text[end]) {
		return false
	}
	return true
}

func isWordChar(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
