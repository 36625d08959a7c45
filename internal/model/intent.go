package model

// IntentKind classifies the purpose of a free-text chatbot input. Exactly
// one kind is produced per input; detection order is part of the contract
// (greeting before identity before thanks/farewell/help, query as default).
type IntentKind string

const (
	IntentGreeting IntentKind = "greeting"
	IntentIdentity IntentKind = "identity"
	IntentThanks   IntentKind = "thanks"
	IntentFarewell IntentKind = "farewell"
	IntentHelp     IntentKind = "help"
	IntentQuery    IntentKind = "query"
)

// Intent is the classified result of interpreting one chatbot message.
type Intent struct {
	Kind IntentKind `json:"kind"`

	// Name is the captured user name, attached to greeting intents when an
	// introduction phrase or person entity was present.
	Name string `json:"name,omitempty"`

	// Spec is the filter derived from extracted entities. Set only for
	// query intents with at least one entity.
	Spec *FilterSpec `json:"spec,omitempty"`

	// KeywordScan marks the query fallback mode: no entity was extracted,
	// so matching scans every string field of each record instead of
	// applying an (empty) filter.
	KeywordScan bool `json:"keyword_scan,omitempty"`

	// Echo fields for phrasing the bot reply back to the user.
	Location string   `json:"location,omitempty"`
	Bedrooms *int     `json:"bedrooms,omitempty"`
	Budget   *float64 `json:"budget,omitempty"`
}
