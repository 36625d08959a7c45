package model

// PropertiesResponse is the envelope for every endpoint returning a list of
// properties.
type PropertiesResponse struct {
	Success    bool       `json:"success"`
	Count      int        `json:"count"`
	TotalPages int        `json:"total_pages,omitempty"`
	Properties []Property `json:"properties"`
}

// PropertyResponse is the envelope for single-record lookups.
type PropertyResponse struct {
	Success  bool     `json:"success"`
	Property Property `json:"property"`
}

// ErrorResponse is the stable error shape: no partial or ambiguous success.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ChatRequest is the chatbot request body.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse pairs the human-readable bot message with the matched
// properties (possibly empty, never null).
type ChatResponse struct {
	Message    string     `json:"message"`
	Properties []Property `json:"properties"`
}

// SuggestionsResponse lists the allow-listed canned suggestions.
type SuggestionsResponse struct {
	Success     bool     `json:"success"`
	Suggestions []string `json:"suggestions"`
}

// ReloadResponse reports the outcome of a catalog rebuild request.
type ReloadResponse struct {
	Success bool `json:"success"`
	Rebuilt bool `json:"rebuilt"`
	Count   int  `json:"count"`
}
