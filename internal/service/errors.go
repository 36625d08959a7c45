package service

import "errors"

// Sentinel errors translated by the handlers into HTTP statuses with the
// stable {success:false, message} envelope.
var (
	ErrNotFound          = errors.New("Property not found")
	ErrInvalidSuggestion = errors.New("Invalid suggestion. Only predefined suggestions are allowed.")
)
