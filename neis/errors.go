package neis

import "errors"

// Fetch failures. Meals wraps every error it returns around exactly one of
// these, so callers can branch with errors.Is.
var (
	ErrTransport = errors.New("neis: transport error")
	ErrMalformed = errors.New("neis: malformed response")
	ErrNoMeal    = errors.New("neis: no meal for date")
)
