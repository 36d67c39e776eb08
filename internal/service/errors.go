package service

import "errors"

// Common service errors
var (
	ErrMalformedQuestion = errors.New("malformed question payload")
)
