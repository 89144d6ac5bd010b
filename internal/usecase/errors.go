package usecase

import "errors"

var (
	ErrInvalidInput               = errors.New("invalid input")
	ErrMissingRequiredAlternative = errors.New("missing required alternative")
	ErrUpstreamUnavailable        = errors.New("upstream unavailable")
	ErrMalformedResponse          = errors.New("malformed upstream response")
	ErrNotFound                   = errors.New("resource not found")
)
