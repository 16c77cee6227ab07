package insight

import "errors"

// Domain-specific errors for the insight package.
var (
	ErrUpstreamUnavailable = errors.New("upstream task source unavailable")
	ErrEmptyToken          = errors.New("range token is empty")
)
