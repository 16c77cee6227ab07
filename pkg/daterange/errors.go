package daterange

import "errors"

var (
	// ErrUnknownRangeToken means the token is outside the closed set.
	ErrUnknownRangeToken = errors.New("unknown range token")

	// ErrMissingCustomBounds means TokenCustom was resolved without both
	// custom bounds. This propagates: defaulting here would silently
	// discard explicit user input.
	ErrMissingCustomBounds = errors.New("custom range requires both start and end bounds")
)
