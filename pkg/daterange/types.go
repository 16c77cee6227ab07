package daterange

import "time"

// Token is a named calendar window drawn from a closed set.
type Token string

const (
	TokenToday     Token = "Today"
	TokenYesterday Token = "Yesterday"
	TokenThisWeek  Token = "This Week"
	TokenLastWeek  Token = "Last Week"
	TokenNextWeek  Token = "Next Week"
	TokenThisMonth Token = "This Month"
	TokenLastMonth Token = "Last Month"
	TokenNextMonth Token = "Next Month"
	TokenThisYear  Token = "This Year"
	TokenAllTime   Token = "All Time"
	TokenCustom    Token = "Custom"
)

// DefaultToken is the window used when a caller supplies an unknown token
// and asks for a fallback instead of an error.
const DefaultToken = TokenThisWeek

// Range is a concrete [Start, End] boundary pair.
// Start <= End always holds for any resolved range. Consumers that filter
// records treat End as an exclusive upper bound.
type Range struct {
	Start time.Time
	End   time.Time
	Label Token
}

// IsZero reports whether the range has no usable bounds.
func (r Range) IsZero() bool {
	return r.Start.IsZero() || r.End.IsZero()
}

// Options carries the optional inputs some tokens require.
type Options struct {
	// CustomStart and CustomEnd are required when resolving TokenCustom.
	CustomStart *time.Time
	CustomEnd   *time.Time

	// ReferenceDueDates, when non-empty, anchors TokenAllTime to the
	// min/max of actual data instead of the fixed sentinel window.
	ReferenceDueDates []time.Time
}

// ValidToken reports whether t belongs to the closed token set.
func ValidToken(t Token) bool {
	switch t {
	case TokenToday, TokenYesterday,
		TokenThisWeek, TokenLastWeek, TokenNextWeek,
		TokenThisMonth, TokenLastMonth, TokenNextMonth,
		TokenThisYear, TokenAllTime, TokenCustom:
		return true
	}
	return false
}
