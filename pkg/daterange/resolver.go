package daterange

import (
	"errors"
	"fmt"
	"time"
)

// Weeks start on Monday, regardless of locale. Every window this package
// produces uses this convention.
const weekStartDay = time.Monday

// Sentinel bounds for All Time without reference data: wide enough to act
// as an accept-everything filter, not a real calendar concept.
const (
	sentinelStartYear = 2000
	sentinelEndYear   = 2099
)

// Resolver translates range tokens into concrete boundaries.
// All floor/ceiling math happens in the resolver's timezone.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// Location returns the timezone all resolution math happens in.
func (r *Resolver) Location() *time.Location {
	return r.location
}

// Resolve translates token into a concrete Range anchored at now.
// now is injected so resolution stays deterministic; the system clock is
// never read here.
func (r *Resolver) Resolve(token Token, now time.Time, opt Options) (Range, error) {
	now = now.In(r.location)

	switch token {
	case TokenToday:
		return r.dayRange(token, now), nil
	case TokenYesterday:
		return r.dayRange(token, now.AddDate(0, 0, -1)), nil
	case TokenThisWeek:
		return r.weekRange(token, now), nil
	case TokenLastWeek:
		return r.weekRange(token, now.AddDate(0, 0, -7)), nil
	case TokenNextWeek:
		return r.weekRange(token, now.AddDate(0, 0, 7)), nil
	case TokenThisMonth:
		return r.monthRange(token, now), nil
	case TokenLastMonth:
		return r.monthRange(token, now.AddDate(0, -1, 0)), nil
	case TokenNextMonth:
		return r.monthRange(token, now.AddDate(0, 1, 0)), nil
	case TokenThisYear:
		return r.yearRange(token, now), nil
	case TokenAllTime:
		return r.allTimeRange(opt.ReferenceDueDates), nil
	case TokenCustom:
		return r.customRange(opt)
	}

	return Range{}, fmt.Errorf("%w: %q", ErrUnknownRangeToken, token)
}

// ResolveOrDefault behaves like Resolve, except an unknown token falls back
// to DefaultToken. The sentinel error is still returned alongside the
// fallback range so callers can log the substitution; ErrMissingCustomBounds
// propagates with a zero range as usual.
func (r *Resolver) ResolveOrDefault(token Token, now time.Time, opt Options) (Range, error) {
	rng, err := r.Resolve(token, now, opt)
	if !errors.Is(err, ErrUnknownRangeToken) {
		return rng, err
	}
	fallback, _ := r.Resolve(DefaultToken, now, Options{})
	return fallback, err
}

func (r *Resolver) dayRange(token Token, t time.Time) Range {
	start := r.startOfDay(t)
	return Range{Start: start, End: r.endOfDay(start), Label: token}
}

func (r *Resolver) weekRange(token Token, t time.Time) Range {
	t = t.In(r.location)
	offset := (int(t.Weekday()) - int(weekStartDay) + 7) % 7
	start := r.startOfDay(t.AddDate(0, 0, -offset))
	return Range{Start: start, End: r.endOfDay(start.AddDate(0, 0, 6)), Label: token}
}

func (r *Resolver) monthRange(token Token, t time.Time) Range {
	t = t.In(r.location)
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, r.location)
	return Range{Start: start, End: r.endOfDay(start.AddDate(0, 1, -1)), Label: token}
}

func (r *Resolver) yearRange(token Token, t time.Time) Range {
	t = t.In(r.location)
	start := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, r.location)
	return Range{Start: start, End: r.endOfDay(start.AddDate(1, 0, -1)), Label: token}
}

// allTimeRange derives bounds from reference data when available, and the
// fixed sentinel window otherwise. An empty reference collection is not an
// error; it just means nothing to anchor on.
func (r *Resolver) allTimeRange(refs []time.Time) Range {
	if len(refs) == 0 {
		return Range{
			Start: time.Date(sentinelStartYear, time.January, 1, 0, 0, 0, 0, r.location),
			End:   r.endOfDay(time.Date(sentinelEndYear, time.December, 31, 0, 0, 0, 0, r.location)),
			Label: TokenAllTime,
		}
	}

	min, max := refs[0], refs[0]
	for _, t := range refs[1:] {
		if t.Before(min) {
			min = t
		}
		if t.After(max) {
			max = t
		}
	}

	return Range{
		Start: r.startOfDay(min),
		End:   r.endOfDay(max),
		Label: TokenAllTime,
	}
}

// customRange normalizes user-picked bounds to whole days. Both bounds are
// required; absence is user input to fix, not a condition to paper over.
func (r *Resolver) customRange(opt Options) (Range, error) {
	if opt.CustomStart == nil || opt.CustomEnd == nil {
		return Range{}, ErrMissingCustomBounds
	}

	start := r.startOfDay(*opt.CustomStart)
	end := r.endOfDay(*opt.CustomEnd)
	if end.Before(start) {
		start, end = r.startOfDay(*opt.CustomEnd), r.endOfDay(*opt.CustomStart)
	}

	return Range{Start: start, End: end, Label: TokenCustom}, nil
}

// SameDay reports whether a and b fall on the same calendar day in the
// resolver's timezone. Calendar-day equality, not an elapsed-hours window.
func (r *Resolver) SameDay(a, b time.Time) bool {
	a, b = a.In(r.location), b.In(r.location)
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// startOfDay returns midnight at the start of the given day in the
// resolver's timezone.
func (r *Resolver) startOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}

// endOfDay returns the last instant of the given day: the following
// midnight minus one nanosecond.
func (r *Resolver) endOfDay(t time.Time) time.Time {
	return r.startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
