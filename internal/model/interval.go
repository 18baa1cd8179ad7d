package model

import "time"

// Interval is a closed span [Start, End]. Either endpoint may be absent, and
// End is allowed to precede Start; values are kept exactly as given.
type Interval struct {
	Start *time.Time
	End   *time.Time
}

func NewInterval(start, end *time.Time) Interval {
	return Interval{Start: start, End: end}
}

// Between is NewInterval for callers that have both endpoints.
func Between(start, end time.Time) Interval {
	return Interval{Start: &start, End: &end}
}

func (iv Interval) Complete() bool {
	return iv.Start != nil && iv.End != nil
}

// bounds returns the earlier and later endpoint.
func (iv Interval) bounds() (lo, hi time.Time) {
	lo, hi = *iv.Start, *iv.End
	if hi.Before(lo) {
		lo, hi = hi, lo
	}
	return lo, hi
}

// Overlaps reports whether the two intervals share at least one instant.
// Touching endpoints count. An incomplete interval overlaps nothing.
func (iv Interval) Overlaps(o Interval) bool {
	if !iv.Complete() || !o.Complete() {
		return false
	}
	aLo, aHi := iv.bounds()
	bLo, bHi := o.bounds()
	return !aLo.After(bHi) && !bLo.After(aHi)
}

func (iv Interval) Equal(o Interval) bool {
	return timeEq(iv.Start, o.Start) && timeEq(iv.End, o.End)
}

func timeEq(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
