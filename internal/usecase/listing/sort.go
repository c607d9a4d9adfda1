package listing

import (
	"slices"
	"time"
)

// Apply filters items and returns them in the requested order. The input
// slice is not modified.
func Apply[T any](items []T, item func(T) Item, f Filter, now time.Time) []T {
	out := make([]T, 0, len(items))
	for _, v := range items {
		if f.Matches(item(v), now) {
			out = append(out, v)
		}
	}

	cmp := comparator(f.Sort)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp(item(a), item(b))
	})
	return out
}

func comparator(s Sort) func(a, b Item) int {
	switch s {
	case SortNewest:
		return func(a, b Item) int { return -compareUpdated(a, b) }
	case SortOldest:
		return compareUpdated
	case SortEventLate:
		return func(a, b Item) int { return -compareEvent(a, b) }
	default:
		return compareEvent
	}
}

func compareUpdated(a, b Item) int {
	return updatedAt(a).Compare(updatedAt(b))
}

func updatedAt(it Item) time.Time {
	if it.UpdatedAt.IsZero() {
		return it.CreatedAt
	}
	return it.UpdatedAt
}

// compareEvent orders ascending by event time. Posts without a start time are
// happening now and go ahead of scheduled ones; among themselves they order by
// end time. Scheduled posts order by start time, then end time.
func compareEvent(a, b Item) int {
	switch {
	case a.StartTime == nil && b.StartTime == nil:
		return compareOptional(a.EndTime, b.EndTime)
	case a.StartTime == nil:
		return -1
	case b.StartTime == nil:
		return 1
	}
	if c := a.StartTime.Compare(*b.StartTime); c != 0 {
		return c
	}
	return compareOptional(a.EndTime, b.EndTime)
}

// compareOptional treats a missing time as the zero instant.
func compareOptional(a, b *time.Time) int {
	var ta, tb time.Time
	if a != nil {
		ta = *a
	}
	if b != nil {
		tb = *b
	}
	return ta.Compare(tb)
}
