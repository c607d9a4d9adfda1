// Package listing narrows and orders an already-fetched set of posts for the
// feed. It holds no state and does no I/O.
package listing

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidTab          = errors.New("tab must be one of active, ended, all")
	ErrInvalidSort         = errors.New("sort must be one of newest, oldest, event-early, event-late")
	ErrInvalidDate         = errors.New("dates must use the YYYY-MM-DD format")
	ErrInvalidDateRange    = errors.New("date_from must not be after date_to")
	ErrInvalidMinAvailable = errors.New("min_available must be a non-negative integer")
)

type Tab string

const (
	TabActive Tab = "active"
	TabEnded  Tab = "ended"
	TabAll    Tab = "all"
)

type Sort string

const (
	SortNewest     Sort = "newest"
	SortOldest     Sort = "oldest"
	SortEventEarly Sort = "event-early"
	SortEventLate  Sort = "event-late"
)

const dateLayout = "2006-01-02"

// Item is the projection of a post the filters and sorts look at.
type Item struct {
	Title        string
	Description  string
	Location     string
	StartTime    *time.Time
	EndTime      *time.Time
	QuantityLeft int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Filter struct {
	Tab    Tab
	Search string
	// DateFrom and DateTo are inclusive bounds on the event time.
	DateFrom     *time.Time
	DateTo       *time.Time
	Location     string
	MinAvailable int
	Sort         Sort
}

// RawFilter is the unparsed query string form.
type RawFilter struct {
	Tab          string
	Search       string
	DateFrom     string
	DateTo       string
	Location     string
	MinAvailable string
	Sort         string
}

func DefaultFilter() Filter {
	return Filter{Tab: TabActive, Sort: SortEventEarly}
}

// ParseFilter validates raw query values. Empty values keep the defaults.
// Calendar dates are read as UTC days: date_from starts at 00:00:00.000 and
// date_to ends at 23:59:59.999.
func ParseFilter(raw RawFilter) (Filter, error) {
	f := DefaultFilter()

	if v := strings.TrimSpace(raw.Tab); v != "" {
		switch Tab(v) {
		case TabActive, TabEnded, TabAll:
			f.Tab = Tab(v)
		default:
			return Filter{}, ErrInvalidTab
		}
	}

	if v := strings.TrimSpace(raw.Sort); v != "" {
		switch Sort(v) {
		case SortNewest, SortOldest, SortEventEarly, SortEventLate:
			f.Sort = Sort(v)
		default:
			return Filter{}, ErrInvalidSort
		}
	}

	f.Search = strings.TrimSpace(raw.Search)
	f.Location = strings.TrimSpace(raw.Location)

	if v := strings.TrimSpace(raw.DateFrom); v != "" {
		day, err := time.ParseInLocation(dateLayout, v, time.UTC)
		if err != nil {
			return Filter{}, ErrInvalidDate
		}
		f.DateFrom = &day
	}
	if v := strings.TrimSpace(raw.DateTo); v != "" {
		day, err := time.ParseInLocation(dateLayout, v, time.UTC)
		if err != nil {
			return Filter{}, ErrInvalidDate
		}
		end := day.Add(24*time.Hour - time.Millisecond)
		f.DateTo = &end
	}
	if f.DateFrom != nil && f.DateTo != nil && f.DateFrom.After(*f.DateTo) {
		return Filter{}, ErrInvalidDateRange
	}

	if v := strings.TrimSpace(raw.MinAvailable); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Filter{}, ErrInvalidMinAvailable
		}
		f.MinAvailable = n
	}

	return f, nil
}

// Matches reports whether it passes every predicate in f at time now.
func (f Filter) Matches(it Item, now time.Time) bool {
	active := it.EndTime == nil || it.EndTime.After(now)
	switch f.Tab {
	case TabActive:
		if !active {
			return false
		}
	case TabEnded:
		if active {
			return false
		}
	}

	if f.Search != "" {
		s := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(it.Title), s) &&
			!strings.Contains(strings.ToLower(it.Description), s) {
			return false
		}
	}

	eventTime := it.CreatedAt
	if it.StartTime != nil {
		eventTime = *it.StartTime
	}
	if f.DateFrom != nil && eventTime.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && eventTime.After(*f.DateTo) {
		return false
	}

	if f.Location != "" && !strings.Contains(strings.ToLower(it.Location), strings.ToLower(f.Location)) {
		return false
	}

	if f.MinAvailable > 0 && it.QuantityLeft < f.MinAvailable {
		return false
	}

	return true
}
