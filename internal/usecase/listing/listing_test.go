//go:build unit

package listing_test

import (
	"testing"
	"time"

	"spark-bytes/internal/usecase/listing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)

type entry struct {
	name string
	item listing.Item
}

func itemOf(e entry) listing.Item { return e.item }

func at(d time.Duration) *time.Time {
	t := now.Add(d)
	return &t
}

func names(es []entry) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.name
	}
	return out
}

func TestParseFilter(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		f, err := listing.ParseFilter(listing.RawFilter{})
		require.NoError(t, err)
		assert.Equal(t, listing.DefaultFilter(), f)
	})

	t.Run("dates are whole UTC days", func(t *testing.T) {
		f, err := listing.ParseFilter(listing.RawFilter{DateFrom: "2025-04-01", DateTo: "2025-04-02"})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), *f.DateFrom)
		assert.Equal(t, time.Date(2025, 4, 2, 23, 59, 59, int(999*time.Millisecond), time.UTC), *f.DateTo)
	})

	t.Run("single day range is valid", func(t *testing.T) {
		_, err := listing.ParseFilter(listing.RawFilter{DateFrom: "2025-04-01", DateTo: "2025-04-01"})
		assert.NoError(t, err)
	})

	cases := []struct {
		name  string
		raw   listing.RawFilter
		errIs error
	}{
		{name: "unknown tab", raw: listing.RawFilter{Tab: "upcoming"}, errIs: listing.ErrInvalidTab},
		{name: "unknown sort", raw: listing.RawFilter{Sort: "popular"}, errIs: listing.ErrInvalidSort},
		{name: "bad date", raw: listing.RawFilter{DateFrom: "04/01/2025"}, errIs: listing.ErrInvalidDate},
		{name: "inverted range", raw: listing.RawFilter{DateFrom: "2025-04-03", DateTo: "2025-04-02"}, errIs: listing.ErrInvalidDateRange},
		{name: "negative min", raw: listing.RawFilter{MinAvailable: "-1"}, errIs: listing.ErrInvalidMinAvailable},
		{name: "non numeric min", raw: listing.RawFilter{MinAvailable: "lots"}, errIs: listing.ErrInvalidMinAvailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := listing.ParseFilter(tc.raw)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestApply_Tabs(t *testing.T) {
	posts := []entry{
		{name: "open-ended", item: listing.Item{CreatedAt: now}},
		{name: "later", item: listing.Item{EndTime: at(time.Hour), CreatedAt: now}},
		{name: "ended", item: listing.Item{EndTime: at(-time.Hour), CreatedAt: now}},
	}

	active := listing.Apply(posts, itemOf, listing.Filter{Tab: listing.TabActive, Sort: listing.SortNewest}, now)
	assert.ElementsMatch(t, []string{"open-ended", "later"}, names(active))

	ended := listing.Apply(posts, itemOf, listing.Filter{Tab: listing.TabEnded, Sort: listing.SortNewest}, now)
	assert.Equal(t, []string{"ended"}, names(ended))

	all := listing.Apply(posts, itemOf, listing.Filter{Tab: listing.TabAll, Sort: listing.SortNewest}, now)
	assert.Len(t, all, 3)
}

func TestApply_Predicates(t *testing.T) {
	posts := []entry{
		{name: "pizza", item: listing.Item{Title: "Pizza Party", Description: "cheese", Location: "CDS 1001", QuantityLeft: 5, StartTime: at(24 * time.Hour), CreatedAt: now}},
		{name: "bagels", item: listing.Item{Title: "Bagels", Description: "With PIZZA toppings", Location: "GSU", QuantityLeft: 1, CreatedAt: now.Add(-48 * time.Hour)}},
		{name: "salad", item: listing.Item{Title: "Salad", Description: "greens", Location: "cds lobby", QuantityLeft: 0, StartTime: at(-72 * time.Hour), CreatedAt: now}},
	}
	base := listing.Filter{Tab: listing.TabAll, Sort: listing.SortEventEarly}

	cases := []struct {
		name   string
		mutate func(*listing.Filter)
		want   []string
	}{
		{name: "search title or description, case-insensitive", mutate: func(f *listing.Filter) { f.Search = "pIzZa" }, want: []string{"bagels", "pizza"}},
		{name: "location substring", mutate: func(f *listing.Filter) { f.Location = "CDS" }, want: []string{"salad", "pizza"}},
		{name: "min available", mutate: func(f *listing.Filter) { f.MinAvailable = 2 }, want: []string{"pizza"}},
		{
			name: "date_from uses start_time then created_at",
			mutate: func(f *listing.Filter) {
				from := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
				f.DateFrom = &from
			},
			want: []string{"pizza"},
		},
		{
			name: "date_to is inclusive through end of day",
			mutate: func(f *listing.Filter) {
				to := time.Date(2025, 4, 8, 23, 59, 59, int(999*time.Millisecond), time.UTC)
				f.DateTo = &to
			},
			want: []string{"bagels", "salad"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := base
			tc.mutate(&f)
			got := listing.Apply(posts, itemOf, f, now)
			if diff := cmp.Diff(tc.want, names(got)); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApply_Sorts(t *testing.T) {
	posts := []entry{
		{name: "now-ends-late", item: listing.Item{EndTime: at(5 * time.Hour), UpdatedAt: now.Add(-3 * time.Hour)}},
		{name: "tomorrow", item: listing.Item{StartTime: at(24 * time.Hour), EndTime: at(26 * time.Hour), UpdatedAt: now.Add(-1 * time.Hour)}},
		{name: "now-ends-soon", item: listing.Item{EndTime: at(time.Hour), UpdatedAt: now.Add(-2 * time.Hour)}},
		{name: "tonight-long", item: listing.Item{StartTime: at(6 * time.Hour), EndTime: at(9 * time.Hour), UpdatedAt: now.Add(-5 * time.Hour)}},
		{name: "tonight-short", item: listing.Item{StartTime: at(6 * time.Hour), EndTime: at(7 * time.Hour), CreatedAt: now.Add(-4 * time.Hour)}},
	}

	cases := []struct {
		sort listing.Sort
		want []string
	}{
		{sort: listing.SortNewest, want: []string{"tomorrow", "now-ends-soon", "now-ends-late", "tonight-short", "tonight-long"}},
		{sort: listing.SortOldest, want: []string{"tonight-long", "tonight-short", "now-ends-late", "now-ends-soon", "tomorrow"}},
		{sort: listing.SortEventEarly, want: []string{"now-ends-soon", "now-ends-late", "tonight-short", "tonight-long", "tomorrow"}},
		{sort: listing.SortEventLate, want: []string{"tomorrow", "tonight-long", "tonight-short", "now-ends-late", "now-ends-soon"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.sort), func(t *testing.T) {
			got := listing.Apply(posts, itemOf, listing.Filter{Tab: listing.TabAll, Sort: tc.sort}, now)
			if diff := cmp.Diff(tc.want, names(got)); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	posts := []entry{
		{name: "b", item: listing.Item{UpdatedAt: now.Add(-time.Hour)}},
		{name: "a", item: listing.Item{UpdatedAt: now}},
	}
	_ = listing.Apply(posts, itemOf, listing.Filter{Tab: listing.TabAll, Sort: listing.SortNewest}, now)
	assert.Equal(t, []string{"b", "a"}, names(posts))
}
