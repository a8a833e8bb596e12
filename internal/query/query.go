// Package query provides pure, synchronous projections over collection
// snapshots already held in memory. Nothing here touches a record store:
// every function takes a slice, returns a fresh slice, and never mutates
// its input.
package query

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// AllCategories is the sentinel category value that disables categorical
// filtering.
const AllCategories = "all"

// Search returns the subsequence of items whose concatenated field values
// contain term, case-insensitively. An empty or whitespace-only term
// matches everything. Input order is preserved.
func Search[T any](items []T, term string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return append([]T(nil), items...)
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if strings.Contains(haystack(item), term) {
			out = append(out, item)
		}
	}

	return out
}

// haystack flattens a record into one lowercase string of all its field
// values, the same joined-values shape the search matches against.
func haystack(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}

	var fields map[string]any
	if err = json.Unmarshal(data, &fields); err != nil {
		return strings.ToLower(string(data))
	}

	parts := make([]string, 0, len(fields))
	for _, value := range fields {
		parts = append(parts, fmt.Sprint(value))
	}

	return strings.ToLower(strings.Join(parts, " "))
}

// MonthInterval returns the first instant of the given month and the first
// instant of the following month, in UTC.
func MonthInterval(year int, month time.Month) (start, next time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// InMonth reports whether t falls within the given calendar month,
// inclusive of both the first and the last instant of the month.
func InMonth(t time.Time, year int, month time.Month) bool {
	start, next := MonthInterval(year, month)
	return !t.Before(start) && t.Before(next)
}

// ByMonth returns the items whose date (as projected by dateOf) falls
// within the given calendar month. Input order is preserved.
func ByMonth[T any](items []T, year int, month time.Month, dateOf func(T) time.Time) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if InMonth(dateOf(item), year, month) {
			out = append(out, item)
		}
	}

	return out
}

// ByCategory returns the items whose categorical field (as projected by
// categoryOf) equals want exactly, case-sensitively. The AllCategories
// sentinel passes every item through. Input order is preserved.
func ByCategory[T any](items []T, want string, categoryOf func(T) string) []T {
	if want == AllCategories {
		return append([]T(nil), items...)
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if categoryOf(item) == want {
			out = append(out, item)
		}
	}

	return out
}

// SortByTimeDesc returns a copy of items ordered newest first by the
// projected time. Used for creation-time views.
func SortByTimeDesc[T any](items []T, timeOf func(T) time.Time) []T {
	out := append([]T(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		return timeOf(out[i]).After(timeOf(out[j]))
	})

	return out
}

// SortByTimeAsc returns a copy of items ordered oldest first by the
// projected time. Used for date-ascending calendar and finance views.
func SortByTimeAsc[T any](items []T, timeOf func(T) time.Time) []T {
	out := append([]T(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		return timeOf(out[i]).Before(timeOf(out[j]))
	})

	return out
}
