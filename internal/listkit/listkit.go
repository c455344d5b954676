// Package listkit provides the pure filtering and pagination transforms
// applied to collection snapshots before display or export.
package listkit

import (
	"strings"
	"time"
)

// Predicate reports whether an item survives a filter.
type Predicate[T any] func(T) bool

// TextSearch matches when any of the extracted fields contains the query,
// case-insensitively. An empty query matches everything. Items whose fields
// are all empty do not match a non-empty query.
func TextSearch[T any](query string, fields ...func(T) string) Predicate[T] {
	query = strings.ToLower(strings.TrimSpace(query))
	return func(item T) bool {
		if query == "" {
			return true
		}
		for _, field := range fields {
			value := field(item)
			if value == "" {
				continue
			}
			if strings.Contains(strings.ToLower(value), query) {
				return true
			}
		}
		return false
	}
}

// StatusEquals matches items whose extracted status equals want. A nil want
// matches everything.
func StatusEquals[T any](want *int, status func(T) int) Predicate[T] {
	return func(item T) bool {
		if want == nil {
			return true
		}
		return status(item) == *want
	}
}

// DateRange matches items whose extracted timestamp falls inside the
// inclusive [from, to] window. The end bound is pushed to the last instant of
// its day so that a range ending "today" includes today's records. Zero
// bounds are open.
func DateRange[T any](from, to time.Time, at func(T) time.Time) Predicate[T] {
	if !to.IsZero() {
		to = EndOfDay(to)
	}
	return func(item T) bool {
		t := at(item)
		if !from.IsZero() && t.Before(from) {
			return false
		}
		if !to.IsZero() && t.After(to) {
			return false
		}
		return true
	}
}

// EndOfDay returns the last nanosecond of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// Filter returns the items matching every predicate, preserving order.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		ok := true
		for _, pred := range preds {
			if !pred(item) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, item)
		}
	}
	return out
}

// Paginate returns the page-th slice of size perPage, clamped to the
// collection bounds. Pages are zero-based.
func Paginate[T any](items []T, page, perPage int) []T {
	if perPage <= 0 || page < 0 {
		return nil
	}
	start := page * perPage
	if start >= len(items) {
		return nil
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// PageCount returns the number of pages a collection of n items spans.
func PageCount(n, perPage int) int {
	if perPage <= 0 || n <= 0 {
		return 0
	}
	return (n + perPage - 1) / perPage
}
