package listkit

import "time"

// Controls bundles the filter inputs and pagination cursor for one list
// view. Changing any filter jumps back to the first page so the view never
// lands on a page that no longer exists under the narrower result set.
type Controls[T any] struct {
	search   string
	status   *int
	from, to time.Time
	page     int
	perPage  int

	textFields []func(T) string
	statusOf   func(T) int
	createdAt  func(T) time.Time
}

// NewControls builds list controls over the given field extractors. Any
// extractor may be nil to disable its filter.
func NewControls[T any](perPage int, textFields []func(T) string, statusOf func(T) int, createdAt func(T) time.Time) *Controls[T] {
	if perPage <= 0 {
		perPage = 10
	}
	return &Controls[T]{
		perPage:    perPage,
		textFields: textFields,
		statusOf:   statusOf,
		createdAt:  createdAt,
	}
}

func (c *Controls[T]) SetSearch(q string) {
	c.search = q
	c.page = 0
}

func (c *Controls[T]) SetStatus(status *int) {
	c.status = status
	c.page = 0
}

func (c *Controls[T]) SetDateRange(from, to time.Time) {
	c.from = from
	c.to = to
	c.page = 0
}

func (c *Controls[T]) SetPerPage(n int) {
	if n > 0 {
		c.perPage = n
	}
	c.page = 0
}

func (c *Controls[T]) SetPage(page int) {
	if page >= 0 {
		c.page = page
	}
}

func (c *Controls[T]) Page() int    { return c.page }
func (c *Controls[T]) PerPage() int { return c.perPage }

func (c *Controls[T]) predicates() []Predicate[T] {
	var preds []Predicate[T]
	if len(c.textFields) > 0 {
		preds = append(preds, TextSearch(c.search, c.textFields...))
	}
	if c.statusOf != nil {
		preds = append(preds, StatusEquals(c.status, c.statusOf))
	}
	if c.createdAt != nil && (!c.from.IsZero() || !c.to.IsZero()) {
		preds = append(preds, DateRange(c.from, c.to, c.createdAt))
	}
	return preds
}

// Filtered returns the full filtered collection, unpaginated. Exports use
// this so a CSV always covers every matching row.
func (c *Controls[T]) Filtered(items []T) []T {
	return Filter(items, c.predicates()...)
}

// Apply returns the current page of the filtered collection along with the
// total filtered count.
func (c *Controls[T]) Apply(items []T) ([]T, int) {
	filtered := c.Filtered(items)
	return Paginate(filtered, c.page, c.perPage), len(filtered)
}
