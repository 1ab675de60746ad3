// Package listing holds the list controllers behind the console views.
//
// ArticleList keeps one visible page of articles consistent with three
// independent inputs: a title filter, a category filter and a page number.
// Raw filter text is recorded on every keystroke but only promoted to the
// active filters once it has been stable for the debounce interval; only a
// change in the active filters or the page issues a fetch. A successful
// fetch replaces the list and pagination metadata wholesale, a failed one
// leaves them untouched.
//
// Collection is the simpler controller used for flat lists (categories,
// comments) that are re-fetched in full after every mutation.
package listing

import "context"

// Refresher re-runs a list fetch. Mutation orchestrators call it after
// every successful write.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// RefresherFunc adapts a function to Refresher.
type RefresherFunc func(ctx context.Context) error

// Refresh calls f(ctx).
func (f RefresherFunc) Refresh(ctx context.Context) error {
	return f(ctx)
}
