// Package article provides the use cases behind the article views:
// creating, updating and deleting articles, and loading an article with
// its comments for the detail view.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrInvalidCategory indicates that the category chosen in the form is
	// not in the current category list. It is raised before any request is sent.
	ErrInvalidCategory = errors.New("category is not valid")

	// ErrMissingDocumentID indicates an update, delete or lookup without a target.
	ErrMissingDocumentID = errors.New("article document id is required")
)
