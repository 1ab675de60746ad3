// Package comment provides the use cases behind the comment section of the
// article detail view.
package comment

import "errors"

var (
	// ErrMissingDocumentID indicates an update or delete without a target comment.
	ErrMissingDocumentID = errors.New("comment document id is required")

	// ErrMissingArticle indicates a comment created without an owning article.
	ErrMissingArticle = errors.New("article document id is required")
)
