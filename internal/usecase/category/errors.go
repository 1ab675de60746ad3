// Package category provides the use cases behind the category views.
//
// Deleting a category does not check for articles that still reference
// it; what happens to them is up to the backend.
package category

import "errors"

// ErrMissingDocumentID indicates an update, delete or lookup without a target.
var ErrMissingDocumentID = errors.New("category document id is required")
