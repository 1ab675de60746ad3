package entity

import "time"

// Category groups articles. It is referenced by zero or more articles;
// the relation is enforced by the backend.
type Category struct {
	ID          int64
	DocumentID  string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FindCategoryByDocumentID returns the category with the given document ID, or nil.
func FindCategoryByDocumentID(categories []Category, documentID string) *Category {
	for i := range categories {
		if categories[i].DocumentID == documentID {
			return &categories[i]
		}
	}
	return nil
}
