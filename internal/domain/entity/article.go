// Package entity defines the core domain entities and validation logic for the application.
// It contains the records mirrored from the content backend (Article, Category, Comment, User)
// along with the form validation rules applied before any write is sent.
package entity

import (
	"sort"
	"time"
)

// Article represents an article record held by the content backend.
// The client only ever holds a transient copy that is replaced on the next fetch.
type Article struct {
	ID            int64
	DocumentID    string
	Title         string
	Description   string
	CoverImageURL string
	Category      *CategoryRef
	Comments      []Comment
	CreatedAt     time.Time
	UpdatedAt     time.Time
	PublishedAt   time.Time
}

// CategoryRef is the denormalized category embedded in an article response.
type CategoryRef struct {
	ID         int64
	DocumentID string
	Name       string
}

// CategoryName returns the name of the article's category, or "" when it has none.
func (a *Article) CategoryName() string {
	if a.Category == nil {
		return ""
	}
	return a.Category.Name
}

// SortCommentsNewestFirst orders comments by creation time, newest first.
// Comments with equal timestamps keep their relative order.
func SortCommentsNewestFirst(comments []Comment) {
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
}
