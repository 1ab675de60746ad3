package entity

import "time"

// Comment is a remark left on an article.
type Comment struct {
	ID         int64
	DocumentID string
	Content    string
	CreatedAt  time.Time
	// Article is nil when the owning article has been deleted.
	Article *ArticleRef
}

// ArticleRef is the back-reference from a comment to its article.
type ArticleRef struct {
	ID          int64
	DocumentID  string
	Title       string
	Description string
}
