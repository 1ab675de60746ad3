// Package fixtures provides reusable test data for the console and its
// backend client: domain entities with sensible defaults and the JSON
// payloads the content backend returns for them.
package fixtures

import (
	"fmt"
	"strings"
	"time"

	"cmsdesk/internal/domain/entity"
	"cmsdesk/internal/utils/text"
)

// CreatedAt is the timestamp every fixture starts with.
var CreatedAt = time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)

// ArticleOption customizes an article built by NewArticle.
type ArticleOption func(*entity.Article)

// NewArticle creates a valid article in the "Travel" category.
//
// Example:
//
//	article := NewArticle(WithArticleID(3), WithTitle("Kyoto in autumn"))
func NewArticle(opts ...ArticleOption) entity.Article {
	a := entity.Article{
		ID:            1,
		DocumentID:    "article-1",
		Title:         "Bali travel guide",
		Description:   GenerateDescription(200),
		CoverImageURL: "https://images.example.com/bali.jpg",
		Category:      &entity.CategoryRef{ID: 1, DocumentID: "category-1", Name: "Travel"},
		CreatedAt:     CreatedAt,
		UpdatedAt:     CreatedAt,
		PublishedAt:   CreatedAt,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// WithArticleID sets both the numeric id and a matching document id.
func WithArticleID(id int64) ArticleOption {
	return func(a *entity.Article) {
		a.ID = id
		a.DocumentID = fmt.Sprintf("article-%d", id)
	}
}

// WithTitle sets the article title.
func WithTitle(title string) ArticleOption {
	return func(a *entity.Article) { a.Title = title }
}

// WithDescription sets the article body.
func WithDescription(description string) ArticleOption {
	return func(a *entity.Article) { a.Description = description }
}

// WithCategory points the article at c. A nil c leaves it uncategorized.
func WithCategory(c *entity.Category) ArticleOption {
	return func(a *entity.Article) {
		if c == nil {
			a.Category = nil
			return
		}
		a.Category = &entity.CategoryRef{ID: c.ID, DocumentID: c.DocumentID, Name: c.Name}
	}
}

// WithComments attaches populated comments.
func WithComments(comments ...entity.Comment) ArticleOption {
	return func(a *entity.Article) { a.Comments = comments }
}

// NewArticles creates n articles with ids start..start+n-1.
func NewArticles(start int64, n int, opts ...ArticleOption) []entity.Article {
	out := make([]entity.Article, 0, n)
	for i := int64(0); i < int64(n); i++ {
		id := start + i
		all := append([]ArticleOption{
			WithArticleID(id),
			WithTitle(fmt.Sprintf("Article %d", id)),
		}, opts...)
		out = append(out, NewArticle(all...))
	}
	return out
}

// NewCategory creates a category with the given id and name.
func NewCategory(id int64, name string) entity.Category {
	return entity.Category{
		ID:          id,
		DocumentID:  fmt.Sprintf("category-%d", id),
		Name:        name,
		Description: name + " stories",
		CreatedAt:   CreatedAt,
		UpdatedAt:   CreatedAt,
	}
}

// NewComment creates a comment on article stamped one day after CreatedAt
// minus age, so a smaller age is newer. A nil article models a comment
// whose article was deleted.
func NewComment(id int64, content string, article *entity.Article, age time.Duration) entity.Comment {
	c := entity.Comment{
		ID:         id,
		DocumentID: fmt.Sprintf("comment-%d", id),
		Content:    content,
		CreatedAt:  CreatedAt.Add(24*time.Hour - age),
	}
	if article != nil {
		c.Article = &entity.ArticleRef{
			ID:          article.ID,
			DocumentID:  article.DocumentID,
			Title:       article.Title,
			Description: article.Description,
		}
	}
	return c
}

var descriptionSentences = []string{
	"The rice terraces of Ubud are at their greenest just after the rainy season.",
	"Most beaches on the southern coast are busiest in the late afternoon.",
	"Local warungs serve nasi campur for a fraction of resort prices.",
	"Temple visits require a sarong, which can usually be borrowed at the gate.",
	"Scooters are the quickest way around, though traffic near Canggu is heavy.",
	"Sunrise treks up Mount Batur start well before dawn.",
	"Ferries to the Gili islands leave from Padang Bai several times a day.",
	"Cash is still preferred at small shops outside the main towns.",
}

// GenerateDescription returns article body text built from whole
// sentences and cut to at most length runes.
func GenerateDescription(length int) string {
	var b strings.Builder
	for i := 0; text.CountRunes(b.String()) < length; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(descriptionSentences[i%len(descriptionSentences)])
	}
	return text.Truncate(b.String(), length)
}
