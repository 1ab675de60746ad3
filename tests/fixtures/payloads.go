package fixtures

import (
	"encoding/json"
	"time"

	"cmsdesk/internal/common/pagination"
	"cmsdesk/internal/domain/entity"
)

// Payloads mirror the content backend's wire format. They are written
// independently of the client's DTOs so tests catch drift between the two.

type refPayload struct {
	ID          int64  `json:"id"`
	DocumentID  string `json:"documentId"`
	Name        string `json:"name,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

type commentPayload struct {
	ID         int64       `json:"id"`
	DocumentID string      `json:"documentId"`
	Content    string      `json:"content"`
	CreatedAt  time.Time   `json:"createdAt"`
	Article    *refPayload `json:"article"`
}

type articlePayload struct {
	ID            int64            `json:"id"`
	DocumentID    string           `json:"documentId"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	CoverImageURL string           `json:"cover_image_url"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
	PublishedAt   time.Time        `json:"publishedAt"`
	Category      *refPayload      `json:"category"`
	Comments      []commentPayload `json:"comments,omitempty"`
}

type categoryPayload struct {
	ID          int64     `json:"id"`
	DocumentID  string    `json:"documentId"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type listPayload struct {
	Data any `json:"data"`
	Meta struct {
		Pagination pagination.Metadata `json:"pagination"`
	} `json:"meta"`
}

func toCommentPayload(c entity.Comment) commentPayload {
	p := commentPayload{ID: c.ID, DocumentID: c.DocumentID, Content: c.Content, CreatedAt: c.CreatedAt}
	if c.Article != nil {
		p.Article = &refPayload{
			ID:          c.Article.ID,
			DocumentID:  c.Article.DocumentID,
			Title:       c.Article.Title,
			Description: c.Article.Description,
		}
	}
	return p
}

func toArticlePayload(a entity.Article) articlePayload {
	p := articlePayload{
		ID:            a.ID,
		DocumentID:    a.DocumentID,
		Title:         a.Title,
		Description:   a.Description,
		CoverImageURL: a.CoverImageURL,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
		PublishedAt:   a.PublishedAt,
	}
	if a.Category != nil {
		p.Category = &refPayload{ID: a.Category.ID, DocumentID: a.Category.DocumentID, Name: a.Category.Name}
	}
	for _, c := range a.Comments {
		p.Comments = append(p.Comments, toCommentPayload(c))
	}
	return p
}

func toCategoryPayload(c entity.Category) categoryPayload {
	p := categoryPayload{ID: c.ID, DocumentID: c.DocumentID, Name: c.Name, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
	if c.Description != "" {
		desc := c.Description
		p.Description = &desc
	}
	return p
}

func list(data any, meta pagination.Metadata) []byte {
	var p listPayload
	p.Data = data
	p.Meta.Pagination = meta
	return mustJSON(p)
}

func mustJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

// ArticleListJSON is a list response carrying articles and meta.
func ArticleListJSON(articles []entity.Article, meta pagination.Metadata) []byte {
	data := make([]articlePayload, 0, len(articles))
	for _, a := range articles {
		data = append(data, toArticlePayload(a))
	}
	return list(data, meta)
}

// ArticleJSON is a single-article response.
func ArticleJSON(a entity.Article) []byte {
	return mustJSON(map[string]any{"data": toArticlePayload(a)})
}

// CategoryListJSON is a single-page category list response.
func CategoryListJSON(categories ...entity.Category) []byte {
	data := make([]categoryPayload, 0, len(categories))
	for _, c := range categories {
		data = append(data, toCategoryPayload(c))
	}
	return list(data, pagination.Metadata{Page: 1, PageSize: 25, PageCount: 1, Total: int64(len(categories))})
}

// CommentListJSON is a single-page comment list response.
func CommentListJSON(comments ...entity.Comment) []byte {
	data := make([]commentPayload, 0, len(comments))
	for _, c := range comments {
		data = append(data, toCommentPayload(c))
	}
	return list(data, pagination.Metadata{Page: 1, PageSize: 25, PageCount: 1, Total: int64(len(comments))})
}
