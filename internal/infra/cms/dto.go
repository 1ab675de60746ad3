package cms

import (
	"fmt"
	"time"

	"cmsdesk/internal/common/pagination"
	"cmsdesk/internal/domain/entity"
)

// Wire shapes of the backend. Every response is validated before any of
// its fields are trusted.

type paginationDTO struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"pageSize"`
	PageCount int   `json:"pageCount"`
	Total     int64 `json:"total"`
}

type metaDTO struct {
	Pagination *paginationDTO `json:"pagination"`
}

type listResponse[T any] struct {
	Data *[]T    `json:"data"`
	Meta metaDTO `json:"meta"`
}

type singleResponse[T any] struct {
	Data *T `json:"data"`
}

type record interface {
	documentID() string
}

func (r listResponse[T]) validate(resource string) error {
	if r.Data == nil {
		return fmt.Errorf("%w: %s list has no data array", ErrInvalidResponse, resource)
	}
	p := r.Meta.Pagination
	if p == nil {
		return fmt.Errorf("%w: %s list has no meta.pagination", ErrInvalidResponse, resource)
	}
	if p.Page < 1 || p.PageSize < 1 || p.PageCount < 0 || p.Total < 0 {
		return fmt.Errorf("%w: %s list pagination out of range (page=%d pageSize=%d pageCount=%d total=%d)",
			ErrInvalidResponse, resource, p.Page, p.PageSize, p.PageCount, p.Total)
	}
	for i, item := range *r.Data {
		if err := validateRecord(resource, item); err != nil {
			return fmt.Errorf("%s[%d]: %w", resource, i, err)
		}
	}
	return nil
}

func (r listResponse[T]) metadata() pagination.Metadata {
	p := r.Meta.Pagination
	return pagination.Metadata{
		Page:      p.Page,
		PageSize:  p.PageSize,
		PageCount: p.PageCount,
		Total:     p.Total,
	}
}

func (r singleResponse[T]) validate(resource string) error {
	if r.Data == nil {
		return fmt.Errorf("%w: %s response has no data", ErrInvalidResponse, resource)
	}
	return validateRecord(resource, *r.Data)
}

func validateRecord(resource string, item any) error {
	rec, ok := item.(record)
	if !ok {
		return nil
	}
	if rec.documentID() == "" {
		return fmt.Errorf("%w: %s record without documentId", ErrInvalidResponse, resource)
	}
	return nil
}

type categoryRefDTO struct {
	ID         int64  `json:"id"`
	DocumentID string `json:"documentId"`
	Name       string `json:"name"`
}

type articleRefDTO struct {
	ID          int64  `json:"id"`
	DocumentID  string `json:"documentId"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type articleDTO struct {
	ID            int64           `json:"id"`
	DocumentID    string          `json:"documentId"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	CoverImageURL string          `json:"cover_image_url"`
	Category      *categoryRefDTO `json:"category"`
	Comments      []commentDTO    `json:"comments"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	PublishedAt   *time.Time      `json:"publishedAt"`
}

func (a articleDTO) documentID() string { return a.DocumentID }

func (a articleDTO) toEntity() entity.Article {
	out := entity.Article{
		ID:            a.ID,
		DocumentID:    a.DocumentID,
		Title:         a.Title,
		Description:   a.Description,
		CoverImageURL: a.CoverImageURL,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
	if a.PublishedAt != nil {
		out.PublishedAt = *a.PublishedAt
	}
	if a.Category != nil {
		out.Category = &entity.CategoryRef{
			ID:         a.Category.ID,
			DocumentID: a.Category.DocumentID,
			Name:       a.Category.Name,
		}
	}
	if len(a.Comments) > 0 {
		out.Comments = make([]entity.Comment, 0, len(a.Comments))
		for _, c := range a.Comments {
			out.Comments = append(out.Comments, c.toEntity())
		}
	}
	return out
}

type categoryDTO struct {
	ID          int64     `json:"id"`
	DocumentID  string    `json:"documentId"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (c categoryDTO) documentID() string { return c.DocumentID }

func (c categoryDTO) toEntity() entity.Category {
	out := entity.Category{
		ID:         c.ID,
		DocumentID: c.DocumentID,
		Name:       c.Name,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
	if c.Description != nil {
		out.Description = *c.Description
	}
	return out
}

type commentDTO struct {
	ID         int64          `json:"id"`
	DocumentID string         `json:"documentId"`
	Content    string         `json:"content"`
	CreatedAt  time.Time      `json:"createdAt"`
	Article    *articleRefDTO `json:"article"`
}

func (c commentDTO) documentID() string { return c.DocumentID }

func (c commentDTO) toEntity() entity.Comment {
	out := entity.Comment{
		ID:         c.ID,
		DocumentID: c.DocumentID,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt,
	}
	if c.Article != nil {
		out.Article = &entity.ArticleRef{
			ID:          c.Article.ID,
			DocumentID:  c.Article.DocumentID,
			Title:       c.Article.Title,
			Description: c.Article.Description,
		}
	}
	return out
}

type userDTO struct {
	ID         int64     `json:"id"`
	DocumentID string    `json:"documentId"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Provider   string    `json:"provider"`
	Confirmed  bool      `json:"confirmed"`
	Blocked    bool      `json:"blocked"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (u userDTO) validate() error {
	if u.ID <= 0 {
		return fmt.Errorf("%w: user without id", ErrInvalidResponse)
	}
	return nil
}

func (u userDTO) toEntity() *entity.User {
	return &entity.User{
		ID:         u.ID,
		DocumentID: u.DocumentID,
		Username:   u.Username,
		Email:      u.Email,
		Provider:   u.Provider,
		Confirmed:  u.Confirmed,
		Blocked:    u.Blocked,
		CreatedAt:  u.CreatedAt,
	}
}

type authResponse struct {
	JWT  string   `json:"jwt"`
	User *userDTO `json:"user"`
}

func (r authResponse) validate() error {
	if r.JWT == "" {
		return fmt.Errorf("%w: auth response without jwt", ErrInvalidResponse)
	}
	if r.User == nil {
		return fmt.Errorf("%w: auth response without user", ErrInvalidResponse)
	}
	return r.User.validate()
}

// ArticleInput is the writable subset of an article. Category is the
// numeric category id.
type ArticleInput struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	CoverImageURL string `json:"cover_image_url"`
	Category      int64  `json:"category"`
}

// CategoryInput is the writable subset of a category.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CommentInput creates a comment on the article with the given document id.
type CommentInput struct {
	Content string `json:"content"`
	Article string `json:"article"`
}

type dataEnvelope struct {
	Data any `json:"data"`
}

// ArticlePage is one page of the article list.
type ArticlePage struct {
	Articles   []entity.Article
	Pagination pagination.Metadata
}

// CategoryPage is one page of the category list.
type CategoryPage struct {
	Categories []entity.Category
	Pagination pagination.Metadata
}

// CommentPage is one page of the comment list.
type CommentPage struct {
	Comments   []entity.Comment
	Pagination pagination.Metadata
}

// AuthResult is returned by Login and Register.
type AuthResult struct {
	JWT  string
	User *entity.User
}
