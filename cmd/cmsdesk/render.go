package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"cmsdesk/internal/common/pagination"
	"cmsdesk/internal/controller/listing"
	"cmsdesk/internal/domain/entity"
	"cmsdesk/internal/infra/notifier"
	"cmsdesk/internal/session"
	"cmsdesk/internal/utils/text"
)

const (
	titleWidth   = 60
	excerptWidth = 72
)

// ArticleOutput is the JSON form of an article.
type ArticleOutput struct {
	DocumentID    string          `json:"documentId"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	CoverImageURL string          `json:"cover_image_url"`
	Category      string          `json:"category,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	Comments      []CommentOutput `json:"comments,omitempty"`
}

// CategoryOutput is the JSON form of a category.
type CategoryOutput struct {
	DocumentID  string    `json:"documentId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CommentOutput is the JSON form of a comment.
type CommentOutput struct {
	DocumentID string    `json:"documentId"`
	Content    string    `json:"content"`
	Article    string    `json:"article,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// UserOutput is the JSON form of the signed-in user.
type UserOutput struct {
	ID             int64      `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	Confirmed      bool       `json:"confirmed"`
	TokenExpiresAt *time.Time `json:"tokenExpiresAt,omitempty"`
}

// BrowseOutput is the JSON form of one browse snapshot.
type BrowseOutput struct {
	TitleInput     string                             `json:"titleInput"`
	CategoryInput  string                             `json:"categoryInput"`
	ActiveTitle    string                             `json:"activeTitle"`
	ActiveCategory string                             `json:"activeCategory"`
	Page           int                                `json:"page"`
	HasPrev        bool                               `json:"hasPrev"`
	HasNext        bool                               `json:"hasNext"`
	Error          string                             `json:"error,omitempty"`
	Notification   string                             `json:"notification,omitempty"`
	Articles       pagination.Response[ArticleOutput] `json:"articles"`
}

func toArticleOutput(a entity.Article) ArticleOutput {
	out := ArticleOutput{
		DocumentID:    a.DocumentID,
		Title:         a.Title,
		Description:   a.Description,
		CoverImageURL: a.CoverImageURL,
		Category:      a.CategoryName(),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
	for _, c := range a.Comments {
		out.Comments = append(out.Comments, toCommentOutput(c))
	}
	return out
}

func toArticleOutputs(articles []entity.Article) []ArticleOutput {
	out := make([]ArticleOutput, 0, len(articles))
	for _, a := range articles {
		out = append(out, toArticleOutput(a))
	}
	return out
}

func toCommentOutput(c entity.Comment) CommentOutput {
	out := CommentOutput{DocumentID: c.DocumentID, Content: c.Content, CreatedAt: c.CreatedAt}
	if c.Article != nil {
		out.Article = c.Article.DocumentID
	}
	return out
}

func (a *app) writeJSON(v any) error {
	encoder := json.NewEncoder(a.stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

func (a *app) renderArticlePage(articles []entity.Article, meta pagination.Metadata) error {
	if a.format == "json" {
		return a.writeJSON(pagination.NewResponse(toArticleOutputs(articles), meta))
	}
	writeArticleTable(a.stdout, articles, meta)
	return nil
}

func writeArticleTable(w io.Writer, articles []entity.Article, meta pagination.Metadata) {
	if len(articles) == 0 {
		fmt.Fprintln(w, "No articles found.")
	}
	for i, art := range articles {
		category := art.CategoryName()
		if category == "" {
			category = "-"
		}
		fmt.Fprintf(w, "%d. %s  [%s]  (%s)\n", i+1, text.Excerpt(art.Title, titleWidth), category, art.DocumentID)
		if art.Description != "" {
			fmt.Fprintf(w, "   %s\n", text.Excerpt(art.Description, excerptWidth))
		}
	}
	fmt.Fprintf(w, "Page %d/%d, %d total\n", meta.Page, meta.PageCount, meta.Total)
}

func (a *app) renderArticle(art *entity.Article) error {
	if a.format == "json" {
		return a.writeJSON(toArticleOutput(*art))
	}

	w := a.stdout
	fmt.Fprintf(w, "%s (%s)\n", art.Title, art.DocumentID)
	if name := art.CategoryName(); name != "" {
		fmt.Fprintf(w, "Category: %s\n", name)
	}
	if art.CoverImageURL != "" {
		fmt.Fprintf(w, "Cover: %s\n", art.CoverImageURL)
	}
	if !art.CreatedAt.IsZero() {
		fmt.Fprintf(w, "Created: %s\n", art.CreatedAt.Format(time.RFC3339))
	}
	if art.Description != "" {
		fmt.Fprintf(w, "\n%s\n", art.Description)
	}
	if len(art.Comments) > 0 {
		fmt.Fprintf(w, "\nComments (%d):\n", len(art.Comments))
		writeCommentLines(w, art.Comments)
	}
	return nil
}

func (a *app) renderCategories(categories []entity.Category) error {
	if a.format == "json" {
		out := make([]CategoryOutput, 0, len(categories))
		for _, c := range categories {
			out = append(out, CategoryOutput{
				DocumentID:  c.DocumentID,
				Name:        c.Name,
				Description: c.Description,
				CreatedAt:   c.CreatedAt,
			})
		}
		return a.writeJSON(out)
	}

	if len(categories) == 0 {
		fmt.Fprintln(a.stdout, "No categories found.")
		return nil
	}
	for _, c := range categories {
		line := fmt.Sprintf("- %s (%s)", c.Name, c.DocumentID)
		if c.Description != "" {
			line += ": " + c.Description
		}
		fmt.Fprintln(a.stdout, line)
	}
	return nil
}

func (a *app) renderComments(comments []entity.Comment) error {
	if a.format == "json" {
		out := make([]CommentOutput, 0, len(comments))
		for _, c := range comments {
			out = append(out, toCommentOutput(c))
		}
		return a.writeJSON(out)
	}
	if len(comments) == 0 {
		fmt.Fprintln(a.stdout, "No comments.")
		return nil
	}
	writeCommentLines(a.stdout, comments)
	return nil
}

func writeCommentLines(w io.Writer, comments []entity.Comment) {
	for _, c := range comments {
		stamp := "-"
		if !c.CreatedAt.IsZero() {
			stamp = c.CreatedAt.Format("2006-01-02 15:04")
		}
		line := fmt.Sprintf("  [%s] %s (%s)", stamp, text.Excerpt(c.Content, excerptWidth), c.DocumentID)
		if c.Article != nil && c.Article.Title != "" {
			line += " on " + c.Article.Title
		}
		fmt.Fprintln(w, line)
	}
}

func (a *app) renderUser(user *entity.User, claims *session.Claims) error {
	out := UserOutput{ID: user.ID, Username: user.Username, Email: user.Email, Confirmed: user.Confirmed}
	if claims != nil && !claims.ExpiresAt.IsZero() {
		exp := claims.ExpiresAt
		out.TokenExpiresAt = &exp
	}
	if a.format == "json" {
		return a.writeJSON(out)
	}

	fmt.Fprintf(a.stdout, "%s <%s> (id %d)\n", out.Username, out.Email, out.ID)
	if out.TokenExpiresAt != nil {
		fmt.Fprintf(a.stdout, "Token expires: %s\n", out.TokenExpiresAt.Format(time.RFC3339))
	}
	return nil
}

// renderBrowseState prints one browse snapshot.
func (a *app) renderBrowseState(state listing.State) error {
	var note string
	if n, ok := a.recorder.Last(); ok {
		note = notifier.Format(n)
	}

	if a.format == "json" {
		out := BrowseOutput{
			TitleInput:     state.TitleInput,
			CategoryInput:  state.CategoryInput,
			ActiveTitle:    state.ActiveTitle,
			ActiveCategory: state.ActiveCategory,
			Page:           state.Page,
			HasPrev:        state.HasPrev,
			HasNext:        state.HasNext,
			Notification:   note,
			Articles:       pagination.NewResponse(toArticleOutputs(state.Articles), state.Pagination),
		}
		if state.LastError != nil {
			out.Error = state.LastError.Error()
		}
		return a.writeJSON(out)
	}

	w := a.stdout
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "Title filter: %q  Category filter: %q\n", state.ActiveTitle, state.ActiveCategory)
	if state.TitleInput != state.ActiveTitle || state.CategoryInput != state.ActiveCategory {
		fmt.Fprintf(w, "Typing: %q / %q\n", state.TitleInput, state.CategoryInput)
	}
	writeArticleTable(w, state.Articles, state.Pagination)
	fmt.Fprintf(w, "[%s] prev  [%s] next\n", enabled(state.HasPrev), enabled(state.HasNext))
	if state.LastError != nil {
		fmt.Fprintf(w, "Last fetch failed: %v\n", state.LastError)
	}
	if note != "" {
		fmt.Fprintln(w, note)
	}
	return nil
}

func enabled(ok bool) string {
	if ok {
		return "x"
	}
	return " "
}
