package article

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"cmsdesk/internal/controller/listing"
	"cmsdesk/internal/domain/entity"
	"cmsdesk/internal/infra/cms"
	"cmsdesk/internal/infra/notifier"
	"cmsdesk/internal/usecase/mutation"
)

const resource = "articles"

// API is the subset of the backend client the article use cases need.
type API interface {
	GetArticle(ctx context.Context, documentID string) (*entity.Article, error)
	CreateArticle(ctx context.Context, in cms.ArticleInput) (*entity.Article, error)
	UpdateArticle(ctx context.Context, documentID string, in cms.ArticleInput) (*entity.Article, error)
	DeleteArticle(ctx context.Context, documentID string) error
	ListCommentsByArticle(ctx context.Context, articleDocumentID string) (*cms.CommentPage, error)
}

// CategoryLookup exposes the category list the form's choice is resolved
// against. *listing.Collection[entity.Category] satisfies it.
type CategoryLookup interface {
	Items() []entity.Category
}

// Service provides article management use cases.
// Every write is followed by a full re-fetch through Refresher; no article
// is ever patched in memory.
type Service struct {
	API        API
	Categories CategoryLookup
	Refresher  listing.Refresher
	Notifier   notifier.Notifier
	Logger     *slog.Logger
}

func (s *Service) reporter() mutation.Reporter {
	return mutation.Reporter{Notifier: s.Notifier, Refresher: s.Refresher, Logger: s.Logger}
}

// Create validates the form, resolves its category and creates the article.
func (s *Service) Create(ctx context.Context, form entity.ArticleForm) (*entity.Article, error) {
	r := s.reporter()

	in, err := s.input(form)
	if err != nil {
		return nil, r.Rejected(ctx, "Failed to create article", err)
	}

	created, err := s.API.CreateArticle(ctx, in)
	if err != nil {
		return nil, r.Failed(ctx, resource, "create", "Failed to create article", fmt.Errorf("create article: %w", err))
	}

	r.Succeeded(ctx, resource, "create", "Article created", fmt.Sprintf("%q was saved", created.Title))
	return created, nil
}

// Update validates the form and replaces the article's fields.
func (s *Service) Update(ctx context.Context, documentID string, form entity.ArticleForm) (*entity.Article, error) {
	r := s.reporter()

	if strings.TrimSpace(documentID) == "" {
		return nil, r.Rejected(ctx, "Failed to update article", ErrMissingDocumentID)
	}
	in, err := s.input(form)
	if err != nil {
		return nil, r.Rejected(ctx, "Failed to update article", err)
	}

	updated, err := s.API.UpdateArticle(ctx, documentID, in)
	if err != nil {
		return nil, r.Failed(ctx, resource, "update", "Failed to update article", fmt.Errorf("update article: %w", err))
	}

	r.Succeeded(ctx, resource, "update", "Article updated", fmt.Sprintf("%q was saved", updated.Title))
	return updated, nil
}

// Delete removes an article.
func (s *Service) Delete(ctx context.Context, documentID string) error {
	r := s.reporter()

	if strings.TrimSpace(documentID) == "" {
		return r.Rejected(ctx, "Failed to delete article", ErrMissingDocumentID)
	}

	if err := s.API.DeleteArticle(ctx, documentID); err != nil {
		return r.Failed(ctx, resource, "delete", "Failed to delete article", fmt.Errorf("delete article: %w", err))
	}

	r.Succeeded(ctx, resource, "delete", "Article deleted", documentID)
	return nil
}

// Get loads an article and its comments concurrently. Comments are
// ordered newest first. Read failures are notified but not counted as
// mutations.
func (s *Service) Get(ctx context.Context, documentID string) (*entity.Article, error) {
	if strings.TrimSpace(documentID) == "" {
		return nil, ErrMissingDocumentID
	}

	var (
		article  *entity.Article
		comments *cms.CommentPage
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		article, err = s.API.GetArticle(gctx, documentID)
		if err != nil {
			return fmt.Errorf("get article: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		comments, err = s.API.ListCommentsByArticle(gctx, documentID)
		if err != nil {
			return fmt.Errorf("list comments: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.reporter().Notify(ctx, notifier.Error("Failed to load article", err))
		return nil, err
	}

	article.Comments = comments.Comments
	entity.SortCommentsNewestFirst(article.Comments)
	return article, nil
}

// input validates the form and resolves the category document id chosen in
// it to the numeric id the backend expects.
func (s *Service) input(form entity.ArticleForm) (cms.ArticleInput, error) {
	if err := form.Validate(); err != nil {
		return cms.ArticleInput{}, err
	}

	var categories []entity.Category
	if s.Categories != nil {
		categories = s.Categories.Items()
	}
	category := entity.FindCategoryByDocumentID(categories, form.Category)
	if category == nil {
		return cms.ArticleInput{}, &entity.ValidationError{Field: "category", Message: ErrInvalidCategory.Error(), Err: ErrInvalidCategory}
	}

	return cms.ArticleInput{
		Title:         strings.TrimSpace(form.Title),
		Description:   strings.TrimSpace(form.Description),
		CoverImageURL: strings.TrimSpace(form.CoverImageURL),
		Category:      category.ID,
	}, nil
}
