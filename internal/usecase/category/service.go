package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"cmsdesk/internal/controller/listing"
	"cmsdesk/internal/domain/entity"
	"cmsdesk/internal/infra/cms"
	"cmsdesk/internal/infra/cms/query"
	"cmsdesk/internal/infra/notifier"
	"cmsdesk/internal/usecase/mutation"
)

const resource = "categories"

// ArticlesPageSize is the page size of the category detail's article list.
const ArticlesPageSize = 6

// API is the subset of the backend client the category use cases need.
type API interface {
	GetCategory(ctx context.Context, documentID string) (*entity.Category, error)
	CreateCategory(ctx context.Context, in cms.CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, documentID string, in cms.CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, documentID string) error
	ListArticles(ctx context.Context, req query.Request) (*cms.ArticlePage, error)
}

// Service provides category management use cases.
type Service struct {
	API       API
	Refresher listing.Refresher
	Notifier  notifier.Notifier
	Logger    *slog.Logger
}

func (s *Service) reporter() mutation.Reporter {
	return mutation.Reporter{Notifier: s.Notifier, Refresher: s.Refresher, Logger: s.Logger}
}

// Create validates the form and creates a category.
func (s *Service) Create(ctx context.Context, form entity.CategoryForm) (*entity.Category, error) {
	r := s.reporter()
	if err := form.Validate(); err != nil {
		return nil, r.Rejected(ctx, "Failed to create category", err)
	}

	created, err := s.API.CreateCategory(ctx, input(form))
	if err != nil {
		return nil, r.Failed(ctx, resource, "create", "Failed to create category", fmt.Errorf("create category: %w", err))
	}

	r.Succeeded(ctx, resource, "create", "Category created", created.Name)
	return created, nil
}

// Update validates the form and replaces the category's fields.
func (s *Service) Update(ctx context.Context, documentID string, form entity.CategoryForm) (*entity.Category, error) {
	r := s.reporter()
	if strings.TrimSpace(documentID) == "" {
		return nil, r.Rejected(ctx, "Failed to update category", ErrMissingDocumentID)
	}
	if err := form.Validate(); err != nil {
		return nil, r.Rejected(ctx, "Failed to update category", err)
	}

	updated, err := s.API.UpdateCategory(ctx, documentID, input(form))
	if err != nil {
		return nil, r.Failed(ctx, resource, "update", "Failed to update category", fmt.Errorf("update category: %w", err))
	}

	r.Succeeded(ctx, resource, "update", "Category updated", updated.Name)
	return updated, nil
}

// Delete removes a category.
func (s *Service) Delete(ctx context.Context, documentID string) error {
	r := s.reporter()
	if strings.TrimSpace(documentID) == "" {
		return r.Rejected(ctx, "Failed to delete category", ErrMissingDocumentID)
	}

	if err := s.API.DeleteCategory(ctx, documentID); err != nil {
		return r.Failed(ctx, resource, "delete", "Failed to delete category", fmt.Errorf("delete category: %w", err))
	}

	r.Succeeded(ctx, resource, "delete", "Category deleted", documentID)
	return nil
}

// Get loads one category.
func (s *Service) Get(ctx context.Context, documentID string) (*entity.Category, error) {
	if strings.TrimSpace(documentID) == "" {
		return nil, ErrMissingDocumentID
	}
	cat, err := s.API.GetCategory(ctx, documentID)
	if err != nil {
		err = fmt.Errorf("get category: %w", err)
		s.reporter().Notify(ctx, notifier.Error("Failed to load category", err))
		return nil, err
	}
	return cat, nil
}

// Articles lists one page of the articles filed under the category name,
// matched case-insensitively.
func (s *Service) Articles(ctx context.Context, name string, page int) (*cms.ArticlePage, error) {
	if page < 1 {
		page = 1
	}
	req := query.Request{
		Page:     page,
		PageSize: ArticlesPageSize,
		Populate: []string{query.PopulateAll},
	}.Where(query.Eqi, name, "category", "name")

	result, err := s.API.ListArticles(ctx, req)
	if err != nil {
		err = fmt.Errorf("list category articles: %w", err)
		s.reporter().Notify(ctx, notifier.Error("Failed to load category articles", err))
		return nil, err
	}
	return result, nil
}

func input(form entity.CategoryForm) cms.CategoryInput {
	return cms.CategoryInput{
		Name:        strings.TrimSpace(form.Name),
		Description: strings.TrimSpace(form.Description),
	}
}
