package cms

import (
	"context"
	"net/http"
	"net/url"

	"cmsdesk/internal/domain/entity"
	"cmsdesk/internal/infra/cms/query"
)

const categoriesPath = "/api/categories"

// ListCategories fetches one page of categories. An empty request returns
// the backend's default page.
func (c *Client) ListCategories(ctx context.Context, req query.Request) (*CategoryPage, error) {
	var resp listResponse[categoryDTO]
	err := c.do(ctx, request{
		resource: "categories",
		method:   http.MethodGet,
		path:     categoriesPath,
		query:    req.Encode(),
	}, &resp)
	if err != nil {
		return nil, err
	}
	if err := resp.validate("categories"); err != nil {
		return nil, err
	}

	page := &CategoryPage{
		Categories: make([]entity.Category, 0, len(*resp.Data)),
		Pagination: resp.metadata(),
	}
	for _, cat := range *resp.Data {
		page.Categories = append(page.Categories, cat.toEntity())
	}
	return page, nil
}

// GetCategory fetches one category.
func (c *Client) GetCategory(ctx context.Context, documentID string) (*entity.Category, error) {
	var resp singleResponse[categoryDTO]
	err := c.do(ctx, request{
		resource: "categories",
		method:   http.MethodGet,
		path:     categoryPath(documentID),
	}, &resp)
	if err != nil {
		return nil, err
	}
	if err := resp.validate("category"); err != nil {
		return nil, err
	}
	cat := resp.Data.toEntity()
	return &cat, nil
}

// CreateCategory creates a category. The body is sent flat, without a data envelope.
func (c *Client) CreateCategory(ctx context.Context, in CategoryInput) (*entity.Category, error) {
	return c.writeCategory(ctx, http.MethodPost, categoriesPath, in)
}

// UpdateCategory replaces a category's name and description.
func (c *Client) UpdateCategory(ctx context.Context, documentID string, in CategoryInput) (*entity.Category, error) {
	return c.writeCategory(ctx, http.MethodPut, categoryPath(documentID), in)
}

func (c *Client) writeCategory(ctx context.Context, method, path string, in CategoryInput) (*entity.Category, error) {
	var resp singleResponse[categoryDTO]
	err := c.do(ctx, request{
		resource: "categories",
		method:   method,
		path:     path,
		body:     in,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if err := resp.validate("category"); err != nil {
		return nil, err
	}
	cat := resp.Data.toEntity()
	return &cat, nil
}

// DeleteCategory removes a category. Articles that reference it are left
// to the backend.
func (c *Client) DeleteCategory(ctx context.Context, documentID string) error {
	return c.do(ctx, request{
		resource: "categories",
		method:   http.MethodDelete,
		path:     categoryPath(documentID),
	}, nil)
}

func categoryPath(documentID string) string {
	return categoriesPath + "/" + url.PathEscape(documentID)
}
