package cms

import (
	"context"
	"net/http"
	"net/url"

	"cmsdesk/internal/domain/entity"
	"cmsdesk/internal/infra/cms/query"
)

const articlesPath = "/api/articles"

// articleDetailPopulate loads the relations shown on the article detail view.
var articleDetailPopulate = query.EncodeParams(map[string]any{
	"populate[0]": "comments",
	"populate[1]": "category",
})

// ListArticles fetches one page of articles.
func (c *Client) ListArticles(ctx context.Context, req query.Request) (*ArticlePage, error) {
	var resp listResponse[articleDTO]
	err := c.do(ctx, request{
		resource: "articles",
		method:   http.MethodGet,
		path:     articlesPath,
		query:    req.Encode(),
	}, &resp)
	if err != nil {
		return nil, err
	}
	if err := resp.validate("articles"); err != nil {
		return nil, err
	}

	page := &ArticlePage{
		Articles:   make([]entity.Article, 0, len(*resp.Data)),
		Pagination: resp.metadata(),
	}
	for _, a := range *resp.Data {
		page.Articles = append(page.Articles, a.toEntity())
	}
	return page, nil
}

// GetArticle fetches one article with its comments and category.
func (c *Client) GetArticle(ctx context.Context, documentID string) (*entity.Article, error) {
	var resp singleResponse[articleDTO]
	err := c.do(ctx, request{
		resource: "articles",
		method:   http.MethodGet,
		path:     articlePath(documentID),
		query:    articleDetailPopulate,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if err := resp.validate("article"); err != nil {
		return nil, err
	}
	article := resp.Data.toEntity()
	return &article, nil
}

// CreateArticle creates an article and returns the stored record.
func (c *Client) CreateArticle(ctx context.Context, in ArticleInput) (*entity.Article, error) {
	return c.writeArticle(ctx, http.MethodPost, articlesPath, in)
}

// UpdateArticle replaces the writable fields of an article.
func (c *Client) UpdateArticle(ctx context.Context, documentID string, in ArticleInput) (*entity.Article, error) {
	return c.writeArticle(ctx, http.MethodPut, articlePath(documentID), in)
}

func (c *Client) writeArticle(ctx context.Context, method, path string, in ArticleInput) (*entity.Article, error) {
	var resp singleResponse[articleDTO]
	err := c.do(ctx, request{
		resource: "articles",
		method:   method,
		path:     path,
		body:     dataEnvelope{Data: in},
	}, &resp)
	if err != nil {
		return nil, err
	}
	if err := resp.validate("article"); err != nil {
		return nil, err
	}
	article := resp.Data.toEntity()
	return &article, nil
}

// DeleteArticle removes an article.
func (c *Client) DeleteArticle(ctx context.Context, documentID string) error {
	return c.do(ctx, request{
		resource: "articles",
		method:   http.MethodDelete,
		path:     articlePath(documentID),
	}, nil)
}

func articlePath(documentID string) string {
	return articlesPath + "/" + url.PathEscape(documentID)
}
