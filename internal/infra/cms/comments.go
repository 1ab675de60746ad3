package cms

import (
	"context"
	"net/http"
	"net/url"

	"cmsdesk/internal/domain/entity"
	"cmsdesk/internal/infra/cms/query"
)

const commentsPath = "/api/comments"

// ListComments fetches one page of comments.
func (c *Client) ListComments(ctx context.Context, req query.Request) (*CommentPage, error) {
	var resp listResponse[commentDTO]
	err := c.do(ctx, request{
		resource: "comments",
		method:   http.MethodGet,
		path:     commentsPath,
		query:    req.Encode(),
	}, &resp)
	if err != nil {
		return nil, err
	}
	if err := resp.validate("comments"); err != nil {
		return nil, err
	}

	page := &CommentPage{
		Comments:   make([]entity.Comment, 0, len(*resp.Data)),
		Pagination: resp.metadata(),
	}
	for _, cm := range *resp.Data {
		page.Comments = append(page.Comments, cm.toEntity())
	}
	return page, nil
}

// ListCommentsByArticle fetches the comments attached to one article.
func (c *Client) ListCommentsByArticle(ctx context.Context, articleDocumentID string) (*CommentPage, error) {
	req := query.Request{}.Where(query.Eq, articleDocumentID, "article", "documentId")
	return c.ListComments(ctx, req)
}

// CreateComment adds a comment to an article.
func (c *Client) CreateComment(ctx context.Context, in CommentInput) (*entity.Comment, error) {
	return c.writeComment(ctx, http.MethodPost, commentsPath, in)
}

// UpdateComment replaces a comment's content.
func (c *Client) UpdateComment(ctx context.Context, documentID, content string) (*entity.Comment, error) {
	return c.writeComment(ctx, http.MethodPut, commentPath(documentID), map[string]string{"content": content})
}

func (c *Client) writeComment(ctx context.Context, method, path string, payload any) (*entity.Comment, error) {
	var resp singleResponse[commentDTO]
	err := c.do(ctx, request{
		resource: "comments",
		method:   method,
		path:     path,
		body:     dataEnvelope{Data: payload},
	}, &resp)
	if err != nil {
		return nil, err
	}
	if err := resp.validate("comment"); err != nil {
		return nil, err
	}
	cm := resp.Data.toEntity()
	return &cm, nil
}

// DeleteComment removes a comment.
func (c *Client) DeleteComment(ctx context.Context, documentID string) error {
	return c.do(ctx, request{
		resource: "comments",
		method:   http.MethodDelete,
		path:     commentPath(documentID),
	}, nil)
}

func commentPath(documentID string) string {
	return commentsPath + "/" + url.PathEscape(documentID)
}
