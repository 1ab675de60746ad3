package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"cmsdesk/internal/controller/listing"
	"cmsdesk/internal/domain/entity"
	"cmsdesk/internal/infra/cms"
	"cmsdesk/internal/infra/notifier"
	"cmsdesk/internal/usecase/mutation"
)

const resource = "comments"

// API is the subset of the backend client the comment use cases need.
type API interface {
	CreateComment(ctx context.Context, in cms.CommentInput) (*entity.Comment, error)
	UpdateComment(ctx context.Context, documentID, content string) (*entity.Comment, error)
	DeleteComment(ctx context.Context, documentID string) error
	ListCommentsByArticle(ctx context.Context, articleDocumentID string) (*cms.CommentPage, error)
}

// Service provides comment use cases. Refresher re-fetches whatever view
// shows the comments, usually the article detail.
type Service struct {
	API       API
	Refresher listing.Refresher
	Notifier  notifier.Notifier
	Logger    *slog.Logger
}

func (s *Service) reporter() mutation.Reporter {
	return mutation.Reporter{Notifier: s.Notifier, Refresher: s.Refresher, Logger: s.Logger}
}

// Create adds a comment to an article.
func (s *Service) Create(ctx context.Context, articleDocumentID, content string) (*entity.Comment, error) {
	r := s.reporter()
	if strings.TrimSpace(articleDocumentID) == "" {
		return nil, r.Rejected(ctx, "Failed to add comment", ErrMissingArticle)
	}
	if err := entity.ValidateCommentContent(content); err != nil {
		return nil, r.Rejected(ctx, "Failed to add comment", err)
	}

	created, err := s.API.CreateComment(ctx, cms.CommentInput{
		Content: strings.TrimSpace(content),
		Article: articleDocumentID,
	})
	if err != nil {
		return nil, r.Failed(ctx, resource, "create", "Failed to add comment", fmt.Errorf("create comment: %w", err))
	}

	r.Succeeded(ctx, resource, "create", "Comment added", "")
	return created, nil
}

// Update replaces a comment's content.
func (s *Service) Update(ctx context.Context, documentID, content string) (*entity.Comment, error) {
	r := s.reporter()
	if strings.TrimSpace(documentID) == "" {
		return nil, r.Rejected(ctx, "Failed to update comment", ErrMissingDocumentID)
	}
	if err := entity.ValidateCommentContent(content); err != nil {
		return nil, r.Rejected(ctx, "Failed to update comment", err)
	}

	updated, err := s.API.UpdateComment(ctx, documentID, strings.TrimSpace(content))
	if err != nil {
		return nil, r.Failed(ctx, resource, "update", "Failed to update comment", fmt.Errorf("update comment: %w", err))
	}

	r.Succeeded(ctx, resource, "update", "Comment updated", "")
	return updated, nil
}

// Delete removes a comment.
func (s *Service) Delete(ctx context.Context, documentID string) error {
	r := s.reporter()
	if strings.TrimSpace(documentID) == "" {
		return r.Rejected(ctx, "Failed to delete comment", ErrMissingDocumentID)
	}

	if err := s.API.DeleteComment(ctx, documentID); err != nil {
		return r.Failed(ctx, resource, "delete", "Failed to delete comment", fmt.Errorf("delete comment: %w", err))
	}

	r.Succeeded(ctx, resource, "delete", "Comment deleted", "")
	return nil
}

// ListByArticle returns an article's comments, newest first.
func (s *Service) ListByArticle(ctx context.Context, articleDocumentID string) ([]entity.Comment, error) {
	if strings.TrimSpace(articleDocumentID) == "" {
		return nil, ErrMissingArticle
	}
	page, err := s.API.ListCommentsByArticle(ctx, articleDocumentID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	entity.SortCommentsNewestFirst(page.Comments)
	return page.Comments, nil
}
