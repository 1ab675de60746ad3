package main

import (
	"context"
	"fmt"
)

func (a *app) cmdComments(ctx context.Context, args []string) error {
	verb, rest, err := subcommand("comments", args)
	if err != nil {
		return err
	}

	fs := newFlagSet("comments "+verb, a.stderr)
	articleID := fs.String("article", "", "Article document id")
	content := fs.String("content", "", "Comment text")
	id, err := parseWithID(fs, rest)
	if err != nil {
		return err
	}

	comments := a.commentCollection(*articleID)
	svc := a.commentService(comments)

	switch verb {
	case "list":
		if err := comments.Refresh(ctx); err != nil {
			return err
		}
	case "create":
		if _, err := svc.Create(ctx, *articleID, *content); err != nil {
			return err
		}
	case "update":
		if err := requireID("comments update", id); err != nil {
			return err
		}
		if _, err := svc.Update(ctx, id, *content); err != nil {
			return err
		}
	case "delete":
		if err := requireID("comments delete", id); err != nil {
			return err
		}
		if err := svc.Delete(ctx, id); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown comments subcommand %q", errUsage, verb)
	}

	if !comments.Loaded() {
		return nil
	}
	return a.renderComments(comments.Items())
}
