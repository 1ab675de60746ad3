package main

import (
	"context"
	"flag"
	"fmt"

	"cmsdesk/internal/common/pagination"
	"cmsdesk/internal/domain/entity"
	"cmsdesk/internal/infra/cms"
	"cmsdesk/internal/infra/cms/query"
)

func (a *app) cmdArticles(ctx context.Context, args []string) error {
	verb, rest, err := subcommand("articles", args)
	if err != nil {
		return err
	}

	switch verb {
	case "list":
		return a.articlesList(ctx, rest)
	case "get":
		return a.articlesGet(ctx, rest)
	case "create":
		return a.articlesWrite(ctx, rest, false)
	case "update":
		return a.articlesWrite(ctx, rest, true)
	case "delete":
		return a.articlesDelete(ctx, rest)
	default:
		return fmt.Errorf("%w: unknown articles subcommand %q", errUsage, verb)
	}
}

func (a *app) articlesList(ctx context.Context, args []string) error {
	fs := newFlagSet("articles list", a.stderr)
	rawPage := fs.String("page", "1", "Page number")
	title := fs.String("title", "", "Exact title, case-insensitive")
	category := fs.String("category", "", "Exact category name, case-insensitive")
	if _, err := parseWithID(fs, args); err != nil {
		return err
	}
	page, err := pagination.ParsePage(*rawPage)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	result, err := a.client.ListArticles(ctx, query.ArticleListRequest(page, a.cfg.List.PageSize, *title, *category))
	if err != nil {
		return err
	}
	return a.renderArticlePage(result.Articles, result.Pagination)
}

func (a *app) articlesGet(ctx context.Context, args []string) error {
	id, err := parseWithID(newFlagSet("articles get", a.stderr), args)
	if err != nil {
		return err
	}
	if err := requireID("articles get", id); err != nil {
		return err
	}

	article, err := a.articleService().Get(ctx, id)
	if cms.IsNotFound(err) {
		return fmt.Errorf("article %q not found: %w", id, err)
	}
	if err != nil {
		return err
	}
	return a.renderArticle(article)
}

func articleFormFlags(fs *flag.FlagSet) *entity.ArticleForm {
	form := &entity.ArticleForm{}
	fs.StringVar(&form.Title, "title", "", "Article title")
	fs.StringVar(&form.Description, "description", "", "Article body")
	fs.StringVar(&form.Category, "category", "", "Category document id")
	fs.StringVar(&form.CoverImageURL, "cover", "", "Cover image URL")
	return form
}

func (a *app) articlesWrite(ctx context.Context, args []string, update bool) error {
	name := "articles create"
	if update {
		name = "articles update"
	}
	fs := newFlagSet(name, a.stderr)
	form := articleFormFlags(fs)
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}
	if update {
		if err := requireID(name, id); err != nil {
			return err
		}
	}

	// The form's category is resolved against the current category list.
	if err := a.categories.Refresh(ctx); err != nil {
		return fmt.Errorf("load categories: %w", err)
	}

	svc := a.articleService()
	var saved *entity.Article
	if update {
		saved, err = svc.Update(ctx, id, *form)
	} else {
		saved, err = svc.Create(ctx, *form)
	}
	if err != nil {
		return err
	}
	if err := a.renderArticle(saved); err != nil {
		return err
	}
	return a.renderListState()
}

func (a *app) articlesDelete(ctx context.Context, args []string) error {
	id, err := parseWithID(newFlagSet("articles delete", a.stderr), args)
	if err != nil {
		return err
	}
	if err := requireID("articles delete", id); err != nil {
		return err
	}

	if err := a.articleService().Delete(ctx, id); err != nil {
		return err
	}
	return a.renderListState()
}

// renderListState prints the article list as re-fetched after a mutation.
// A failed re-fetch leaves a note on stderr; the mutation itself stands.
func (a *app) renderListState() error {
	state := a.articles.State()
	if state.LastError != nil {
		fmt.Fprintf(a.stderr, "Article list could not be refreshed: %v\n", state.LastError)
		return nil
	}
	return a.renderArticlePage(state.Articles, state.Pagination)
}
