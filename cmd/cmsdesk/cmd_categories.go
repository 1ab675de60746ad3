package main

import (
	"context"
	"fmt"

	"cmsdesk/internal/common/pagination"
	"cmsdesk/internal/domain/entity"
)

func (a *app) cmdCategories(ctx context.Context, args []string) error {
	verb, rest, err := subcommand("categories", args)
	if err != nil {
		return err
	}

	switch verb {
	case "list":
		if err := a.categories.Refresh(ctx); err != nil {
			return err
		}
		return a.renderCategories(a.categories.Items())
	case "get":
		return a.categoriesGet(ctx, rest)
	case "create":
		return a.categoriesWrite(ctx, rest, false)
	case "update":
		return a.categoriesWrite(ctx, rest, true)
	case "delete":
		return a.categoriesDelete(ctx, rest)
	case "articles":
		return a.categoriesArticles(ctx, rest)
	default:
		return fmt.Errorf("%w: unknown categories subcommand %q", errUsage, verb)
	}
}

func (a *app) categoriesGet(ctx context.Context, args []string) error {
	id, err := parseWithID(newFlagSet("categories get", a.stderr), args)
	if err != nil {
		return err
	}
	if err := requireID("categories get", id); err != nil {
		return err
	}

	cat, err := a.categoryService().Get(ctx, id)
	if err != nil {
		return err
	}
	return a.renderCategories([]entity.Category{*cat})
}

func (a *app) categoriesWrite(ctx context.Context, args []string, update bool) error {
	name := "categories create"
	if update {
		name = "categories update"
	}
	fs := newFlagSet(name, a.stderr)
	var form entity.CategoryForm
	fs.StringVar(&form.Name, "name", "", "Category name")
	fs.StringVar(&form.Description, "description", "", "Optional description")
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}

	svc := a.categoryService()
	if update {
		if err := requireID(name, id); err != nil {
			return err
		}
		_, err = svc.Update(ctx, id, form)
	} else {
		_, err = svc.Create(ctx, form)
	}
	if err != nil {
		return err
	}
	return a.renderCategories(a.categories.Items())
}

func (a *app) categoriesDelete(ctx context.Context, args []string) error {
	id, err := parseWithID(newFlagSet("categories delete", a.stderr), args)
	if err != nil {
		return err
	}
	if err := requireID("categories delete", id); err != nil {
		return err
	}

	if err := a.categoryService().Delete(ctx, id); err != nil {
		return err
	}
	return a.renderCategories(a.categories.Items())
}

func (a *app) categoriesArticles(ctx context.Context, args []string) error {
	fs := newFlagSet("categories articles", a.stderr)
	rawPage := fs.String("page", "1", "Page number")
	name, err := parseWithID(fs, args)
	if err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("%w: categories articles requires a category name", errUsage)
	}
	page, err := pagination.ParsePage(*rawPage)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	result, err := a.categoryService().Articles(ctx, name, page)
	if err != nil {
		return err
	}
	return a.renderArticlePage(result.Articles, result.Pagination)
}
