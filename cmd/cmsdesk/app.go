package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"cmsdesk/internal/config"
	"cmsdesk/internal/controller/listing"
	"cmsdesk/internal/domain/entity"
	"cmsdesk/internal/infra/cms"
	"cmsdesk/internal/infra/cms/query"
	"cmsdesk/internal/infra/notifier"
	"cmsdesk/internal/observability/logging"
	"cmsdesk/internal/session"
	articleUC "cmsdesk/internal/usecase/article"
	authUC "cmsdesk/internal/usecase/auth"
	categoryUC "cmsdesk/internal/usecase/category"
	commentUC "cmsdesk/internal/usecase/comment"
)

// app wires the console's dependencies for one invocation.
type app struct {
	cfg     *config.Config
	format  string
	stdout  io.Writer
	stderr  io.Writer
	logger  *slog.Logger
	session *session.Session
	client  *cms.Client

	notifier notifier.Notifier
	recorder *notifier.Recorder

	articles   *listing.ArticleList
	categories *listing.Collection[entity.Category]

	// browsing is set while the interactive list is on screen. outMu
	// serializes its redraws with command output and guards listBusy.
	browsing atomic.Bool
	outMu    sync.Mutex
	listBusy bool
}

func newApp(cfg *config.Config, opts globalOptions, stdout, stderr io.Writer) (*app, error) {
	logger := logging.NewWithLevel(cfg.Log.Format, cfg.Log.Level)

	path := cfg.CMS.SessionFile
	if path == "" {
		var err error
		if path, err = session.DefaultFilePath(); err != nil {
			return nil, fmt.Errorf("locate session file: %w", err)
		}
	}
	sess := session.New(session.NewFileStore(path))

	client, err := cms.NewClient(cms.Config{
		BaseURL:        cfg.CMS.BaseURL,
		Timeout:        cfg.CMS.Timeout,
		RateLimitRPS:   cfg.CMS.RateLimitRPS,
		RateLimitBurst: cfg.CMS.RateLimitBurst,
	}, sess)
	if err != nil {
		return nil, err
	}

	var base notifier.Notifier = notifier.NewConsoleNotifier(stderr)
	if opts.output == "json" {
		base = notifier.NewNoOpNotifier()
	}
	recorder := notifier.NewRecorder()

	a := &app{
		cfg:      cfg,
		format:   opts.output,
		stdout:   stdout,
		stderr:   stderr,
		logger:   logger,
		session:  sess,
		client:   client,
		notifier: notifier.Multi{base, recorder},
		recorder: recorder,
	}
	a.articles = listing.New(client, listing.Options{
		Debounce:         cfg.List.Debounce,
		PageSize:         cfg.List.PageSize,
		Logger:           logger,
		OrderedResponses: cfg.List.OrderedResponses,
		OnChange:         a.onArticlesChanged,
	})
	a.categories = listing.NewCollection("categories", func(ctx context.Context) ([]entity.Category, error) {
		page, err := client.ListCategories(ctx, query.Request{})
		if err != nil {
			return nil, err
		}
		return page.Categories, nil
	}, logger)
	return a, nil
}

func (a *app) context(ctx context.Context) context.Context {
	ctx = logging.WithLogger(ctx, a.logger)
	return session.WithSession(ctx, a.session)
}

func (a *app) authService() *authUC.Service {
	return authUC.NewService(a.client, a.session, a.notifier)
}

func (a *app) articleService() *articleUC.Service {
	return &articleUC.Service{
		API:        a.client,
		Categories: a.categories,
		Refresher:  a.articles,
		Notifier:   a.notifier,
		Logger:     a.logger,
	}
}

func (a *app) categoryService() *categoryUC.Service {
	return &categoryUC.Service{
		API:       a.client,
		Refresher: a.categories,
		Notifier:  a.notifier,
		Logger:    a.logger,
	}
}

// commentService refreshes the comment list of one article, or every
// comment when articleID is empty.
func (a *app) commentService(comments *listing.Collection[entity.Comment]) *commentUC.Service {
	return &commentUC.Service{
		API:       a.client,
		Refresher: comments,
		Notifier:  a.notifier,
		Logger:    a.logger,
	}
}

func (a *app) commentCollection(articleID string) *listing.Collection[entity.Comment] {
	return listing.NewCollection("comments", func(ctx context.Context) ([]entity.Comment, error) {
		var (
			page *cms.CommentPage
			err  error
		)
		if articleID != "" {
			page, err = a.client.ListCommentsByArticle(ctx, articleID)
		} else {
			page, err = a.client.ListComments(ctx, query.Request{Populate: []string{query.PopulateAll}})
		}
		if err != nil {
			return nil, err
		}
		entity.SortCommentsNewestFirst(page.Comments)
		return page.Comments, nil
	}, a.logger)
}

func (a *app) dispatch(ctx context.Context, command string, args []string, stdin io.Reader) error {
	ctx = a.context(ctx)
	defer a.articles.Close()

	switch command {
	case "login":
		return a.cmdLogin(ctx, args)
	case "register":
		return a.cmdRegister(ctx, args)
	case "logout":
		return a.cmdLogout(ctx)
	case "me":
		return a.cmdMe(ctx)
	case "articles":
		return a.cmdArticles(ctx, args)
	case "categories":
		return a.cmdCategories(ctx, args)
	case "comments":
		return a.cmdComments(ctx, args)
	case "browse":
		return a.cmdBrowse(ctx, stdin)
	case "help", "-h", "--help":
		printUsage(a.stdout)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}
