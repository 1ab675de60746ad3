package listing

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"cmsdesk/internal/common/pagination"
	"cmsdesk/internal/domain/entity"
	"cmsdesk/internal/infra/cms"
	"cmsdesk/internal/infra/cms/query"
	"cmsdesk/internal/observability/metrics"
)

// ErrClosed is returned by Refresh once the controller has been closed.
var ErrClosed = errors.New("list controller closed")

// DefaultDebounce is used when Options leaves Debounce zero. A zero
// PageSize falls back to pagination.DefaultConfig.
const DefaultDebounce = 500 * time.Millisecond

// ArticleLister fetches one page of articles. *cms.Client satisfies it.
type ArticleLister interface {
	ListArticles(ctx context.Context, req query.Request) (*cms.ArticlePage, error)
}

// Options configures an ArticleList.
type Options struct {
	// Debounce is how long filter input must be stable before it is applied.
	Debounce time.Duration

	// PageSize is sent with every request.
	PageSize int

	// Logger receives fetch failures. Defaults to slog.Default().
	Logger *slog.Logger

	// OnChange is called with a fresh snapshot after every state change.
	// It runs without the controller lock held and may be called from
	// timer goroutines.
	OnChange func(State)

	// OrderedResponses discards responses older than the last applied one.
	// When false the last response to arrive wins.
	OrderedResponses bool
}

// State is a point-in-time snapshot of an ArticleList.
type State struct {
	TitleInput     string
	CategoryInput  string
	ActiveTitle    string
	ActiveCategory string

	Page       int
	Articles   []entity.Article
	Pagination pagination.Metadata

	Loading   bool
	LastError error

	HasPrev bool
	HasNext bool
}

// ArticleList is the article list controller. It is safe for concurrent use.
type ArticleList struct {
	lister ArticleLister
	opts   Options
	logger *slog.Logger

	mu             sync.Mutex
	baseCtx        context.Context
	mounted        bool
	closed         bool
	titleInput     string
	categoryInput  string
	activeTitle    string
	activeCategory string
	page           int
	articles       []entity.Article
	meta           pagination.Metadata
	inFlight       int
	lastErr        error

	timer       *time.Timer
	debounceGen uint64

	seq     uint64 // last issued request number
	applied uint64 // request number of the response currently shown

	wg sync.WaitGroup
}

// New creates an ArticleList on page 1 with empty filters.
// Nothing is fetched until Mount is called.
func New(lister ArticleLister, opts Options) *ArticleList {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	opts.PageSize = pagination.Params{PageSize: opts.PageSize}.WithDefaults(pagination.DefaultConfig()).PageSize
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ArticleList{
		lister:  lister,
		opts:    opts,
		logger:  logger.With(slog.String("list", "articles")),
		baseCtx: context.Background(),
		page:    1,
	}
}

// Mount performs the initial fetch. Only the first call fetches; later
// calls return nil immediately. ctx also becomes the parent context of
// fetches triggered by input changes.
func (l *ArticleList) Mount(ctx context.Context) error {
	l.mu.Lock()
	if l.mounted || l.closed {
		l.mu.Unlock()
		return nil
	}
	l.mounted = true
	l.baseCtx = context.WithoutCancel(ctx)
	l.mu.Unlock()

	return l.fetch(ctx)
}

// SetTitleInput records raw title filter text and restarts the debounce timer.
func (l *ArticleList) SetTitleInput(s string) {
	l.mu.Lock()
	l.titleInput = s
	l.restartDebounceLocked()
	l.mu.Unlock()
	l.emit()
}

// SetCategoryInput records raw category filter text and restarts the debounce timer.
func (l *ArticleList) SetCategoryInput(s string) {
	l.mu.Lock()
	l.categoryInput = s
	l.restartDebounceLocked()
	l.mu.Unlock()
	l.emit()
}

// restartDebounceLocked arms the shared timer. A timer that already fired
// but has not yet taken the lock sees a newer generation and does nothing.
func (l *ArticleList) restartDebounceLocked() {
	if l.closed {
		return
	}
	if l.timer != nil {
		l.timer.Stop()
	}
	l.debounceGen++
	gen := l.debounceGen
	l.timer = time.AfterFunc(l.opts.Debounce, func() { l.promote(gen) })
}

// promote copies both raw inputs into the active filters and fetches if
// either changed.
func (l *ArticleList) promote(gen uint64) {
	l.mu.Lock()
	if l.closed || gen != l.debounceGen {
		l.mu.Unlock()
		return
	}
	changed := l.titleInput != l.activeTitle || l.categoryInput != l.activeCategory
	l.activeTitle = l.titleInput
	l.activeCategory = l.categoryInput
	shouldFetch := changed && l.mounted
	l.mu.Unlock()

	if !changed {
		return
	}
	l.emit()
	if shouldFetch {
		l.fetchAsync()
	}
}

// SetPage moves to page n and fetches it. n is not checked against the
// reported page count.
func (l *ArticleList) SetPage(n int) {
	l.mu.Lock()
	if l.closed || n == l.page {
		l.mu.Unlock()
		return
	}
	l.page = n
	shouldFetch := l.mounted
	l.mu.Unlock()

	l.emit()
	if shouldFetch {
		l.fetchAsync()
	}
}

// NextPage advances one page unless the current metadata disallows it.
func (l *ArticleList) NextPage() bool {
	l.mu.Lock()
	allowed := l.hasNextLocked()
	next := l.page + 1
	l.mu.Unlock()

	if allowed {
		l.SetPage(next)
	}
	return allowed
}

// PrevPage goes back one page unless already on the first.
func (l *ArticleList) PrevPage() bool {
	l.mu.Lock()
	allowed := l.hasPrevLocked()
	prev := l.page - 1
	l.mu.Unlock()

	if allowed {
		l.SetPage(prev)
	}
	return allowed
}

// Refresh re-runs the current request and waits for it.
func (l *ArticleList) Refresh(ctx context.Context) error {
	l.mu.Lock()
	closed := l.closed
	l.mu.Unlock()
	if closed {
		return ErrClosed
	}
	return l.fetch(ctx)
}

// Flush promotes filter input still waiting on the debounce timer right
// away. It does nothing when no timer is pending.
func (l *ArticleList) Flush() {
	l.mu.Lock()
	pending := !l.closed && l.timer != nil && l.timer.Stop()
	gen := l.debounceGen
	l.mu.Unlock()

	if pending {
		l.promote(gen)
	}
}

// Wait blocks until every fetch started by an input change has returned.
func (l *ArticleList) Wait() {
	l.wg.Wait()
}

// Close stops the debounce timer. Fetches already in flight are not
// aborted, but their results are dropped.
func (l *ArticleList) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	if l.timer != nil {
		l.timer.Stop()
	}
}

// State returns a snapshot of the controller.
func (l *ArticleList) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stateLocked()
}

func (l *ArticleList) stateLocked() State {
	articles := make([]entity.Article, len(l.articles))
	copy(articles, l.articles)
	return State{
		TitleInput:     l.titleInput,
		CategoryInput:  l.categoryInput,
		ActiveTitle:    l.activeTitle,
		ActiveCategory: l.activeCategory,
		Page:           l.page,
		Articles:       articles,
		Pagination:     l.meta,
		Loading:        l.inFlight > 0,
		LastError:      l.lastErr,
		HasPrev:        l.hasPrevLocked(),
		HasNext:        l.hasNextLocked(),
	}
}

func (l *ArticleList) hasPrevLocked() bool {
	return l.page > 1
}

func (l *ArticleList) hasNextLocked() bool {
	return l.page < l.meta.PageCount
}

func (l *ArticleList) fetchAsync() {
	l.mu.Lock()
	ctx := l.baseCtx
	l.mu.Unlock()

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		_ = l.fetch(ctx)
	}()
}

// fetch issues one request for the current page and filters and applies
// the response according to the ordering policy.
func (l *ArticleList) fetch(ctx context.Context) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	l.seq++
	seq := l.seq
	params := pagination.Params{Page: l.page, PageSize: l.opts.PageSize}
	if err := params.Validate(pagination.DefaultConfig()); err != nil {
		l.lastErr = err
		l.mu.Unlock()
		l.emit()
		return err
	}
	req := query.ArticleListRequest(params.Page, params.PageSize, l.activeTitle, l.activeCategory)
	l.inFlight++
	l.mu.Unlock()
	l.emit()

	pagination.LogRequest(l.logger, "articles", params)
	start := time.Now()
	page, err := l.lister.ListArticles(ctx, req)
	duration := time.Since(start)
	pagination.RecordDuration("articles", duration.Seconds())
	pagination.RecordRequest(err == nil, params.Page)
	metrics.RecordListFetch("articles", err == nil)

	l.mu.Lock()
	l.inFlight--
	if l.closed {
		l.mu.Unlock()
		return err
	}
	if l.opts.OrderedResponses && seq < l.applied {
		l.mu.Unlock()
		metrics.RecordStaleResponse("articles")
		l.logger.Debug("discarding stale response",
			slog.Uint64("seq", seq),
			slog.Uint64("applied", l.applied))
		l.emit()
		return nil
	}
	if err != nil {
		l.lastErr = err
		l.mu.Unlock()
		pagination.LogError(l.logger, "articles", params, err)
		l.emit()
		return err
	}
	l.articles = page.Articles
	l.meta = page.Pagination
	l.lastErr = nil
	l.applied = seq
	l.mu.Unlock()

	pagination.LogResponse(l.logger, "articles", page.Pagination, len(page.Articles), duration)
	pagination.UpdateTotalCount("articles", page.Pagination.Total)
	l.emit()
	return nil
}

func (l *ArticleList) emit() {
	if l.opts.OnChange == nil {
		return
	}
	l.opts.OnChange(l.State())
}
