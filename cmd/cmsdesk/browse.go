package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"cmsdesk/internal/common/pagination"
	"cmsdesk/internal/controller/listing"
)

const browseHelp = `Keys:
  t TEXT   type into the title filter (empty clears it)
  c TEXT   type into the category filter
  n / p    next / previous page
  g N      go to page N
  r        reload the current page
  o ID     open an article
  d ID     delete an article
  q        quit

Filter text still pending on q or end of input is applied before exit.`

// onArticlesChanged redraws the list while browsing, once per completed
// fetch. Snapshots from input changes alone are not drawn.
func (a *app) onArticlesChanged(state listing.State) {
	if !a.browsing.Load() {
		return
	}
	a.outMu.Lock()
	defer a.outMu.Unlock()
	if state.Loading {
		a.listBusy = true
		return
	}
	if !a.listBusy {
		return
	}
	a.listBusy = false
	if err := a.renderBrowseState(state); err != nil {
		a.logger.Warn("render article list", slog.Any("error", err))
	}
	a.recorder.Reset()
}

// cmdBrowse drives the article list from line-oriented input until q or EOF.
func (a *app) cmdBrowse(ctx context.Context, stdin io.Reader) error {
	a.browsing.Store(true)
	defer a.browsing.Store(false)

	if err := a.categories.Refresh(ctx); err != nil {
		a.logger.Warn("load categories", slog.Any("error", err))
	}
	if a.format == "text" {
		a.println(browseHelp)
	}
	if err := a.articles.Mount(ctx); err != nil {
		a.logger.Debug("initial article fetch failed", slog.Any("error", err))
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}
		key, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		arg = strings.TrimSpace(arg)

		switch key {
		case "":
			continue
		case "q", "quit":
			a.finishBrowse()
			return nil
		case "t":
			a.articles.SetTitleInput(arg)
		case "c":
			a.articles.SetCategoryInput(arg)
		case "n":
			if !a.articles.NextPage() {
				a.println("Already on the last page.")
			}
			a.articles.Wait()
		case "p":
			if !a.articles.PrevPage() {
				a.println("Already on the first page.")
			}
			a.articles.Wait()
		case "g":
			page, err := pagination.ParsePage(arg)
			if err != nil {
				a.println(err.Error())
				continue
			}
			a.articles.SetPage(page)
			a.articles.Wait()
		case "r":
			_ = a.articles.Refresh(ctx)
		case "o":
			if arg == "" {
				a.println("Usage: o ID")
				continue
			}
			art, err := a.articleService().Get(ctx, arg)
			if err != nil {
				a.println(fmt.Sprintf("Could not load article: %v", err))
				continue
			}
			a.outMu.Lock()
			err = a.renderArticle(art)
			a.outMu.Unlock()
			if err != nil {
				return err
			}
		case "d":
			if arg == "" {
				a.println("Usage: d ID")
				continue
			}
			// The service refreshes the list and reports the outcome.
			_ = a.articleService().Delete(ctx, arg)
			a.articles.Wait()
		case "h", "help", "?":
			a.println(browseHelp)
		default:
			a.println(fmt.Sprintf("Unknown key %q, h for help.", key))
		}
	}
	a.finishBrowse()
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// finishBrowse applies any debounced filter input and waits for its fetch
// before closing the list.
func (a *app) finishBrowse() {
	a.articles.Flush()
	a.articles.Wait()
	a.articles.Close()
}

func (a *app) println(s string) {
	if a.format != "text" {
		return
	}
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintln(a.stdout, s)
}
