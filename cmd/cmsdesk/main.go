// Package main is the cmsdesk console: a terminal front end for the
// articles, categories and comments stored in the content backend.
//
// Usage:
//
//	cmsdesk [-output text|json] [-metrics-addr :9091] <command> [args]
//
// Commands:
//
//	login, register, logout, me
//	articles   list|get|create|update|delete
//	categories list|get|create|update|delete|articles
//	comments   list|create|update|delete
//	browse     interactive article list
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"cmsdesk/internal/config"
	"cmsdesk/internal/infra/cms"
)

// errUsage marks errors caused by bad command-line input.
var errUsage = errors.New("usage error")

type globalOptions struct {
	output      string
	metricsAddr string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("cmsdesk", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts globalOptions
	fs.StringVar(&opts.output, "output", "text", "Output format: text or json")
	fs.StringVar(&opts.metricsAddr, "metrics-addr", cfg.Metrics.Addr, "Serve /metrics and /health on this address while running")
	fs.Usage = func() { printUsage(stderr) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if opts.output != "text" && opts.output != "json" {
		fmt.Fprintf(stderr, "Error: -output must be text or json, got %q\n", opts.output)
		return 2
	}

	rest := fs.Args()
	if len(rest) == 0 {
		printUsage(stderr)
		return 2
	}

	a, err := newApp(cfg, opts, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if opts.metricsAddr != "" {
		metricsCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		startMetricsServer(metricsCtx, a.logger, opts.metricsAddr)
	}

	if err := a.dispatch(ctx, rest[0], rest[1:], stdin); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 2
		}
		a.logger.Debug("command failed", slog.String("command", rest[0]), slog.Any("error", err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if cms.IsUnauthorized(err) {
			fmt.Fprintln(stderr, "Your session is missing or expired. Run cmsdesk login and try again.")
		}
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cmsdesk [-output text|json] [-metrics-addr addr] <command> [args]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  login -identifier NAME -password PASS")
	fmt.Fprintln(w, "  register -username NAME -email EMAIL -password PASS")
	fmt.Fprintln(w, "  logout")
	fmt.Fprintln(w, "  me")
	fmt.Fprintln(w, "  articles list [-page N] [-title T] [-category C]")
	fmt.Fprintln(w, "  articles get ID")
	fmt.Fprintln(w, "  articles create -title T -description D -category CATEGORY_ID -cover URL")
	fmt.Fprintln(w, "  articles update ID -title T -description D -category CATEGORY_ID -cover URL")
	fmt.Fprintln(w, "  articles delete ID")
	fmt.Fprintln(w, "  categories list|get ID|create|update ID|delete ID|articles NAME [-page N]")
	fmt.Fprintln(w, "  comments list [-article ID]|create -article ID -content TEXT|update ID -content TEXT|delete ID")
	fmt.Fprintln(w, "  browse")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  cmsdesk login -identifier alice -password 'correct horse'")
	fmt.Fprintln(w, "  cmsdesk articles list -title Bali")
	fmt.Fprintln(w, "  cmsdesk -output json categories list")
}
