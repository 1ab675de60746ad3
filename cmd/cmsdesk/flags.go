package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// newFlagSet returns a subcommand flag set that reports errors instead of exiting.
func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// parseWithID parses args of the form "ID [flags]" or "[flags]" and
// returns the leading positional argument, if any.
func parseWithID(fs *flag.FlagSet, args []string) (string, error) {
	var id string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		id, args = args[0], args[1:]
	}
	if err := fs.Parse(args); err != nil {
		return "", fmt.Errorf("%w: %v", errUsage, err)
	}
	if id == "" && fs.NArg() > 0 {
		id = fs.Arg(0)
	}
	return id, nil
}

// requireID fails with a usage error when id is empty.
func requireID(command, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: %s requires a document id", errUsage, command)
	}
	return nil
}

// subcommand splits "verb rest..." and fails when verb is missing.
func subcommand(group string, args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%w: %s needs a subcommand", errUsage, group)
	}
	return args[0], args[1:], nil
}
