package notifier

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"cmsdesk/internal/utils/text"
)

// ConsoleNotifier writes one line per notification, e.g.
//
//	[success] Article created: "Bali" was saved
type ConsoleNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsoleNotifier creates a notifier that writes to out.
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

// Notify writes n to the underlying writer. Write errors are ignored.
func (c *ConsoleNotifier) Notify(_ context.Context, n Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(c.out, Format(n)+"\n")
}

// Format renders a notification as a single line.
func Format(n Notification) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", n.Level, n.Title)
	if msg := text.SingleLine(n.Message); msg != "" {
		b.WriteString(": ")
		b.WriteString(msg)
	}
	return b.String()
}
