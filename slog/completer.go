package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagesum"
)

// Ensure LoggingCompleter implements pagesum.Completer.
var _ pagesum.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with debug logging.
type LoggingCompleter struct {
	next   pagesum.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next pagesum.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete delegates to the wrapped completer and logs the operation.
func (c *LoggingCompleter) Complete(ctx context.Context, prompt string) (text string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("completion",
			"model", c.next.Model(),
			"prompt_bytes", len(prompt),
			"completion_bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Complete(ctx, prompt)
}

// Model delegates to the wrapped completer.
func (c *LoggingCompleter) Model() string {
	return c.next.Model()
}
