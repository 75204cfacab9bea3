// Package batch orchestrates the summarization pipeline over a list of URLs.
// It coordinates fetching, extraction, markdown conversion, prompt rendering,
// LLM completion, and persistence of the resulting summaries.
package batch

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"net/url"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagesum"
)

// FailurePolicy controls how the runner reacts to per-URL failures.
type FailurePolicy int

const (
	// ContinueOnError logs a failed URL and moves on to the next one.
	ContinueOnError FailurePolicy = iota

	// FailFast aborts the batch on the first per-URL failure.
	FailFast
)

// Runner drives the summarization pipeline. URLs are processed strictly
// sequentially in source order; one page is fully fetched, summarized, and
// written before the next begins.
type Runner struct {
	Source    pagesum.URLSource
	Fetcher   pagesum.Fetcher
	Extractor pagesum.Extractor
	Converter pagesum.Converter
	Completer pagesum.Completer
	Writer    pagesum.SummaryWriter

	// Template is the summarization prompt. Defaults to
	// pagesum.DefaultTemplate when empty.
	Template pagesum.Template

	// Catalog, when set, records each summary in addition to the file output.
	Catalog pagesum.SummaryService

	// Limiter, when set, throttles fetches per domain.
	Limiter pagesum.DomainLimiter

	// Policy controls per-URL failure handling. Write failures always abort
	// regardless of policy, since they indicate a broken environment.
	Policy FailurePolicy
}

// Result holds the outcome of a batch run.
type Result struct {
	Processed int
	Saved     int
	Skipped   int
	Failed    int
	Bytes     int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Path      string
	Error     error
}

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Run processes every URL from the source in order. Per-URL fetch and
// completion failures are reported through progress and, under the default
// policy, do not stop the batch. Failures writing output abort immediately.
func (r *Runner) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	urls, err := r.Source.URLs(ctx)
	if err != nil {
		return nil, err
	}

	tmpl := r.Template
	if tmpl == "" {
		tmpl = pagesum.Template(pagesum.DefaultTemplate)
	}

	result := &Result{}
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	for i, pageURL := range urls {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result.Processed++

		summary, err := r.processURL(ctx, i, pageURL, tmpl)
		if err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: i + 1,
					Total:     total,
					URL:       pageURL,
					Error:     err,
				})
			}
			if r.Policy == FailFast {
				return result, err
			}
			continue
		}

		if summary == nil {
			// No extractable content. Not an error.
			result.Skipped++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressSkipped,
					Completed: i + 1,
					Total:     total,
					URL:       pageURL,
				})
			}
			continue
		}

		path, err := r.Writer.WriteSummary(ctx, summary)
		if err != nil {
			return result, err
		}

		if r.Catalog != nil {
			if err := r.Catalog.CreateSummary(ctx, summary); err != nil {
				return result, err
			}
		}

		result.Saved++
		result.Bytes += len(summary.Content)

		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: i + 1,
				Total:     total,
				URL:       pageURL,
				Path:      path,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return result, nil
}

// processURL runs one URL through the pipeline. A nil summary with nil error
// means the page had no extractable content and should be skipped.
func (r *Runner) processURL(ctx context.Context, position int, pageURL string, tmpl pagesum.Template) (*pagesum.Summary, error) {
	if r.Limiter != nil {
		if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
			if err := r.Limiter.Wait(ctx, u.Host); err != nil {
				return nil, err
			}
		}
	}

	html, err := r.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	extracted, err := r.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(extracted.ContentHTML) == "" {
		return nil, nil
	}

	markdown, err := r.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, err
	}

	text, err := r.Completer.Complete(ctx, tmpl.Render(markdown))
	if err != nil {
		return nil, err
	}

	return &pagesum.Summary{
		SourceURL:   pageURL,
		Title:       extracted.Title,
		Content:     text,
		ContentHash: computeHash(text),
		Model:       r.Completer.Model(),
		Position:    position,
	}, nil
}

// computeHash returns the xxHash of content as a hex string.
func computeHash(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}
