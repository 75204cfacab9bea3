// Package gemini provides a pagesum.Completer backed by Google Gemini.
package gemini

import (
	"context"
	"errors"

	"github.com/fwojciec/pagesum"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// defaultTemperature keeps summaries factual without being fully greedy.
const defaultTemperature = float32(0.5)

// Ensure Completer implements pagesum.Completer at compile time.
var _ pagesum.Completer = (*Completer)(nil)

// Completer implements pagesum.Completer using the Gemini API.
type Completer struct {
	client      *genai.Client
	model       string
	temperature float32
}

// Option configures a Completer.
type Option func(*Completer)

// WithModel overrides the default model identifier.
func WithModel(model string) Option {
	return func(c *Completer) {
		if model != "" {
			c.model = model
		}
	}
}

// NewCompleter creates a new Completer using the given client.
func NewCompleter(client *genai.Client, opts ...Option) *Completer {
	c := &Completer{
		client:      client,
		model:       DefaultModel,
		temperature: defaultTemperature,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Model returns the model identifier used for completions.
func (c *Completer) Model() string {
	return c.model
}

// Complete sends the prompt to Gemini and returns the generated text.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", pagesum.Errorf(pagesum.EINVALID, "prompt required")
	}

	temp := c.temperature
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", classify(err)
	}
	if result == nil {
		return "", pagesum.Errorf(pagesum.EINTERNAL, "gemini returned nil result")
	}

	text := result.Text()
	if text == "" {
		return "", pagesum.Errorf(pagesum.EINTERNAL, "gemini returned empty completion")
	}

	return text, nil
}

// classify maps Gemini API errors onto application error codes so the batch
// can distinguish throttling and credential problems from transient outages.
func classify(err error) error {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch {
	case apiErr.Code == 429:
		return pagesum.Errorf(pagesum.ERATELIMIT, "gemini rate limited: %s", apiErr.Message)
	case apiErr.Code == 401 || apiErr.Code == 403:
		return pagesum.Errorf(pagesum.EUNAUTHORIZED, "gemini auth failed: %s", apiErr.Message)
	case apiErr.Code >= 500:
		return pagesum.Errorf(pagesum.EUNAVAILABLE, "gemini unavailable: %s", apiErr.Message)
	default:
		return err
	}
}
