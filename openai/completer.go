// Package openai provides a pagesum.Completer backed by the OpenAI
// Chat Completions API.
package openai

import (
	"context"
	"errors"
	"strings"

	"github.com/fwojciec/pagesum"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = openai.ChatModelGPT4o

// defaultTemperature matches the Gemini backend.
const defaultTemperature = 0.5

// Ensure Completer implements pagesum.Completer at compile time.
var _ pagesum.Completer = (*Completer)(nil)

// Completer implements pagesum.Completer using OpenAI chat completions.
type Completer struct {
	client      openai.Client
	model       string
	temperature float64
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

// NewCompleter creates a new Completer. The API key is read once at process
// start and passed in explicitly; the completer holds it read-only.
func NewCompleter(apiKey string, opts ...Option) *Completer {
	c := &Completer{
		client:      openai.NewClient(option.WithAPIKey(apiKey)),
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

// Complete sends the prompt as a single user message and returns the reply.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", pagesum.Errorf(pagesum.EINVALID, "prompt required")
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		return "", classify(err)
	}

	if len(resp.Choices) == 0 {
		return "", pagesum.Errorf(pagesum.EINTERNAL, "openai returned no choices")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", pagesum.Errorf(pagesum.EINTERNAL, "openai returned empty completion")
	}

	return text, nil
}

// classify maps OpenAI API errors onto application error codes.
func classify(err error) error {
	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	switch {
	case apiErr.StatusCode == 429:
		return pagesum.Errorf(pagesum.ERATELIMIT, "openai rate limited: %v", apiErr)
	case apiErr.StatusCode == 401 || apiErr.StatusCode == 403:
		return pagesum.Errorf(pagesum.EUNAUTHORIZED, "openai auth failed: %v", apiErr)
	case apiErr.StatusCode >= 500:
		return pagesum.Errorf(pagesum.EUNAVAILABLE, "openai unavailable: %v", apiErr)
	default:
		return err
	}
}
