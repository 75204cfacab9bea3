package pagesum

import "context"

// Completer generates text from a prompt using an LLM backend.
// Each call makes exactly one outbound API request.
type Completer interface {
	// Complete sends the prompt and returns the generated text.
	// Failures surface as application errors: ERATELIMIT when throttled,
	// EUNAUTHORIZED on credential problems, EUNAVAILABLE when the service
	// cannot be reached.
	Complete(ctx context.Context, prompt string) (string, error)

	// Model returns the model identifier used for completions.
	Model() string
}
