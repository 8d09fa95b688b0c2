package llm

import "context"

// Provider is the generation backend contract: one external call per
// invocation, no internal retry. Retries, if ever wanted, belong to callers.
type Provider interface {
	// Generate returns the generated page markup for a prompt. resumeURL is
	// the chat's stored resume reference; how (or whether) the backend uses
	// it is implementation detail.
	Generate(ctx context.Context, prompt, resumeURL string) (string, error)
	Close() error
}
