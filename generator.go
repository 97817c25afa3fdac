package newsbytes

import "context"

// Generator is an external text-generation capability consumed as an
// opaque request/response contract. Which model and transport back it
// is an implementation concern (see gemini/ and openai/).
type Generator interface {
	// Generate sends a prompt and returns the generated text.
	// The context bounds the call; implementations must not outlive it.
	Generate(ctx context.Context, prompt string) (string, error)
}
