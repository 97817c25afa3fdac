// Package gemini implements newsbytes.Generator using Google Gemini.
package gemini

import (
	"context"

	"github.com/FenadoAI/newsbytes"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Generator implements newsbytes.Generator at compile time.
var _ newsbytes.Generator = (*Generator)(nil)

// Generator generates text using the Gemini API.
type Generator struct {
	client *genai.Client
}

// NewGenerator creates a new Generator around an authenticated client.
func NewGenerator(client *genai.Client) *Generator {
	return &Generator{client: client}
}

// Generate sends the prompt and returns the generated text.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", newsbytes.Errorf(newsbytes.EINVALID, "prompt required")
	}

	result, err := g.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", newsbytes.Errorf(newsbytes.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// Low temperature keeps the marker-formatted output stable.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		Temperature: &temp,
	}
}
