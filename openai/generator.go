// Package openai implements newsbytes.Generator using an OpenAI-compatible
// chat completion API.
package openai

import (
	"context"

	"github.com/FenadoAI/newsbytes"
	"github.com/sashabaranov/go-openai"
)

// Generation parameters. Low temperature keeps the marker-formatted
// output stable; max tokens covers a 60-word summary with headroom.
const (
	defaultModel = openai.GPT4oMini
	maxTokens    = 200
	temperature  = 0.2
)

// Ensure Generator implements newsbytes.Generator at compile time.
var _ newsbytes.Generator = (*Generator)(nil)

// Generator generates text using a chat completion endpoint. Any
// OpenAI-compatible provider works through the BaseURL option.
type Generator struct {
	client *openai.Client
	model  string
}

// Config holds connection settings for the Generator.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// NewGenerator creates a new Generator.
func NewGenerator(cfg Config) *Generator {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &Generator{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

// Generate sends the prompt as a single user message and returns the
// completion text.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", newsbytes.Errorf(newsbytes.EINVALID, "prompt required")
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", newsbytes.Errorf(newsbytes.EINTERNAL, "chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
