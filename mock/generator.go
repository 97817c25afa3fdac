package mock

import (
	"context"

	"github.com/FenadoAI/newsbytes"
)

var _ newsbytes.Generator = (*Generator)(nil)

// Generator is a mock implementation of newsbytes.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, prompt string) (string, error)
}

func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.GenerateFn(ctx, prompt)
}
