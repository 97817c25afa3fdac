package gemini_test

import (
	"context"
	"testing"

	"github.com/FenadoAI/newsbytes"
	"github.com/FenadoAI/newsbytes/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate_ReturnsErrorWhenPromptEmpty(t *testing.T) {
	t.Parallel()

	g := gemini.NewGenerator(nil) // nil client ok for this test

	_, err := g.Generate(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, newsbytes.EINVALID, newsbytes.ErrorCode(err))
	assert.Contains(t, newsbytes.ErrorMessage(err), "prompt required")
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.2, float64(*config.Temperature), 0.001)
}
