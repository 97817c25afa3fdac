package bloom_test

import (
	"fmt"
	"testing"

	"github.com/FenadoAI/newsbytes/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_SeenBefore(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.SeenBefore("https://example.com/a"))
	assert.True(t, f.SeenBefore("https://example.com/a"))
	assert.False(t, f.SeenBefore("https://example.com/b"))
}

func TestFilter_Test(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Test("https://example.com/x"))
	f.SeenBefore("https://example.com/x")
	assert.True(t, f.Test("https://example.com/x"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(10000, 0.01)
	for i := 0; i < 100; i++ {
		f.SeenBefore(fmt.Sprintf("https://example.com/%d", i))
	}

	count := f.EstimatedCount()
	assert.InDelta(t, 100, float64(count), 10)
}
