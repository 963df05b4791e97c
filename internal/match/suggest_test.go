package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosest(t *testing.T) {
	options := []string{"verbose", "size", "dryRun", "help"}

	best, ok := Closest("sise", options, DefaultMinSimilarity)
	assert.True(t, ok)
	assert.Equal(t, "size", best)

	best, ok = Closest("dry-run", options, DefaultMinSimilarity)
	assert.True(t, ok)
	assert.Equal(t, "dryRun", best)

	best, ok = Closest("verbos", options, DefaultMinSimilarity)
	assert.True(t, ok)
	assert.Equal(t, "verbose", best)

	_, ok = Closest("output", options, DefaultMinSimilarity)
	assert.False(t, ok)

	_, ok = Closest("anything", nil, DefaultMinSimilarity)
	assert.False(t, ok)
}
