package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestULIDNew(t *testing.T) {
	g := ULID{}

	seen := make(map[string]struct{})
	var prev string
	for i := 0; i < 100; i++ {
		id, err := g.New()
		require.NoError(t, err)
		assert.Len(t, id, 26)

		_, dup := seen[id]
		assert.False(t, dup, "ids must be unique")
		seen[id] = struct{}{}

		if prev != "" {
			assert.Greater(t, id, prev, "ids generated in sequence sort ascending")
		}
		prev = id
	}
}
