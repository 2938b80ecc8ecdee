package bookings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReference_Format(t *testing.T) {
	ref, err := GenerateReference()

	require.NoError(t, err)
	assert.Len(t, ref, referenceLength)
	for _, ch := range ref {
		assert.True(t, strings.ContainsRune(referenceCharset, ch),
			"reference contains character outside charset: %q", ch)
	}
}

func TestGenerateReference_Varies(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		ref, err := GenerateReference()
		require.NoError(t, err)
		seen[ref] = struct{}{}
	}

	// 100 draws from a ~2.8e12 space colliding would point at a broken
	// random source.
	assert.Len(t, seen, 100)
}
