package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_HasPrefix(t *testing.T) {
	got, err := Generate(PrefixCard)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "card-"))
	// prefix + "-" + 21-char nanoid
	assert.Len(t, got, len(PrefixCard)+1+21)
}

func TestGenerate_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		got, err := Generate(PrefixBoard)
		require.NoError(t, err)
		assert.False(t, seen[got], "duplicate id %s", got)
		seen[got] = true
	}
}

func TestMustGenerate(t *testing.T) {
	got := MustGenerate(PrefixColumn)
	assert.True(t, strings.HasPrefix(got, "col-"))
}
