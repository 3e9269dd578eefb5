package idgen

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9]{10}$`)

func TestGenerate_Format(t *testing.T) {
	gen := New()
	for range 1000 {
		id, err := gen.Generate()
		require.NoError(t, err)
		assert.Regexp(t, idPattern, id)
	}
}

func TestGenerate_CoversAlphabet(t *testing.T) {
	// given
	gen := New()
	seen := make(map[rune]bool)

	// when
	for range 2000 {
		id, err := gen.Generate()
		require.NoError(t, err)
		for _, c := range id {
			seen[c] = true
		}
	}

	// then
	for _, c := range Alphabet {
		assert.True(t, seen[c], "symbol %q never produced", c)
	}
	assert.Len(t, seen, len(Alphabet))
}

func TestGenerate_Distinct(t *testing.T) {
	gen := New()
	ids := make(map[string]struct{}, 10000)
	for range 10000 {
		id, err := gen.Generate()
		require.NoError(t, err)
		ids[id] = struct{}{}
	}
	assert.Len(t, ids, 10000)
}

func TestAlphabet(t *testing.T) {
	assert.Len(t, Alphabet, 62)
	for _, c := range Alphabet {
		assert.Equal(t, 1, strings.Count(Alphabet, string(c)))
	}
}
