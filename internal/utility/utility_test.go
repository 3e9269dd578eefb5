package utility

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPalindrome(t *testing.T) {
	testCases := []struct {
		word     string
		expected bool
	}{
		{word: "A man, a plan, a canal: Panama", expected: true},
		{word: "hello", expected: false},
		{word: "racecar", expected: true},
		{word: "RaceCar", expected: true},
		{word: "No 'x' in Nixon", expected: true},
		{word: "12321", expected: true},
		{word: "12345", expected: false},
		{word: "été", expected: true},
		{word: "a", expected: true},
		{word: "", expected: true},
		{word: "!!!", expected: true},
		{word: "ab", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.word, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsPalindrome(tc.word))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "amanaplanacanalpanama", string(Normalize("A man, a plan, a canal: Panama")))
	assert.Empty(t, Normalize(" ,.;"))
}

func TestNameGenerator_Shape(t *testing.T) {
	gen := NewNameGenerator()
	for range 200 {
		name := gen.Generate()
		parts := strings.Split(name, " ")
		require.Len(t, parts, 2, name)
		assert.True(t, slices.Contains(adjectives, parts[0]), parts[0])
		assert.True(t, slices.Contains(nouns, parts[1]), parts[1])
	}
}

func TestNameGenerator_Deterministic(t *testing.T) {
	a := NewNameGeneratorWithRand(rand.New(rand.NewPCG(1, 2)))
	b := NewNameGeneratorWithRand(rand.New(rand.NewPCG(1, 2)))
	for range 20 {
		assert.Equal(t, a.Generate(), b.Generate())
	}
}

func TestNameGenerator_CoversLists(t *testing.T) {
	gen := NewNameGeneratorWithRand(rand.New(rand.NewPCG(42, 7)))
	seenAdj := make(map[string]bool)
	seenNoun := make(map[string]bool)
	for range 5000 {
		parts := strings.Split(gen.Generate(), " ")
		seenAdj[parts[0]] = true
		seenNoun[parts[1]] = true
	}
	assert.Len(t, seenAdj, len(adjectives))
	assert.Len(t, seenNoun, len(nouns))
}
