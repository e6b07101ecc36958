package dataset

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(Random, 1000, DefaultSeed)
	require.NoError(t, err)
	b, err := Generate(Random, 1000, DefaultSeed)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := Generate(Random, 1000, DefaultSeed+1)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	for _, v := range a {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, randomMax)
	}
}

func TestGeneratePatterns(t *testing.T) {
	const n = 100

	sorted, err := Generate(Sorted, n, 0)
	require.NoError(t, err)
	assert.True(t, slices.IsSorted(sorted))
	assert.Equal(t, 0, sorted[0])
	assert.Equal(t, n-1, sorted[n-1])

	reversed, err := Generate(Reversed, n, 0)
	require.NoError(t, err)
	slices.Reverse(reversed)
	assert.Equal(t, sorted, reversed)

	equal, err := Generate(Equal, n, 0)
	require.NoError(t, err)
	for _, v := range equal {
		require.Equal(t, equalVal, v)
	}

	few, err := Generate(Few, n, DefaultSeed)
	require.NoError(t, err)
	for _, v := range few {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, fewMax)
	}
}

func TestGenerateErrors(t *testing.T) {
	_, err := Generate(Random, -1, 0)
	assert.Error(t, err)

	_, err = Generate("zigzag", 10, 0)
	assert.Error(t, err)

	empty, err := Generate(Random, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestParsePattern(t *testing.T) {
	for _, p := range Patterns() {
		got, err := ParsePattern(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParsePattern("nope")
	assert.Error(t, err)
}
