package Recipes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func masteryBook(t *testing.T) *Book {
	t.Helper()
	b := NewBook()
	for _, r := range []Recipe{
		{Name: "A", Difficulty: 1},
		{Name: "B", Difficulty: 2},
		{Name: "C", Difficulty: 3, Mastered: true},
	} {
		require.True(t, b.AddRecipe(r))
	}
	return b
}

func TestMasteryPoints(t *testing.T) {
	b := masteryBook(t)
	assert.Equal(t, -1, b.CalculateMasteryPoints("unknown-id"))
	assert.Equal(t, 0, b.CalculateMasteryPoints("C"))
	assert.Equal(t, 2, b.CalculateMasteryPoints("B"))
	assert.Equal(t, 1, b.CalculateMasteryPoints("A"))
}

func TestMasteryPoints_WholeTree(t *testing.T) {
	b := NewBook()
	// "m" is the root, the easier recipes sit on both sides of it and below "z".
	for _, r := range []Recipe{
		{Name: "m", Difficulty: 5},
		{Name: "c", Difficulty: 1},
		{Name: "z", Difficulty: 9},
		{Name: "x", Difficulty: 2},
		{Name: "y", Difficulty: 5},
		{Name: "d", Difficulty: 7},
		{Name: "a", Difficulty: 4, Mastered: true},
	} {
		require.True(t, b.AddRecipe(r))
	}
	assert.Equal(t, 4, b.CalculateMasteryPoints("m"))
	assert.Equal(t, 4, b.CalculateMasteryPoints("y"))
	assert.Equal(t, 1, b.CalculateMasteryPoints("c"))
	assert.Equal(t, 6, b.CalculateMasteryPoints("z"))
	assert.Equal(t, 0, b.CalculateMasteryPoints("a"))

	n := b.FindRecipe("c")
	r := n.Item()
	r.Mastered = true
	n.SetItem(r)
	assert.Equal(t, 3, b.CalculateMasteryPoints("m"))
}

func TestMasteryPlan(t *testing.T) {
	b := masteryBook(t)
	require.True(t, b.AddRecipe(Recipe{Name: "AA", Difficulty: 2}))
	require.True(t, b.AddRecipe(Recipe{Name: "0", Difficulty: 2}))

	plan, ok := b.MasteryPlan("B")
	require.True(t, ok)
	var names []string
	for _, r := range plan {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"A", "0", "AA", "B"}, names)
	assert.Len(t, plan, b.CalculateMasteryPoints("B"))

	plan, ok = b.MasteryPlan("C")
	assert.True(t, ok)
	assert.Empty(t, plan)

	_, ok = b.MasteryPlan("unknown-id")
	assert.False(t, ok)
}
