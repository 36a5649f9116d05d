package Recipes

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-m-twostay/recipebook/Trees"
)

func sampleBook(t *testing.T) *Book {
	t.Helper()
	b := NewBook()
	require.True(t, b.AddRecipe(Recipe{"a", 5, "first", false}))
	require.True(t, b.AddRecipe(Recipe{"b", 3, "second", false}))
	require.True(t, b.AddRecipe(Recipe{"c", 8, "third", false}))
	return b
}

func TestBook_EndToEnd(t *testing.T) {
	b := sampleBook(t)

	n := b.FindRecipe("b")
	require.NotNil(t, n)
	assert.Equal(t, 3, n.Item().Difficulty)

	assert.True(t, b.RemoveRecipe("b"))
	assert.Nil(t, b.FindRecipe("b"))
	assert.False(t, b.RemoveRecipe("b"))

	assert.False(t, b.AddRecipe(Recipe{Name: "a", Difficulty: 1}))
	assert.Equal(t, 5, b.FindRecipe("a").Item().Difficulty, "existing recipe must be kept")
	assert.Equal(t, 2, b.Len())
}

func TestBook_Zero(t *testing.T) {
	var r Recipe
	assert.Equal(t, Recipe{Name: "", Difficulty: 0, Description: "", Mastered: false}, r)

	b := NewBook()
	assert.Nil(t, b.FindRecipe(""))
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Recipes())
	assert.False(t, b.RemoveRecipe("x"))
}

func TestRecipe_Compare(t *testing.T) {
	a := Recipe{Name: "apple", Difficulty: 9}
	b := Recipe{Name: "banana", Difficulty: 1}
	assert.True(t, a.LessThan(b))
	assert.False(t, b.LessThan(a))
	assert.True(t, b.GreaterThan(a))
	assert.True(t, a.Equals(Recipe{Name: "apple", Difficulty: 2, Mastered: true}))
	assert.False(t, a.Equals(b))
}

func TestBook_Uniqueness(t *testing.T) {
	rg := rand.New(rand.NewSource(1))
	b := NewBook()
	seen := make(map[string]bool)
	for range 2000 {
		name := fmt.Sprintf("r%03d", rg.Intn(500))
		assert.Equal(t, !seen[name], b.AddRecipe(Recipe{Name: name, Difficulty: rg.Intn(10)}))
		seen[name] = true
	}
	assert.Equal(t, len(seen), b.Len())
	assert.False(t, b.Corrupt())

	counts := make(map[string]int)
	b.PreOrder(func(n *Trees.Node[Recipe]) bool {
		counts[n.Item().Name]++
		return true
	})
	for name, c := range counts {
		assert.Equal(t, 1, c, "recipe %s reachable %d times", name, c)
	}
}

func TestBook_OrderAfterMutations(t *testing.T) {
	rg := rand.New(rand.NewSource(2))
	b := NewBook()
	oracle := btree.NewG[string](4, btree.Less[string]())
	for range 3000 {
		name := fmt.Sprintf("%04d", rg.Intn(800))
		if rg.Intn(3) == 0 {
			_, had := oracle.Delete(name)
			assert.Equal(t, had, b.RemoveRecipe(name))
		} else {
			_, had := oracle.ReplaceOrInsert(name)
			assert.Equal(t, !had, b.AddRecipe(Recipe{Name: name}))
		}
		require.False(t, b.Corrupt())
	}
	var want []string
	oracle.Ascend(func(s string) bool {
		want = append(want, s)
		return true
	})
	var got []string
	for _, r := range b.Recipes() {
		got = append(got, r.Name)
	}
	assert.Equal(t, want, got)
}

func TestBook_Clear(t *testing.T) {
	b := sampleBook(t)
	b.Clear()
	assert.Nil(t, b.Root())
	for _, name := range []string{"a", "b", "c"} {
		assert.Nil(t, b.FindRecipe(name))
	}
	assert.Equal(t, -1, b.CalculateMasteryPoints("a"))
	for _, name := range []string{"a", "b", "c"} {
		assert.True(t, b.AddRecipe(Recipe{Name: name}))
	}
	assert.Equal(t, 3, b.Len())
}

func TestBook_Balance(t *testing.T) {
	b := NewBook()
	for i := range 200 {
		require.True(t, b.AddRecipe(Recipe{
			Name:        fmt.Sprintf("recipe-%03d", i),
			Difficulty:  i % 10,
			Description: fmt.Sprintf("description %d", i),
			Mastered:    i%3 == 0,
		}))
	}
	require.False(t, b.Balanced())
	before := b.Recipes()

	b.Balance()
	assert.True(t, b.Balanced())
	assert.False(t, b.Corrupt())
	assert.Equal(t, before, b.Recipes())
	assert.Equal(t, uint(8), b.Height())

	b.Balance()
	assert.Equal(t, before, b.Recipes())
}

func TestBook_BalanceSmall(t *testing.T) {
	b := NewBook()
	b.Balance()
	assert.Nil(t, b.Root())

	b = sampleBook(t)
	b.Balance()
	assert.Equal(t, "b", b.Root().Item().Name)
	assert.Equal(t, "a", b.Root().Left().Item().Name)
	assert.Equal(t, "c", b.Root().Right().Item().Name)
	assert.Equal(t, 3, b.FindRecipe("b").Item().Difficulty)
}

func TestBook_Levels(t *testing.T) {
	assert.Empty(t, NewBook().Levels())

	b := sampleBook(t)
	require.True(t, b.AddRecipe(Recipe{Name: "0"}))
	levels := b.Levels()
	require.Len(t, levels, 3)
	assert.Equal(t, []Recipe{{"a", 5, "first", false}}, levels[0])
	assert.Equal(t, []string{"0", "b"}, []string{levels[1][0].Name, levels[1][1].Name})
	assert.Equal(t, "c", levels[2][0].Name)

	b.Balance()
	assert.Len(t, b.Levels(), 3)
}

func TestBook_BalanceRandom(t *testing.T) {
	rg := rand.New(rand.NewSource(3))
	for range 20 {
		b := NewBook()
		for range rg.Intn(300) {
			b.AddRecipe(Recipe{Name: fmt.Sprint(rg.Int()), Difficulty: rg.Intn(5), Mastered: rg.Intn(2) == 0})
		}
		points := make(map[string]int)
		for _, r := range b.Recipes() {
			points[r.Name] = b.CalculateMasteryPoints(r.Name)
		}
		before := b.Recipes()
		b.Balance()
		require.True(t, b.Balanced())
		require.Equal(t, before, b.Recipes())
		for name, p := range points {
			assert.Equal(t, p, b.CalculateMasteryPoints(name), "mastery of %s changed by balancing", name)
		}
	}
}
