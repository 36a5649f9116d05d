package Recipes

import (
	"cmp"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/g-m-twostay/recipebook/Trees"
)

// masteryPoints counts the unmastered recipes with difficulty at most difficulty
// in the whole subtree, regardless of where they sit relative to the target.
func masteryPoints(n *Trees.Node[Recipe], difficulty int) int {
	if n == nil {
		return 0
	}
	points := 0
	if r := n.Item(); !r.Mastered && r.Difficulty <= difficulty {
		points++
	}
	return points + masteryPoints(n.Left(), difficulty) + masteryPoints(n.Right(), difficulty)
}

// CalculateMasteryPoints returns how many recipes still have to be mastered,
// easiest first, before the named recipe is mastered. That is every unmastered
// recipe whose difficulty is at most the named one's, the named recipe included.
// Returns -1 if there's no such recipe and 0 if it's already mastered. Recursive.
// Time: O(n)
func (u *Book) CalculateMasteryPoints(name string) int {
	n := u.FindRecipe(name)
	if n == nil {
		return -1
	}
	if n.Item().Mastered {
		return 0
	}
	return masteryPoints(u.Root(), n.Item().Difficulty)
}

// byDifficulty orders recipes by difficulty, then by name.
func byDifficulty(a, b interface{}) int {
	ra, rb := a.(Recipe), b.(Recipe)
	if c := cmp.Compare(ra.Difficulty, rb.Difficulty); c != 0 {
		return c
	}
	return cmp.Compare(ra.Name, rb.Name)
}

// MasteryPlan lists the recipes counted by CalculateMasteryPoints in the order
// they should be mastered: by difficulty, then by name. The bool is false if
// there's no recipe with that name. A mastered recipe has an empty plan.
func (u *Book) MasteryPlan(name string) ([]Recipe, bool) {
	n := u.FindRecipe(name)
	if n == nil {
		return nil, false
	}
	plan := make([]Recipe, 0)
	target := n.Item()
	if target.Mastered {
		return plan, true
	}
	ordered := redblacktree.NewWith(byDifficulty)
	u.PreOrder(func(n *Trees.Node[Recipe]) bool {
		if r := n.Item(); !r.Mastered && r.Difficulty <= target.Difficulty {
			ordered.Put(r, struct{}{})
		}
		return true
	})
	for _, k := range ordered.Keys() {
		plan = append(plan, k.(Recipe))
	}
	return plan, true
}
