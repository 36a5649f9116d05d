package Recipes

import (
	"log/slog"

	"github.com/g-m-twostay/recipebook/Trees"
)

// Book is a recipe index kept as a binary search tree ordered by recipe name.
// It embeds the generic tree, so Insert, Has, Remove, Root and SetRoot are
// available directly; AddRecipe should be preferred over Insert since Insert
// doesn't reject repeated names.
// A Book isn't safe for concurrent use.
type Book struct {
	*Trees.BST[Recipe]
	logger *slog.Logger
}

// NewBook returns an empty Book.
func NewBook() *Book {
	return &Book{
		BST:    Trees.New(Recipe.LessThan, Recipe.Equals),
		logger: slog.Default().With("system", "recipes"),
	}
}

// WithLogger sets the logger used when loading and returns u.
func (u *Book) WithLogger(logger *slog.Logger) *Book {
	u.logger = logger
	return u
}

// AddRecipe inserts r unless a recipe with the same name is already present, in
// which case the existing one is kept and false is returned.
func (u *Book) AddRecipe(r Recipe) bool {
	if u.Has(r) {
		return false
	}
	u.Insert(r)
	return true
}

// RemoveRecipe removes the recipe with the given name. Returns false if there's none.
func (u *Book) RemoveRecipe(name string) bool {
	return u.Remove(probe(name))
}

func findRecipe(n *Trees.Node[Recipe], name string) *Trees.Node[Recipe] {
	if n == nil {
		return nil
	}
	if n.Item().Name == name {
		return n
	}
	if name < n.Item().Name {
		return findRecipe(n.Left(), name)
	}
	return findRecipe(n.Right(), name)
}

// FindRecipe returns the node holding the recipe with the given name, nil if not
// found. Changing the name through the returned node corrupts the Book. Recursive.
func (u *Book) FindRecipe(name string) *Trees.Node[Recipe] {
	return findRecipe(u.Root(), name)
}

// Clear drops every recipe.
func (u *Book) Clear() {
	u.SetRoot(nil)
}

func inorder(n *Trees.Node[Recipe], rs []Recipe) []Recipe {
	if n == nil {
		return rs
	}
	rs = inorder(n.Left(), rs)
	rs = append(rs, n.Item())
	return inorder(n.Right(), rs)
}

// Recipes in ascending name order.
func (u *Book) Recipes() []Recipe {
	return inorder(u.Root(), make([]Recipe, 0))
}

// Len is the number of recipes.
func (u *Book) Len() int {
	return int(u.Size())
}

// Balance rebuilds the tree so that the subtree heights of every node differ by
// at most 1. The recipes themselves are unchanged.
// Time: O(n)
func (u *Book) Balance() {
	u.SetRoot(Trees.Build(u.Recipes()))
}

// Levels groups the recipes by depth in the tree, each level left to right.
func (u *Book) Levels() [][]Recipe {
	var levels [][]Recipe
	u.LevelOrder(func(n *Trees.Node[Recipe], d uint) bool {
		if int(d) == len(levels) {
			levels = append(levels, nil)
		}
		levels[d] = append(levels[d], n.Item())
		return true
	})
	return levels
}
