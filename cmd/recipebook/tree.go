package main

import (
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/g-m-twostay/recipebook/Recipes"
	"github.com/g-m-twostay/recipebook/Trees"
)

func displayRecipe(r Recipes.Recipe) string {
	mark := "○"
	if r.Mastered {
		mark = "●"
	}
	return fmt.Sprintf("%s %s [%d]", mark, r.Name, r.Difficulty)
}

// walkRecipes adds the children of n to tree, left first. A missing child of an
// inner node is drawn as ∅ to keep left and right apart.
func walkRecipes(n *Trees.Node[Recipes.Recipe], tree treeprint.Tree) {
	if n.IsLeaf() {
		return
	}
	for _, c := range []*Trees.Node[Recipes.Recipe]{n.Left(), n.Right()} {
		if c == nil {
			tree.AddNode("∅")
			continue
		}
		walkRecipes(c, tree.AddBranch(displayRecipe(c.Item())))
	}
}

func renderTree(book *Recipes.Book) treeprint.Tree {
	root := book.Root()
	if root == nil {
		return treeprint.NewWithRoot("(empty)")
	}
	tree := treeprint.NewWithRoot(displayRecipe(root.Item()))
	walkRecipes(root, tree)
	return tree
}
