package Recipes

import (
	"bufio"
	"fmt"
	"io"

	"github.com/g-m-twostay/recipebook/Trees"
)

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// writeRecipe writes r as four labeled lines followed by an empty line.
func writeRecipe(w io.Writer, r Recipe) error {
	_, err := fmt.Fprintf(w, "Name: %s\nDifficulty Level: %d\nDescription: %s\nMastered: %s\n\n",
		r.Name, r.Difficulty, r.Description, yesNo(r.Mastered))
	return err
}

// PreorderDisplay writes every recipe to w, visiting a node before its left and
// then its right subtree. The Book isn't modified.
func (u *Book) PreorderDisplay(w io.Writer) error {
	bw := bufio.NewWriter(w)
	var err error
	u.PreOrder(func(n *Trees.Node[Recipe]) bool {
		err = writeRecipe(bw, n.Item())
		return err == nil
	})
	if err == nil {
		err = bw.Flush()
	}
	if err != nil {
		return fmt.Errorf("display recipes: %w", err)
	}
	return nil
}
