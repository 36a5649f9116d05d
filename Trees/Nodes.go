package Trees

// Node of a binary tree. A Node exclusively owns its left and right subtrees;
// nodes are never shared between trees or between two parents, so dropping a
// Node drops everything below it.
// The zero value is a leaf holding the zero value of T.
type Node[T any] struct {
	v    T
	l, r *Node[T]
}

// NewNode returns a leaf holding v.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{v: v}
}

// Item held by n.
func (n *Node[T]) Item() T {
	return n.v
}

// SetItem replaces the item held by n.
func (n *Node[T]) SetItem(v T) {
	n.v = v
}

// Left child, nil if absent.
func (n *Node[T]) Left() *Node[T] {
	return n.l
}

// SetLeft gives ownership of c to n as its left child. The previous left subtree is dropped.
func (n *Node[T]) SetLeft(c *Node[T]) {
	n.l = c
}

// Right child, nil if absent.
func (n *Node[T]) Right() *Node[T] {
	return n.r
}

// SetRight gives ownership of c to n as its right child. The previous right subtree is dropped.
func (n *Node[T]) SetRight(c *Node[T]) {
	n.r = c
}

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.l == nil && n.r == nil
}
