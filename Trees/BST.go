package Trees

import (
	"golang.org/x/exp/constraints"

	"github.com/g-m-twostay/recipebook/Queues"
)

// BST is an unbalanced binary search tree over any T. Ordering is decided only by
// the lt and eq functions given at construction, so T can be a struct ordered by
// one of its fields. Insert never rebalances; use Build on the in-order values to
// get a balanced shape back.
// The zero value isn't usable, create one with New or NewOrdered.
type BST[T any] struct {
	root   *Node[T]
	lt, eq func(T, T) bool
}

// New returns an empty BST using lessThan and equals for comparisons.
func New[T any](lessThan, equals func(T, T) bool) *BST[T] {
	return &BST[T]{lt: lessThan, eq: equals}
}

// NewOrdered returns an empty BST for builtin ordered types using < and ==.
func NewOrdered[T constraints.Ordered]() *BST[T] {
	return New(func(a, b T) bool { return a < b }, func(a, b T) bool { return a == b })
}

// Root of the tree, nil when empty.
func (u *BST[T]) Root() *Node[T] {
	return u.root
}

// SetRoot replaces the whole tree with the one rooted at n. The old tree is dropped.
// n may be nil, which empties the tree. n must be ordered by the same lessThan as u.
func (u *BST[T]) SetRoot(n *Node[T]) {
	u.root = n
}

// Insert [Tree.Insert]. Descends left when v is less than the current value and
// right otherwise, so an equal value lands in the right subtree. Insert doesn't
// check for repeated values; callers wanting a set should check Has first.
// Time: O(D); Space: O(1)
func (u *BST[T]) Insert(v T) {
	curPtr := &u.root
	for *curPtr != nil {
		if u.lt(v, (*curPtr).v) {
			curPtr = &(*curPtr).l
		} else {
			curPtr = &(*curPtr).r
		}
	}
	*curPtr = &Node[T]{v: v}
}

// Get the node holding a value equal to v, nil if there is none.
// Time: O(D); Space: O(1)
func (u *BST[T]) Get(v T) *Node[T] {
	for cur := u.root; cur != nil; {
		if u.eq(v, cur.v) {
			return cur
		} else if u.lt(v, cur.v) {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return nil
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BST[T]) Has(v T) bool {
	return u.Get(v) != nil
}

// remove an element v from the subtree rooting at cur recursively. cur is
// passed by reference so that a removed node can be spliced out of its parent's slot.
// A node with two children takes the value of its in-order successor, and the
// successor is then removed from the right subtree instead.
func (u *BST[T]) remove(curPtr **Node[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	if u.eq(v, cur.v) {
		if cur.l == nil {
			*curPtr = cur.r
		} else if cur.r == nil {
			*curPtr = cur.l
		} else {
			t := &cur.r
			for (*t).l != nil {
				t = &(*t).l
			}
			cur.v = (*t).v
			*t = (*t).r
		}
		return true
	} else if u.lt(v, cur.v) {
		return u.remove(&cur.l, v)
	}
	return u.remove(&cur.r, v)
}

// Remove [Tree.Remove]. Recursive.
// It is a wrapper for remove.
// Time: O(D)
func (u *BST[T]) Remove(v T) bool {
	return u.remove(&u.root, v)
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Minimum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Maximum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

func size[T any](n *Node[T]) uint {
	if n == nil {
		return 0
	}
	return size(n.l) + size(n.r) + 1
}

// Size [Tree.Size]. Recursive. The tree doesn't cache sizes since SetRoot can
// swap in any subtree.
// Time: O(n)
func (u *BST[T]) Size() uint {
	return size(u.root)
}

// InOrder [Tree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *BST[T]) InOrder() func() (T, bool) {
	var st []*Node[T]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for c := cur.r; c != nil; c = c.l {
			st = append(st, c)
		}
		return cur.v, true
	}
}

// Values of the tree in ascending order.
func (u *BST[T]) Values() []T {
	vs := make([]T, 0)
	for f := u.InOrder(); ; {
		v, ok := f()
		if !ok {
			return vs
		}
		vs = append(vs, v)
	}
}

func preOrder[T any](n *Node[T], f func(*Node[T]) bool) bool {
	if n == nil {
		return true
	}
	return f(n) && preOrder(n.l, f) && preOrder(n.r, f)
}

// PreOrder calls f on every node, visiting a node before its left and then its
// right subtree. The walk stops as soon as f returns false. Recursive.
// f mustn't change the shape of the tree.
func (u *BST[T]) PreOrder(f func(*Node[T]) bool) {
	preOrder(u.root, f)
}

type levelEntry[T any] struct {
	n *Node[T]
	d uint
}

// LevelOrder calls f on every node breadth first, left to right, together with
// its depth; the root is at depth 0. The walk stops as soon as f returns false.
// f mustn't change the shape of the tree.
// Space: O(width of the tree)
func (u *BST[T]) LevelOrder(f func(n *Node[T], depth uint) bool) {
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[levelEntry[T]](16)
	q.Push(levelEntry[T]{u.root, 0})
	for !q.Empty() {
		e, _ := q.Pop()
		if !f(e.n, e.d) {
			return
		}
		if e.n.l != nil {
			q.Push(levelEntry[T]{e.n.l, e.d + 1})
		}
		if e.n.r != nil {
			q.Push(levelEntry[T]{e.n.r, e.d + 1})
		}
	}
}

// Height of the tree, 0 when empty.
func (u *BST[T]) Height() uint {
	return Height(u.root)
}

// Balanced reports whether the heights of the two subtrees of every node differ by at most 1.
func (u *BST[T]) Balanced() bool {
	_, ok := balanced(u.root)
	return ok
}

// corrupt checks that every value in the subtree rooting at cur lies strictly
// between lo and hi, where a nil bound is unbounded.
func (u *BST[T]) corrupt(cur *Node[T], lo, hi *T) bool {
	if cur == nil {
		return false
	}
	if lo != nil && !u.lt(*lo, cur.v) || hi != nil && !u.lt(cur.v, *hi) {
		return true
	}
	return u.corrupt(cur.l, lo, &cur.v) || u.corrupt(cur.r, &cur.v, hi)
}

// Corrupt [Tree.Corrupt]. Recursive. Repeated values count as corruption.
func (u *BST[T]) Corrupt() bool {
	return u.corrupt(u.root, nil, nil)
}
