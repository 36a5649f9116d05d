package Trees

import "fmt"

// InvalidSliceError is returned by BuildChecked when the given slice isn't
// strictly ascending. Prev and Next are the first adjacent pair out of order.
type InvalidSliceError struct {
	Index      int
	Prev, Next any
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("slice isn't strictly ascending at index %d: %v then %v", e.Index, e.Prev, e.Next)
}

// build the subtree holding s[start:end+1] with s[(start+end)/2] at its root.
func build[T any](s []T, start, end int) *Node[T] {
	if start > end {
		return nil
	}
	mid := (start + end) / 2
	return &Node[T]{s[mid], build(s, start, mid-1), build(s, mid+1, end)}
}

// Build a height balanced tree from the given sorted slice and return its root.
// Values are copied into new nodes, so s can be reused after Build returns.
// The slice must be sorted in ascending order and mustn't contain repeated
// elements, otherwise the resulting tree is corrupt. Recursive.
// Time: O(n)
func Build[T any](s []T) *Node[T] {
	return build(s, 0, len(s)-1)
}

// BuildChecked is Build after checking that s is strictly ascending according to lessThan.
func BuildChecked[T any](s []T, lessThan func(T, T) bool) (*Node[T], error) {
	for i := 1; i < len(s); i++ {
		if !lessThan(s[i-1], s[i]) {
			return nil, InvalidSliceError{i, s[i-1], s[i]}
		}
	}
	return Build(s), nil
}

// Height of the subtree rooting at n, counted in nodes: nil is 0 and a leaf is 1. Recursive.
func Height[T any](n *Node[T]) uint {
	if n == nil {
		return 0
	}
	return max(Height(n.l), Height(n.r)) + 1
}

// balanced returns the height of n and whether every node under n has subtree
// heights differing by at most 1.
func balanced[T any](n *Node[T]) (uint, bool) {
	if n == nil {
		return 0, true
	}
	lh, lok := balanced(n.l)
	if !lok {
		return 0, false
	}
	rh, rok := balanced(n.r)
	if !rok {
		return 0, false
	}
	if lh > rh+1 || rh > lh+1 {
		return 0, false
	}
	return max(lh, rh) + 1, true
}
