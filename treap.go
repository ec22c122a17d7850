package interval

import (
	"fmt"
	"io"
	"math/rand"
)

// tineNode is the recursive treap node backing tineTree: a persistent,
// randomly-balanced BST of Tines ordered by compareTines.
type tineNode[T any] struct {
	left  *tineNode[T]
	right *tineNode[T]
	prio  float64
	tine  Tine[T]
}

// tineTree is a handle to the root of an ordered, duplicate-free collection
// of Tines, the substrate TineSet is built on.
type tineTree[T any] struct {
	root *tineNode[T]
	cmp  func(T, T) int
}

func newTineTree[T any](cmp func(T, T) int) tineTree[T] {
	return tineTree[T]{cmp: cmp}
}

func makeTineNode[T any](t Tine[T]) *tineNode[T] {
	return &tineNode[T]{tine: t, prio: rand.Float64()}
}

// copyNode makes a shallow copy of a node's pointers and payload; used to
// keep the previous version of the tree intact under an immutable update.
func (n *tineNode[T]) copyNode() *tineNode[T] {
	if n == nil {
		return nil
	}
	m := *n
	return &m
}

// insert places b into the tree, replacing any Tine with the same
// underlying value. Changed nodes are copied when immutable is true;
// otherwise the receiver is mutated and reused.
func (n *tineNode[T]) insert(b *tineNode[T], cmp func(T, T) int, immutable bool) *tineNode[T] {
	if n == nil {
		return b
	}

	if b.prio >= n.prio {
		l, _, r := n.split(b.tine, cmp, immutable)
		b.left, b.right = l, r
		return b
	}

	c := compareTines(b.tine, n.tine, cmp)
	if c == 0 {
		// Same coordinate: b replaces n outright. n and b generally carry
		// different priorities, so a plain field overwrite would break
		// heap order; splitting n around b's key and rejoining at b's
		// priority keeps the treap balanced.
		l, _, r := n.split(b.tine, cmp, immutable)
		return join(l, join(b, r, cmp, immutable), cmp, immutable)
	}

	if immutable {
		n = n.copyNode()
	}

	if c < 0 {
		n.left = n.left.insert(b, cmp, immutable)
	} else {
		n.right = n.right.insert(b, cmp, immutable)
	}
	return n
}

// split partitions the tree into the Tines comparing less than key, the
// Tine equal to key (if present), and the Tines comparing greater.
func (n *tineNode[T]) split(key Tine[T], cmp func(T, T) int, immutable bool) (left, mid, right *tineNode[T]) {
	if n == nil {
		return nil, nil, nil
	}

	if immutable {
		n = n.copyNode()
	}

	c := compareTines(n.tine, key, cmp)
	switch {
	case c < 0:
		l, m, r := n.right.split(key, cmp, immutable)
		n.right = l
		return n, m, r
	case c > 0:
		l, m, r := n.left.split(key, cmp, immutable)
		n.left = r
		return l, m, n
	default:
		l, r := n.left, n.right
		n.left, n.right = nil, nil
		return l, n, r
	}
}

// join merges two treaps known to be disjoint in key range, with every key
// in a comparing less than every key in b.
func join[T any](a, b *tineNode[T], cmp func(T, T) int, immutable bool) *tineNode[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	if a.prio > b.prio {
		if immutable {
			a = a.copyNode()
		}
		a.right = join(a.right, b, cmp, immutable)
		return a
	}
	if immutable {
		b = b.copyNode()
	}
	b.left = join(a, b.left, cmp, immutable)
	return b
}

// find returns the Tine equal to key (by underlying value), if present.
func (n *tineNode[T]) find(key Tine[T], cmp func(T, T) int) (Tine[T], bool) {
	for n != nil {
		c := compareTines(n.tine, key, cmp)
		switch {
		case c < 0:
			n = n.right
		case c > 0:
			n = n.left
		default:
			return n.tine, true
		}
	}
	var zero Tine[T]
	return zero, false
}

func (n *tineNode[T]) min() *tineNode[T] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *tineNode[T]) max() *tineNode[T] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// forEach visits every Tine in ascending order, stopping early if yield
// returns false.
func (n *tineNode[T]) forEach(yield func(Tine[T]) bool) bool {
	if n == nil {
		return true
	}
	if !n.left.forEach(yield) {
		return false
	}
	if !yield(n.tine) {
		return false
	}
	return n.right.forEach(yield)
}

// forEachReverse visits every Tine in descending order, stopping early if
// yield returns false.
func (n *tineNode[T]) forEachReverse(yield func(Tine[T]) bool) bool {
	if n == nil {
		return true
	}
	if !n.right.forEachReverse(yield) {
		return false
	}
	if !yield(n.tine) {
		return false
	}
	return n.left.forEachReverse(yield)
}

// insert adds or replaces a Tine in the tree, returning the updated handle.
func (tt tineTree[T]) insert(t Tine[T]) tineTree[T] {
	immutable := tt.root != nil
	tt.root = tt.root.insert(makeTineNode(t), tt.cmp, immutable)
	return tt
}

// split partitions tt around key, returning the three resulting handles.
func (tt tineTree[T]) split(key Tine[T]) (left, mid, right tineTree[T], midOK bool) {
	l, m, r := tt.root.split(key, tt.cmp, true)
	left, right = tineTree[T]{root: l, cmp: tt.cmp}, tineTree[T]{root: r, cmp: tt.cmp}
	if m == nil {
		return left, tineTree[T]{cmp: tt.cmp}, right, false
	}
	return left, tineTree[T]{root: m, cmp: tt.cmp}, right, true
}

// joinTrees concatenates a and b, assuming every Tine in a compares less
// than every Tine in b.
func joinTrees[T any](a, b tineTree[T]) tineTree[T] {
	cmp := a.cmp
	if cmp == nil {
		cmp = b.cmp
	}
	return tineTree[T]{root: join(a.root, b.root, cmp, true), cmp: cmp}
}

func (tt tineTree[T]) isEmpty() bool { return tt.root == nil }

// isSingleton reports whether the tree holds exactly one Tine.
func (tt tineTree[T]) isSingleton() bool {
	return tt.root != nil && tt.root.left == nil && tt.root.right == nil
}

func (tt tineTree[T]) find(key Tine[T]) (Tine[T], bool) { return tt.root.find(key, tt.cmp) }

func (tt tineTree[T]) firstTine() (Tine[T], bool) {
	n := tt.root.min()
	if n == nil {
		var zero Tine[T]
		return zero, false
	}
	return n.tine, true
}

func (tt tineTree[T]) lastTine() (Tine[T], bool) {
	n := tt.root.max()
	if n == nil {
		var zero Tine[T]
		return zero, false
	}
	return n.tine, true
}

// tines returns every Tine in ascending order.
func (tt tineTree[T]) tines() []Tine[T] {
	var out []Tine[T]
	tt.root.forEach(func(t Tine[T]) bool {
		out = append(out, t)
		return true
	})
	return out
}

// fprintBST writes a horizontal diagram of the raw treap structure to w, one
// line per node showing its Tine and heap priority. Debugging aid only, not
// part of the set algebra: left/right here are BST child pointers, not
// interval nesting.
func (tt tineTree[T]) fprintBST(w io.Writer) error {
	if tt.root == nil {
		return nil
	}
	if _, err := fmt.Fprint(w, "R "); err != nil {
		return err
	}
	return tt.root.preorderStringify(w, "")
}

func (n *tineNode[T]) preorderStringify(w io.Writer, pad string) error {
	if _, err := fmt.Fprintf(w, "%v [prio:%.4g]\n", n.tine, n.prio); err != nil {
		return err
	}

	if n.left != nil {
		glyphe, spacer := "├─l ", "│   "
		if n.right == nil {
			glyphe, spacer = "└─l ", "    "
		}
		if _, err := fmt.Fprint(w, pad+glyphe); err != nil {
			return err
		}
		if err := n.left.preorderStringify(w, pad+spacer); err != nil {
			return err
		}
	}

	if n.right != nil {
		if _, err := fmt.Fprint(w, pad+"└─r "); err != nil {
			return err
		}
		if err := n.right.preorderStringify(w, pad+"    "); err != nil {
			return err
		}
	}

	return nil
}
