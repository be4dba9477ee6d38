// Package ring implements a circular sequence of ints with a single movable
// cursor. Insertion next to the cursor and removal of the cursor are O(1);
// rotating the cursor by n steps is O(n).
//
// Two implementations are provided with the same method set: Ring keeps all
// nodes in a single slice and links them by index, and Linked uses ordinary
// pointer nodes. Ring is the one to use; Linked is kept for comparison.
package ring

import "errors"

// ErrRemoveLast is the panic value raised by Remove when the ring holds a
// single node. Removing it would leave the ring with no cursor, so this is
// always a bug in the caller.
var ErrRemoveLast = errors.New("ring: Remove called on single-node ring")

// A Ring is a circular sequence of ints with a cursor.
// The zero value is not usable; create Rings with New.
type Ring struct {
	nodes []node
	free  []int // indexes of removed nodes, reused by Insert
	cur   int
	n     int
}

type node struct {
	value int
	left  int
	right int
}

// New returns a Ring holding one node with the value 0.
// That node is the cursor.
func New() *Ring {
	return &Ring{
		nodes: []node{{value: 0, left: 0, right: 0}},
		n:     1,
	}
}

// Len reports the number of live nodes in r.
func (r *Ring) Len() int { return r.n }

// Value returns the value at the cursor.
func (r *Ring) Value() int { return r.nodes[r.cur].value }

// Insert adds a node holding v directly counter-clockwise of the cursor
// (between the cursor and its left neighbor) and moves the cursor onto it.
func (r *Ring) Insert(v int) {
	i := r.alloc(v)
	left := r.nodes[r.cur].left
	r.nodes[i].left = left
	r.nodes[i].right = r.cur
	r.nodes[left].right = i
	r.nodes[r.cur].left = i
	r.cur = i
	r.n++
}

// Remove unlinks the cursor node and returns its value. The cursor moves to
// the removed node's right neighbor.
//
// Remove panics with ErrRemoveLast if r has only one node.
func (r *Ring) Remove() int {
	if r.n == 1 {
		panic(ErrRemoveLast)
	}
	i := r.cur
	nd := r.nodes[i]
	r.nodes[nd.left].right = nd.right
	r.nodes[nd.right].left = nd.left
	r.nodes[i] = node{left: -1, right: -1}
	r.free = append(r.free, i)
	r.cur = nd.right
	r.n--
	return nd.value
}

// RotateLeft moves the cursor n steps counter-clockwise.
// A negative n rotates clockwise instead.
func (r *Ring) RotateLeft(n int) {
	if n < 0 {
		r.RotateRight(-n)
		return
	}
	for range n % r.n {
		r.cur = r.nodes[r.cur].left
	}
}

// RotateRight moves the cursor n steps clockwise.
// A negative n rotates counter-clockwise instead.
func (r *Ring) RotateRight(n int) {
	if n < 0 {
		r.RotateLeft(-n)
		return
	}
	for range n % r.n {
		r.cur = r.nodes[r.cur].right
	}
}

// Cap reports the number of node slots held by r's arena,
// including slots waiting on the free list.
func (r *Ring) Cap() int { return len(r.nodes) }

func (r *Ring) alloc(v int) int {
	if n := len(r.free); n > 0 {
		i := r.free[n-1]
		r.free = r.free[:n-1]
		r.nodes[i] = node{value: v}
		return i
	}
	r.nodes = append(r.nodes, node{value: v})
	return len(r.nodes) - 1
}
