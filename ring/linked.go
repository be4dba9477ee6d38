package ring

// Linked is a pointer-based version of Ring. Each node is a separate
// allocation holding pointers to its neighbors.
type Linked struct {
	cur *elem
	n   int
}

type elem struct {
	value       int
	left, right *elem
}

// NewLinked returns a Linked holding one node with the value 0.
func NewLinked() *Linked {
	e := &elem{value: 0}
	e.left = e
	e.right = e
	return &Linked{cur: e, n: 1}
}

func (l *Linked) Len() int { return l.n }

func (l *Linked) Value() int { return l.cur.value }

// Insert adds a node holding v between the cursor and its left neighbor
// and moves the cursor onto it.
func (l *Linked) Insert(v int) {
	e := &elem{
		value: v,
		left:  l.cur.left,
		right: l.cur,
	}
	l.cur.left.right = e
	l.cur.left = e
	l.cur = e
	l.n++
}

// Remove unlinks the cursor node and returns its value.
// It panics with ErrRemoveLast if l has only one node.
func (l *Linked) Remove() int {
	if l.n == 1 {
		panic(ErrRemoveLast)
	}
	e := l.cur
	e.left.right = e.right
	e.right.left = e.left
	l.cur = e.right
	e.left, e.right = nil, nil
	l.n--
	return e.value
}

func (l *Linked) RotateLeft(n int) {
	if n < 0 {
		l.RotateRight(-n)
		return
	}
	for range n % l.n {
		l.cur = l.cur.left
	}
}

func (l *Linked) RotateRight(n int) {
	if n < 0 {
		l.RotateLeft(-n)
		return
	}
	for range n % l.n {
		l.cur = l.cur.right
	}
}
