package ring

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type circle interface {
	Insert(int)
	Remove() int
	RotateLeft(int)
	RotateRight(int)
	Len() int
	Value() int
}

var impls = []struct {
	name string
	new  func() circle
}{
	{"arena", func() circle { return New() }},
	{"linked", func() circle { return NewLinked() }},
}

// values lists the ring clockwise, starting at the cursor.
func values(c circle) []int {
	switch c := c.(type) {
	case *Ring:
		var vs []int
		i := c.cur
		for range c.n {
			vs = append(vs, c.nodes[i].value)
			i = c.nodes[i].right
		}
		return vs
	case *Linked:
		var vs []int
		e := c.cur
		for range c.n {
			vs = append(vs, e.value)
			e = e.right
		}
		return vs
	}
	panic("unknown ring type")
}

// check verifies the link structure of c.
func check(c circle) error {
	switch c := c.(type) {
	case *Ring:
		i := c.cur
		for step := 0; step < c.n; step++ {
			nd := c.nodes[i]
			if nd.left < 0 || nd.right < 0 {
				return fmt.Errorf("step %d: reached freed slot %d", step, i)
			}
			if c.nodes[nd.right].left != i {
				return fmt.Errorf("slot %d: right.left = %d", i, c.nodes[nd.right].left)
			}
			if c.nodes[nd.left].right != i {
				return fmt.Errorf("slot %d: left.right = %d", i, c.nodes[nd.left].right)
			}
			i = nd.right
			if i == c.cur && step != c.n-1 {
				return fmt.Errorf("cycle has %d nodes; Len is %d", step+1, c.n)
			}
		}
		if i != c.cur {
			return fmt.Errorf("cycle does not close after %d steps", c.n)
		}
		if live := len(c.nodes) - len(c.free); live != c.n {
			return fmt.Errorf("arena has %d live slots; Len is %d", live, c.n)
		}
	case *Linked:
		e := c.cur
		for step := 0; step < c.n; step++ {
			if e.right.left != e {
				return fmt.Errorf("node %d: right.left mismatch", e.value)
			}
			if e.left.right != e {
				return fmt.Errorf("node %d: left.right mismatch", e.value)
			}
			e = e.right
			if e == c.cur && step != c.n-1 {
				return fmt.Errorf("cycle has %d nodes; Len is %d", step+1, c.n)
			}
		}
		if e != c.cur {
			return fmt.Errorf("cycle does not close after %d steps", c.n)
		}
	}
	return nil
}

func TestNew(t *testing.T) {
	for _, impl := range impls {
		c := impl.new()
		if got, want := c.Len(), 1; got != want {
			t.Errorf("%s: Len: got %d; want %d", impl.name, got, want)
		}
		if got, want := c.Value(), 0; got != want {
			t.Errorf("%s: Value: got %d; want %d", impl.name, got, want)
		}
		if err := check(c); err != nil {
			t.Errorf("%s: %s", impl.name, err)
		}
	}
}

func TestInsert(t *testing.T) {
	for _, impl := range impls {
		c := impl.new()
		for v := 1; v <= 3; v++ {
			c.Insert(v)
		}
		want := []int{3, 2, 1, 0}
		if diff := cmp.Diff(want, values(c)); diff != "" {
			t.Errorf("%s: values (-want +got):\n%s", impl.name, diff)
		}
		c.RotateRight(2)
		c.Insert(4)
		want = []int{4, 1, 0, 3, 2}
		if diff := cmp.Diff(want, values(c)); diff != "" {
			t.Errorf("%s: after rotate+insert (-want +got):\n%s", impl.name, diff)
		}
	}
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	for _, impl := range impls {
		c := impl.new()
		for v := 1; v < 10; v++ {
			c.RotateRight(2)
			before := c.Len()
			c.Insert(v * 100)
			if got := c.Remove(); got != v*100 {
				t.Errorf("%s: Remove: got %d; want %d", impl.name, got, v*100)
			}
			if got := c.Len(); got != before {
				t.Errorf("%s: Len after round trip: got %d; want %d", impl.name, got, before)
			}
			c.Insert(v)
			if err := check(c); err != nil {
				t.Fatalf("%s: %s", impl.name, err)
			}
		}
	}
}

func TestRemove(t *testing.T) {
	for _, impl := range impls {
		c := impl.new()
		for v := 1; v <= 4; v++ {
			c.Insert(v)
		}
		// 4 3 2 1 0
		c.RotateRight(1)
		if got, want := c.Remove(), 3; got != want {
			t.Errorf("%s: Remove: got %d; want %d", impl.name, got, want)
		}
		if got, want := c.Value(), 2; got != want {
			t.Errorf("%s: cursor after Remove: got %d; want %d", impl.name, got, want)
		}
		if diff := cmp.Diff([]int{2, 1, 0, 4}, values(c)); diff != "" {
			t.Errorf("%s: values (-want +got):\n%s", impl.name, diff)
		}
	}
}

func TestRemovePlaceholder(t *testing.T) {
	for _, impl := range impls {
		c := impl.new()
		c.Insert(5)
		c.RotateRight(1)
		if got, want := c.Remove(), 0; got != want {
			t.Errorf("%s: Remove: got %d; want %d", impl.name, got, want)
		}
		if got, want := c.Value(), 5; got != want {
			t.Errorf("%s: Value: got %d; want %d", impl.name, got, want)
		}
		if err := check(c); err != nil {
			t.Errorf("%s: %s", impl.name, err)
		}
	}
}

func TestRemoveLastPanics(t *testing.T) {
	for _, impl := range impls {
		func() {
			c := impl.new()
			defer func() {
				if r := recover(); r != ErrRemoveLast {
					t.Errorf("%s: got panic %v; want %v", impl.name, r, ErrRemoveLast)
				}
			}()
			c.Remove()
		}()
	}
}

func TestRotateInverse(t *testing.T) {
	for _, impl := range impls {
		c := impl.new()
		for v := 1; v < 10; v++ {
			c.Insert(v)
		}
		for k := 0; k < 25; k++ {
			want := c.Value()
			c.RotateLeft(k)
			c.RotateRight(k)
			if got := c.Value(); got != want {
				t.Errorf("%s: k=%d: got %d; want %d", impl.name, k, got, want)
			}
			c.RotateRight(1)
		}
	}
}

func TestRotate(t *testing.T) {
	for _, impl := range impls {
		c := impl.new()
		for v := 1; v <= 4; v++ {
			c.Insert(v)
		}
		// Clockwise from the cursor: 4 3 2 1 0.
		for _, tt := range []struct {
			left bool
			n    int
			want int
		}{
			{false, 0, 4},
			{false, 1, 3},
			{false, 5, 3},
			{true, 2, 0},
			{true, 1, 1},
			{true, 11, 2},
			{false, -1, 3},
			{true, -3, 0},
		} {
			if tt.left {
				c.RotateLeft(tt.n)
			} else {
				c.RotateRight(tt.n)
			}
			if got := c.Value(); got != tt.want {
				t.Errorf("%s: rotate(left=%t, %d): got %d; want %d",
					impl.name, tt.left, tt.n, got, tt.want)
			}
		}
	}
}

func TestRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a, l := New(), NewLinked()
	for i := 0; i < 5000; i++ {
		switch op := rng.Intn(4); {
		case op == 0 && a.Len() > 1:
			if got, want := a.Remove(), l.Remove(); got != want {
				t.Fatalf("op %d: Remove: arena got %d; linked got %d", i, got, want)
			}
		case op == 1:
			k := rng.Intn(30)
			a.RotateLeft(k)
			l.RotateLeft(k)
		case op == 2:
			k := rng.Intn(30)
			a.RotateRight(k)
			l.RotateRight(k)
		default:
			a.Insert(i)
			l.Insert(i)
		}
		for _, c := range []circle{a, l} {
			if err := check(c); err != nil {
				t.Fatalf("op %d: %T: %s", i, c, err)
			}
		}
		if diff := cmp.Diff(values(l), values(a)); diff != "" {
			t.Fatalf("op %d: arena and linked differ (-linked +arena):\n%s", i, diff)
		}
	}
}

func TestFreeListReuse(t *testing.T) {
	r := New()
	for v := 1; v <= 10; v++ {
		r.Insert(v)
	}
	n := r.Cap()
	for v := 0; v < 1000; v++ {
		r.RotateRight(3)
		r.Remove()
		r.Insert(v)
	}
	if got := r.Cap(); got != n {
		t.Errorf("Cap: got %d; want %d", got, n)
	}
	if err := check(r); err != nil {
		t.Error(err)
	}
}

func benchmarkChurn(b *testing.B, c circle) {
	for i := 0; i < b.N; i++ {
		if i%23 == 0 && c.Len() > 8 {
			c.RotateLeft(7)
			c.Remove()
			continue
		}
		c.RotateRight(2)
		c.Insert(i)
	}
}

func BenchmarkRing(b *testing.B)   { benchmarkChurn(b, New()) }
func BenchmarkLinked(b *testing.B) { benchmarkChurn(b, NewLinked()) }
