package neural

import (
	"iter"
	"math/rand/v2"
	"strconv"
	"testing"
)

func newTestGenerator(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed+1)))
}

func TestNodes(t *testing.T) {
	t.Parallel()

	for _, count := range []int{0, 1, 2, 30, 500} {
		g := newTestGenerator(uint64(count) + 7)
		nodes := g.Nodes(count)

		if len(nodes) != count {
			t.Fatalf("Nodes(%d) returned %d nodes", count, len(nodes))
		}
		for i, n := range nodes {
			if n.ID != i {
				t.Errorf("node %d has id %d", i, n.ID)
			}
			if n.X < 0 || n.X >= MaxCoordinate || n.Y < 0 || n.Y >= MaxCoordinate {
				t.Errorf("node %d out of bounds: (%v, %v)", i, n.X, n.Y)
			}
			if n.Size < MinSize || n.Size >= MaxSize {
				t.Errorf("node %d size %v outside [%v,%v)", i, n.Size, MinSize, MaxSize)
			}
			if n.Delay < 0 || n.Delay >= MaxDelay {
				t.Errorf("node %d delay %v outside [0,%v)", i, n.Delay, MaxDelay)
			}
		}
	}

	t.Run("negative count yields no nodes", func(t *testing.T) {
		t.Parallel()
		if got := newTestGenerator(1).Nodes(-3); len(got) != 0 {
			t.Errorf("expected no nodes, got %d", len(got))
		}
	})
}

func TestEdges(t *testing.T) {
	t.Parallel()

	t.Run("never produces self-loops", func(t *testing.T) {
		t.Parallel()
		for seed := uint64(1); seed <= 50; seed++ {
			g := newTestGenerator(seed)
			// Two nodes make self-loop draws frequent.
			nodes := g.Nodes(2 + int(seed%5))
			for e := range g.Edges(nodes, 4) {
				if e.From.ID == e.To.ID {
					t.Fatalf("seed %d: self-loop edge %s", seed, e.ID)
				}
			}
		}
	})

	t.Run("respects fan-out and opacity bounds", func(t *testing.T) {
		t.Parallel()
		g := newTestGenerator(99)
		nodes := g.Nodes(40)
		perNode := make(map[int]int)
		for e := range g.Edges(nodes, 3) {
			perNode[e.From.ID]++
			if e.Opacity < MinOpacity || e.Opacity >= MaxOpacity {
				t.Errorf("edge %s opacity %v outside [%v,%v)", e.ID, e.Opacity, MinOpacity, MaxOpacity)
			}
			want := strconv.Itoa(e.From.ID) + "-" + strconv.Itoa(e.To.ID)
			if e.ID != want {
				t.Errorf("expected id %q, got %q", want, e.ID)
			}
		}
		for id, n := range perNode {
			if n > 3 {
				t.Errorf("node %d has %d edges, more than the fan-out of 3", id, n)
			}
		}
	})

	t.Run("single node yields nothing", func(t *testing.T) {
		t.Parallel()
		g := newTestGenerator(3)
		for e := range g.Edges(g.Nodes(1), 5) {
			t.Fatalf("unexpected edge %s", e.ID)
		}
	})

	t.Run("zero fan-out yields nothing", func(t *testing.T) {
		t.Parallel()
		g := newTestGenerator(3)
		for e := range g.Edges(g.Nodes(10), 0) {
			t.Fatalf("unexpected edge %s", e.ID)
		}
	})

	t.Run("sequence stops when consumer breaks", func(t *testing.T) {
		t.Parallel()
		g := newTestGenerator(5)
		nodes := g.Nodes(20)
		taken := 0
		for range g.Edges(nodes, 2) {
			taken++
			if taken == 3 {
				break
			}
		}
		if taken != 3 {
			t.Errorf("expected to take 3 edges, took %d", taken)
		}
	})

	t.Run("re-iterating draws a fresh graph", func(t *testing.T) {
		t.Parallel()
		g := newTestGenerator(11)
		nodes := g.Nodes(30)
		seq := g.Edges(nodes, 2)

		first := collectIDs(seq)
		second := collectIDs(seq)
		if equalIDs(first, second) {
			t.Error("expected a second iteration to continue the random stream")
		}
	})
}

func TestSeededGenerator(t *testing.T) {
	t.Parallel()

	a := NewSeededGenerator(42).Generate(DefaultNodeCount, DefaultMaxConnections)
	b := NewSeededGenerator(42).Generate(DefaultNodeCount, DefaultMaxConnections)

	if len(a.Nodes) != DefaultNodeCount {
		t.Fatalf("expected %d nodes, got %d", DefaultNodeCount, len(a.Nodes))
	}
	if len(a.Edges) != len(b.Edges) {
		t.Fatalf("same seed produced %d and %d edges", len(a.Edges), len(b.Edges))
	}
	for i := range a.Nodes {
		if a.Nodes[i] != b.Nodes[i] {
			t.Fatalf("node %d differs between runs", i)
		}
	}
	for i := range a.Edges {
		if a.Edges[i] != b.Edges[i] {
			t.Fatalf("edge %d differs between runs", i)
		}
	}
	if len(a.Edges) > DefaultNodeCount*DefaultMaxConnections {
		t.Errorf("edge count %d exceeds the maximum fan-out", len(a.Edges))
	}
}

func TestNodeDelayDuration(t *testing.T) {
	t.Parallel()

	n := Node{Delay: 1500}
	if got := n.DelayDuration().Milliseconds(); got != 1500 {
		t.Errorf("expected 1500ms, got %dms", got)
	}
}

func collectIDs(seq iter.Seq[Edge]) []string {
	var ids []string
	for e := range seq {
		ids = append(ids, e.ID)
	}
	return ids
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
