// Package neural generates the decorative "neural network" shown behind the hero.
//
// The graph has no meaning. Nodes are random dots placed in percentage
// coordinates and edges are random lines between them. Output only has to look
// plausible, so the generator favours simplicity: self-loops are dropped
// instead of redrawn, and no de-duplication is attempted.
package neural

import (
	"iter"
	"math"
	"math/rand/v2"
	"strconv"
	"time"
)

// Ranges of the generated attributes. Lower bounds are inclusive, upper bounds exclusive.
const (
	// MaxCoordinate bounds x and y, which are percentages of the canvas.
	MaxCoordinate = 100.0
	// MinSize and MaxSize bound the node size factor.
	MinSize = 0.5
	MaxSize = 1.0
	// MaxDelay bounds the animation delay in milliseconds.
	MaxDelay = 2000.0
	// MinOpacity and MaxOpacity bound edge opacity.
	MinOpacity = 0.1
	MaxOpacity = 0.6
)

// Default sizes used by the hero section.
const (
	DefaultNodeCount      = 30
	DefaultMaxConnections = 2
)

// Node is a decorative dot.
type Node struct {
	ID int `json:"id"`
	// X and Y are percentages in [0,100).
	X float64 `json:"x"`
	Y float64 `json:"y"`
	// Size is a scale factor in [0.5,1.0).
	Size float64 `json:"size"`
	// Delay is the animation delay in milliseconds, in [0,2000).
	Delay float64 `json:"delay"`
}

// DelayDuration returns Delay as a time.Duration.
func (n Node) DelayDuration() time.Duration {
	return time.Duration(n.Delay * float64(time.Millisecond))
}

// Edge is a decorative line between two nodes.
type Edge struct {
	// ID is "<from>-<to>".
	ID      string  `json:"id"`
	From    Node    `json:"from"`
	To      Node    `json:"to"`
	Opacity float64 `json:"opacity"`
}

// Generator draws nodes and edges from a random source.
// A Generator is not safe for concurrent use because the underlying source is not.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator drawing from rng.
// A nil rng is replaced with a freshly seeded source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // decorative randomness
	}
	return &Generator{rng: rng}
}

// NewSeededGenerator returns a Generator that replays the same sequence for the same seed.
// A zero seed draws a fresh random seed, so every call produces a different graph.
func NewSeededGenerator(seed uint64) *Generator {
	if seed == 0 {
		return NewGenerator(nil)
	}
	return NewGenerator(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))) //nolint:gosec // decorative randomness
}

// Nodes returns count nodes with independent uniform attributes.
// A non-positive count yields an empty slice.
func (g *Generator) Nodes(count int) []Node {
	if count <= 0 {
		return []Node{}
	}
	nodes := make([]Node, count)
	for i := range nodes {
		nodes[i] = Node{
			ID:    i,
			X:     g.uniform(0, MaxCoordinate),
			Y:     g.uniform(0, MaxCoordinate),
			Size:  g.uniform(MinSize, MaxSize),
			Delay: g.uniform(0, MaxDelay),
		}
	}
	return nodes
}

// Edges returns a one-shot sequence of edges over nodes.
//
// For every node a fan-out in [1, maxConnections] is drawn, and each draw picks
// a uniformly random target. Draws that hit the source node are discarded, so a
// node may end up with fewer edges than drawn. Randomness is consumed while the
// sequence is iterated. Ranging over it a second time continues the random
// stream and yields a different graph. A maxConnections below 1 yields nothing.
func (g *Generator) Edges(nodes []Node, maxConnections int) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		if maxConnections < 1 || len(nodes) == 0 {
			return
		}
		for i, from := range nodes {
			fanout := 1 + g.rng.IntN(maxConnections)
			for range fanout {
				target := g.rng.IntN(len(nodes))
				if target == i {
					continue
				}
				edge := Edge{
					ID:      strconv.Itoa(i) + "-" + strconv.Itoa(target),
					From:    from,
					To:      nodes[target],
					Opacity: g.uniform(MinOpacity, MaxOpacity),
				}
				if !yield(edge) {
					return
				}
			}
		}
	}
}

// uniform draws from [lo, hi). Rounding in lo+f*(hi-lo) can land on hi, which is pulled back.
func (g *Generator) uniform(lo, hi float64) float64 {
	v := lo + g.rng.Float64()*(hi-lo)
	if v >= hi {
		return math.Nextafter(hi, lo)
	}
	return v
}

// Graph is a materialized set of nodes and edges.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Generate draws a complete graph, collecting the edge sequence eagerly.
func (g *Generator) Generate(nodeCount, maxConnections int) Graph {
	nodes := g.Nodes(nodeCount)
	edges := make([]Edge, 0, len(nodes)*max(maxConnections, 0))
	for e := range g.Edges(nodes, maxConnections) {
		edges = append(edges, e)
	}
	return Graph{Nodes: nodes, Edges: edges}
}
