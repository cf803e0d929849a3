// Package dijkstra implements Dijkstra's shortest-path algorithm over edge weights.
//
// Edges are followed in their direction only. Parallel edges compete on weight,
// and the winning edge is recorded in Result.PrevEdge.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a lazy decrease-key heap.
//   - Space: O(V + E).
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/iglsynth/iglsynth/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Validation order:
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No edge may have a negative or NaN weight (ErrNegativeWeight).
//
// Ties between equal distances are broken by vertex ID, then by edge ID,
// so the returned tree is deterministic.
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.ContainsVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 || math.IsNaN(e.Weight) {
			return nil, fmt.Errorf("%w: edge %s %s->%s weight=%v", ErrNegativeWeight, e.ID(), e.Source(), e.Target(), e.Weight)
		}
	}

	r := newRunner(g, cfg)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state of one execution.
type runner struct {
	g       *core.Graph
	options Options
	res     *Result
	visited map[string]bool
	pq      nodePQ
}

func newRunner(g *core.Graph, cfg Options) *runner {
	n := g.NumVertices()
	r := &runner{
		g:       g,
		options: cfg,
		res: &Result{
			Source:   cfg.Source,
			Dist:     make(map[string]float64, n),
			Prev:     make(map[string]string, n),
			PrevEdge: make(map[string]string, n),
		},
		visited: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for _, v := range g.Vertices() {
		r.res.Dist[v] = math.Inf(1)
	}
	r.res.Dist[cfg.Source] = 0
	heap.Push(&r.pq, &nodeItem{id: cfg.Source, dist: 0})

	return r
}

// process pops the closest unfinished vertex until the heap is empty
// or the frontier passes MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every out-neighbor of the finalized vertex u.
func (r *runner) relax(u string) error {
	out, err := r.g.OutEdges(u)
	if err != nil {
		return fmt.Errorf("dijkstra: out-edges of %q: %w", u, err)
	}
	for _, e := range out {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		v := e.Target()
		if r.visited[v] {
			continue
		}
		d := r.res.Dist[u] + e.Weight
		if d > r.options.MaxDistance || d >= r.res.Dist[v] {
			continue
		}
		r.res.Dist[v] = d
		r.res.Prev[v] = u
		r.res.PrevEdge[v] = e.ID()
		heap.Push(&r.pq, &nodeItem{id: v, dist: d})
	}

	return nil
}

// nodeItem is a heap entry; stale entries are skipped on pop.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap ordered by (dist, id).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
