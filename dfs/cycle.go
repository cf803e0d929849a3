// DetectCycles reports the directed cycles closed by back edges of a
// depth-first forest. Every reported cycle is rotated to start at its
// smallest vertex ID and closed ([v0, ..., v0]); the list is sorted.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (C = #cycles, L = avg cycle length)
//   - Memory: O(V + L_max)

package dfs

import (
	"fmt"
	"sort"

	"github.com/iglsynth/iglsynth/core"
)

// cycleFinder holds DFS state for DetectCycles.
type cycleFinder struct {
	graph  *core.Graph
	state  map[string]int
	path   []string
	seen   map[string]struct{}
	cycles [][]string
}

// DetectCycles inspects g for cycles. A self-loop v -> v is reported as [v, v].
// Returns (false, nil, nil) for a nil or acyclic graph.
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	if g == nil {
		return false, nil, nil
	}
	verts := g.Vertices()
	f := &cycleFinder{
		graph: g,
		state: make(map[string]int, len(verts)),
		path:  make([]string, 0, len(verts)),
		seen:  make(map[string]struct{}),
	}
	for _, v := range verts {
		if f.state[v] == White {
			if err := f.visit(v); err != nil {
				return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
			}
		}
	}
	if len(f.cycles) == 0 {
		return false, nil, nil
	}
	sort.Slice(f.cycles, func(i, j int) bool {
		return joinSig(f.cycles[i]) < joinSig(f.cycles[j])
	})

	return true, f.cycles, nil
}

func (f *cycleFinder) visit(id string) error {
	f.state[id] = Gray
	f.path = append(f.path, id)

	nbs, err := f.graph.OutNeighbors(id)
	if err != nil {
		return fmt.Errorf("OutNeighbors(%q): %w", id, err)
	}
	for _, nbr := range nbs {
		switch f.state[nbr] {
		case White:
			if err = f.visit(nbr); err != nil {
				return err
			}
		case Gray:
			f.record(nbr)
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.state[id] = Black

	return nil
}

// record closes the cycle path[idx(start):] + start and stores its canonical form once.
func (f *cycleFinder) record(start string) {
	seq := f.path[indexOf(f.path, start):]
	rot := minimalRotation(seq)
	closed := append(rot, rot[0])
	sig := joinSig(closed)
	if _, dup := f.seen[sig]; dup {
		return
	}
	f.seen[sig] = struct{}{}
	f.cycles = append(f.cycles, closed)
}
