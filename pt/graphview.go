// graphview.go - renders a precedence snapshot as a directed
// *core.Graph so the winning assignment's implied edge order can be
// produced via dfs.TopologicalSort, and so tests can sanity-check
// acyclicity via dfs.DetectCycles.
package pt

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/dgprune/core"
	"github.com/katalvlaran/dgprune/dfs"
	"github.com/katalvlaran/dgprune/instance"
)

// graphFromPreds builds a directed graph with one vertex per pruning
// edge and, for every recorded precedence pair, an edge from the
// predecessor to its successor.
func graphFromPreds(inst *instance.Instance, preds [][]int) (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range inst.Edges() {
		if err := g.AddVertex(instance.EdgeVertexID(e.ID)); err != nil {
			return nil, err
		}
	}
	for eid, ps := range preds {
		if eid == 0 {
			continue
		}
		for _, p := range ps {
			if _, err := g.AddEdge(instance.EdgeVertexID(p), instance.EdgeVertexID(eid), 0); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// buildOrder linearises preds into a concrete edge ordering consistent
// with every recorded precedence constraint.
func buildOrder(inst *instance.Instance, preds [][]int) ([]int, error) {
	g, err := graphFromPreds(inst, preds)
	if err != nil {
		return nil, err
	}

	topo, err := dfs.TopologicalSort(g)
	if err != nil {
		return nil, ErrNoTopologicalOrder
	}

	order := make([]int, 0, len(topo))
	for _, vid := range topo {
		eid, convErr := strconv.Atoi(strings.TrimPrefix(vid, "E"))
		if convErr != nil {
			continue
		}
		order = append(order, eid)
	}

	return order, nil
}
