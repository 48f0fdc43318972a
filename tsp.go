package coeval

import "fmt"

// TSP instance format:
//
//	n m
//	u v w	(m lines, undirected edge between 1-based ids with weight w >= 0)
//
// Pairs without an edge record are unconnected. A tour over them is
// infeasible, not expensive.
func parseTSPInstance(s *lineScanner) (*Instance, error) {
	header, line, err := s.expect(2, "node and edge counts")
	if err != nil {
		return nil, err
	}
	n, err := parseIntField(header[0], line, "node count")
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, formatErrorf(line, "positive node count", "%d", n)
	}
	m, err := parseIntField(header[1], line, "edge count")
	if err != nil {
		return nil, err
	}
	if m < 0 {
		return nil, formatErrorf(line, "non-negative edge count", "%d", m)
	}

	edges := make(map[EdgeKey]float64, m)
	for i := 0; i < m; i++ {
		fields, line, err := s.expect(3, "edge record")
		if err != nil {
			return nil, err
		}
		u, err := parseIntField(fields[0], line, "node id")
		if err != nil {
			return nil, err
		}
		v, err := parseIntField(fields[1], line, "node id")
		if err != nil {
			return nil, err
		}
		if u < 1 || u > n || v < 1 || v > n {
			return nil, formatErrorf(line, fmt.Sprintf("node ids between 1 and %d", n), "%d-%d", u, v)
		}
		if u == v {
			return nil, formatErrorf(line, "two distinct node ids", "self-loop on node %d", u)
		}
		w, err := parseFloatField(fields[2], line, "edge weight")
		if err != nil {
			return nil, err
		}
		if w < 0 {
			return nil, formatErrorf(line, "non-negative edge weight", "%g", w)
		}
		k := edgeKey(u, v)
		if _, dup := edges[k]; dup {
			return nil, formatErrorf(line, "unique edge record", "duplicate edge %d-%d", k.U, k.V)
		}
		edges[k] = w
	}
	if err := s.expectEnd(); err != nil {
		return nil, err
	}
	return &Instance{Dimension: n, Edges: edges}, nil
}

// parseRouteSolution reads a sequence of integer ids, either one per line or
// all on one line. Shared by every kind whose solution is an ordered node
// sequence.
func parseRouteSolution(s *lineScanner, inst *Instance) (*Solution, error) {
	toks := s.tokens()
	route := make([]int, 0, len(toks))
	for _, t := range toks {
		id, err := parseIntField(t.text, t.line, "node id")
		if err != nil {
			return nil, err
		}
		route = append(route, id)
	}
	return &Solution{Route: route}, nil
}

func validateTSP(inst *Instance, sol *Solution) Outcome {
	if len(sol.Route) != inst.Dimension {
		return infeasible("route", "got %d stops, expected %d", len(sol.Route), inst.Dimension)
	}
	seen := make([]bool, inst.Dimension+1)
	for _, u := range sol.Route {
		if u < 1 || u > inst.Dimension {
			return infeasible(fmt.Sprintf("node %d", u), "node id out of range 1..%d", inst.Dimension)
		}
		if seen[u] {
			return infeasible(fmt.Sprintf("node %d", u), "node visited twice")
		}
		seen[u] = true
	}
	if len(sol.Route) < 2 {
		// a single-node tour closes on itself and traverses no edge
		return feasible()
	}
	for i := range sol.Route {
		u := sol.Route[i]
		v := sol.Route[(i+1)%len(sol.Route)]
		if !inst.HasEdge(u, v) {
			return infeasible(fmt.Sprintf("edge %d-%d", u, v), "edge not present in the instance")
		}
	}
	return feasible()
}

// evaluateTSP sums the traversed edge weights in visitation order, including
// the wrap-around closing edge.
func evaluateTSP(inst *Instance, sol *Solution) float64 {
	if len(sol.Route) < 2 {
		return 0
	}
	length := 0.0
	for i := 0; i < len(sol.Route); i++ {
		j := (i + 1) % len(sol.Route)
		length += inst.EdgeWeight(sol.Route[i], sol.Route[j])
	}
	return length
}
