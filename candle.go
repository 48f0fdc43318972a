package coeval

import "fmt"

// CANDLE is the candle-race prize path. Instance format:
//
//	n
//	x y		(depot)
//	x y h b		(n-1 candle records: position, height, burn rate)
//
// The solution lists distinct candle ids from 1..n-1 in visitation order
// (candle i is the i-th record, the depot has no id). Visiting only a subset
// is allowed. The objective is a score to be maximized: a candle reached
// after walking Manhattan distance D scores max(0, h - b*D).
func parseCandleInstance(s *lineScanner) (*Instance, error) {
	header, line, err := s.expect(1, "node count")
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

	coords := make([][]int, n)
	heights := make([]int, n)
	rates := make([]int, n)

	depot, line, err := s.expect(2, "depot coordinates")
	if err != nil {
		return nil, err
	}
	x, err := parseIntField(depot[0], line, "coordinate")
	if err != nil {
		return nil, err
	}
	y, err := parseIntField(depot[1], line, "coordinate")
	if err != nil {
		return nil, err
	}
	coords[0] = []int{x, y}

	for i := 1; i < n; i++ {
		fields, line, err := s.expect(4, "candle record")
		if err != nil {
			return nil, err
		}
		x, err := parseIntField(fields[0], line, "coordinate")
		if err != nil {
			return nil, err
		}
		y, err := parseIntField(fields[1], line, "coordinate")
		if err != nil {
			return nil, err
		}
		h, err := parseIntField(fields[2], line, "candle height")
		if err != nil {
			return nil, err
		}
		b, err := parseIntField(fields[3], line, "burn rate")
		if err != nil {
			return nil, err
		}
		if h < 0 || b < 0 {
			return nil, formatErrorf(line, "non-negative height and burn rate", "%d and %d", h, b)
		}
		coords[i] = []int{x, y}
		heights[i] = h
		rates[i] = b
	}
	if err := s.expectEnd(); err != nil {
		return nil, err
	}
	return &Instance{Dimension: n, NodeCoordinates: coords, Heights: heights, BurnRates: rates}, nil
}

func validateCandle(inst *Instance, sol *Solution) Outcome {
	seen := make([]bool, inst.Dimension)
	for _, id := range sol.Route {
		if id < 1 || id > inst.Dimension-1 {
			return infeasible(fmt.Sprintf("node %d", id), "candle id out of range 1..%d", inst.Dimension-1)
		}
		if seen[id] {
			return infeasible(fmt.Sprintf("node %d", id), "candle visited twice")
		}
		seen[id] = true
	}
	return feasible()
}

// evaluateCandle walks the path from the depot, burning every candle down by
// the distance travelled so far.
func evaluateCandle(inst *Instance, sol *Solution) float64 {
	score := 0
	dist := 0
	last := 0
	for _, id := range sol.Route {
		dist += ManhattanDist(inst.NodeCoordinates[last], inst.NodeCoordinates[id])
		if s := inst.Heights[id] - inst.BurnRates[id]*dist; s > 0 {
			score += s
		}
		last = id
	}
	return float64(score)
}
