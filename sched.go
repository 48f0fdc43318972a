package coeval

import "fmt"

// SCHED is single-machine weighted tardiness. Instance format:
//
//	n
//	p_1 ... p_n	(processing times)
//	w_1 ... w_n	(tardiness weights)
//	d_1 ... d_n	(due dates)
//
// The solution is a permutation of 1..n giving the processing order.
func parseSchedInstance(s *lineScanner) (*Instance, error) {
	header, line, err := s.expect(1, "job count")
	if err != nil {
		return nil, err
	}
	n, err := parseIntField(header[0], line, "job count")
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, formatErrorf(line, "positive job count", "%d", n)
	}

	rows := make([][]int, 3)
	for i, what := range []string{"processing time", "tardiness weight", "due date"} {
		fields, line, err := s.expect(n, what+"s")
		if err != nil {
			return nil, err
		}
		rows[i], err = parseIntRow(fields, line, what)
		if err != nil {
			return nil, err
		}
	}
	if err := s.expectEnd(); err != nil {
		return nil, err
	}
	return &Instance{Dimension: n, ProcTimes: rows[0], TardyWeights: rows[1], DueDates: rows[2]}, nil
}

func validateSched(inst *Instance, sol *Solution) Outcome {
	if len(sol.Route) != inst.Dimension {
		return infeasible("order", "got %d jobs, expected %d", len(sol.Route), inst.Dimension)
	}
	seen := make([]bool, inst.Dimension+1)
	for _, j := range sol.Route {
		if j < 1 || j > inst.Dimension {
			return infeasible(fmt.Sprintf("job %d", j), "job id out of range 1..%d", inst.Dimension)
		}
		if seen[j] {
			return infeasible(fmt.Sprintf("job %d", j), "job scheduled twice")
		}
		seen[j] = true
	}
	return feasible()
}

// evaluateSched accumulates completion times in the given order and sums the
// weighted tardiness w_j * max(C_j - d_j, 0).
func evaluateSched(inst *Instance, sol *Solution) float64 {
	completion := 0
	obj := 0
	for _, j := range sol.Route {
		completion += inst.ProcTimes[j-1]
		if tardy := completion - inst.DueDates[j-1]; tardy > 0 {
			obj += inst.TardyWeights[j-1] * tardy
		}
	}
	return float64(obj)
}
