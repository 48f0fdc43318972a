package coeval

import "fmt"

// ASSIGN instance format:
//
//	T R
//	c_1 ... c_R	(capacity of each resource, in tasks)
//	T cost rows with R entries each; an entry of -1 marks the pair as
//	ineligible, every other entry must be >= 0.
func parseAssignInstance(s *lineScanner) (*Instance, error) {
	header, line, err := s.expect(2, "task and resource counts")
	if err != nil {
		return nil, err
	}
	t, err := parseIntField(header[0], line, "task count")
	if err != nil {
		return nil, err
	}
	r, err := parseIntField(header[1], line, "resource count")
	if err != nil {
		return nil, err
	}
	if t < 1 || r < 1 {
		return nil, formatErrorf(line, "positive task and resource counts", "%d and %d", t, r)
	}

	capFields, line, err := s.expect(r, "resource capacities")
	if err != nil {
		return nil, err
	}
	caps, err := parseIntRow(capFields, line, "capacity")
	if err != nil {
		return nil, err
	}

	costs := make([][]float64, t)
	for i := 0; i < t; i++ {
		fields, line, err := s.expect(r, "assignment costs")
		if err != nil {
			return nil, err
		}
		row := make([]float64, r)
		for j, f := range fields {
			c, err := parseFloatField(f, line, "assignment cost")
			if err != nil {
				return nil, err
			}
			if c < 0 && c != -1 {
				return nil, formatErrorf(line, "non-negative cost or -1", "%g", c)
			}
			row[j] = c
		}
		costs[i] = row
	}
	if err := s.expectEnd(); err != nil {
		return nil, err
	}
	return &Instance{Dimension: t, Tasks: t, Resources: r, Capacities: caps, Costs: costs}, nil
}

// parseAssignSolution reads one "task resource" pair per line.
func parseAssignSolution(s *lineScanner, inst *Instance) (*Solution, error) {
	var assignments []Assignment
	for {
		fields, line, ok := s.next()
		if !ok {
			break
		}
		if len(fields) != 2 {
			return nil, formatErrorf(line, "2 fields (task and resource ids)", "%d fields", len(fields))
		}
		task, err := parseIntField(fields[0], line, "task id")
		if err != nil {
			return nil, err
		}
		resource, err := parseIntField(fields[1], line, "resource id")
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, Assignment{Task: task, Resource: resource})
	}
	return &Solution{Assignments: assignments}, nil
}

// validateAssign checks that every task is assigned exactly once to an
// eligible resource and accumulates capacity usage, stopping at the first
// resource that overflows.
func validateAssign(inst *Instance, sol *Solution) Outcome {
	if len(sol.Assignments) != inst.Tasks {
		return infeasible("assignment", "got %d assignments, expected %d", len(sol.Assignments), inst.Tasks)
	}
	assigned := make([]bool, inst.Tasks+1)
	load := make([]int, inst.Resources+1)
	for _, a := range sol.Assignments {
		if a.Task < 1 || a.Task > inst.Tasks {
			return infeasible(fmt.Sprintf("task %d", a.Task), "task id out of range 1..%d", inst.Tasks)
		}
		if a.Resource < 1 || a.Resource > inst.Resources {
			return infeasible(fmt.Sprintf("resource %d", a.Resource), "resource id out of range 1..%d", inst.Resources)
		}
		if assigned[a.Task] {
			return infeasible(fmt.Sprintf("task %d", a.Task), "task assigned twice")
		}
		assigned[a.Task] = true
		if inst.Costs[a.Task-1][a.Resource-1] == -1 {
			return infeasible(fmt.Sprintf("task %d", a.Task), "task not eligible for resource %d", a.Resource)
		}
		load[a.Resource]++
		if load[a.Resource] > inst.Capacities[a.Resource-1] {
			return infeasible(fmt.Sprintf("resource %d", a.Resource), "capacity %d exceeded", inst.Capacities[a.Resource-1])
		}
	}
	return feasible()
}

// evaluateAssign sums the per-assignment costs in solution order.
func evaluateAssign(inst *Instance, sol *Solution) float64 {
	cost := 0.0
	for _, a := range sol.Assignments {
		cost += inst.Costs[a.Task-1][a.Resource-1]
	}
	return cost
}
