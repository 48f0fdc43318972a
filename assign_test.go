package coeval_test

import (
	"testing"

	"git.solver4all.com/azaryc2s/coeval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 3 tasks, 2 resources. Task 2 is not eligible for resource 2.
const assignInstance = `3 2
2 2
1 2
3 -1
5 4
`

func parseAssign(t *testing.T, raw string) *coeval.Instance {
	t.Helper()
	inst, err := coeval.ParseInstance(raw, coeval.ASSIGN)
	require.NoError(t, err)
	return inst
}

func TestParseAssignInstance(t *testing.T) {
	inst := parseAssign(t, assignInstance)
	assert.Equal(t, 3, inst.Tasks)
	assert.Equal(t, 2, inst.Resources)
	assert.Equal(t, []int{2, 2}, inst.Capacities)
	assert.Equal(t, [][]float64{{1, 2}, {3, -1}, {5, 4}}, inst.Costs)
}

func TestParseAssignInstance_Errors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		line int
	}{
		{"capacity row too short", "2 3\n1 1\n1 2 3\n4 5 6\n", 2},
		{"negative capacity", "1 2\n1 -1\n1 2\n", 2},
		{"cost row too long", "2 2\n1 1\n1 2 3\n4 5\n", 3},
		{"negative cost other than -1", "1 1\n1\n-2\n", 3},
		{"non-numeric cost", "1 1\n1\nabc\n", 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := coeval.ParseInstance(tc.raw, coeval.ASSIGN)
			var ferr *coeval.FormatError
			require.ErrorAs(t, err, &ferr)
			assert.Equal(t, tc.line, ferr.Line)
		})
	}
}

func TestParseAssignSolution(t *testing.T) {
	inst := parseAssign(t, assignInstance)

	sol, err := coeval.ParseSolution("1 1\n2 1\n3 2\n", inst)
	require.NoError(t, err)
	assert.Equal(t, []coeval.Assignment{{1, 1}, {2, 1}, {3, 2}}, sol.Assignments)

	_, err = coeval.ParseSolution("1 1\n2 1 9\n", inst)
	var ferr *coeval.FormatError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, 2, ferr.Line)

	_, err = coeval.ParseSolution("1 x\n", inst)
	require.ErrorAs(t, err, &ferr)
}

func TestValidateAssign(t *testing.T) {
	inst := parseAssign(t, assignInstance)

	out := coeval.Validate(inst, &coeval.Solution{Assignments: []coeval.Assignment{{1, 1}, {2, 1}, {3, 2}}})
	assert.True(t, out.Feasible)

	// task assigned twice
	out = coeval.Validate(inst, &coeval.Solution{Assignments: []coeval.Assignment{{1, 1}, {1, 2}, {3, 2}}})
	require.False(t, out.Feasible)
	assert.Equal(t, "task 1", out.Element)

	// missing assignment
	out = coeval.Validate(inst, &coeval.Solution{Assignments: []coeval.Assignment{{1, 1}, {2, 1}}})
	assert.False(t, out.Feasible)

	// ineligible pair
	out = coeval.Validate(inst, &coeval.Solution{Assignments: []coeval.Assignment{{1, 1}, {2, 2}, {3, 2}}})
	require.False(t, out.Feasible)
	assert.Equal(t, "task 2", out.Element)

	// unknown resource id is infeasible, not a crash
	out = coeval.Validate(inst, &coeval.Solution{Assignments: []coeval.Assignment{{1, 7}, {2, 1}, {3, 2}}})
	require.False(t, out.Feasible)
	assert.Equal(t, "resource 7", out.Element)
}

func TestValidateAssign_CapacityFailFast(t *testing.T) {
	// resource 1 takes a single task only
	inst := parseAssign(t, "3 2\n1 2\n1 2\n3 9\n5 4\n")
	out := coeval.Validate(inst, &coeval.Solution{Assignments: []coeval.Assignment{{1, 1}, {2, 1}, {3, 1}}})
	require.False(t, out.Feasible)
	assert.Equal(t, "resource 1", out.Element, "first overflowing resource is reported")
}

func TestEvaluateAssign(t *testing.T) {
	inst := parseAssign(t, assignInstance)
	obj, err := coeval.Evaluate(inst, &coeval.Solution{Assignments: []coeval.Assignment{{1, 1}, {2, 1}, {3, 2}}})
	require.NoError(t, err)
	assert.Equal(t, 8.0, obj)
}

func TestEvaluateAssign_Precondition(t *testing.T) {
	inst := parseAssign(t, assignInstance)
	_, err := coeval.Evaluate(inst, &coeval.Solution{Assignments: []coeval.Assignment{{2, 2}, {1, 1}, {3, 1}}})
	var perr *coeval.PreconditionError
	require.ErrorAs(t, err, &perr)
}
