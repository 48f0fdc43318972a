package coeval_test

import (
	"testing"

	"git.solver4all.com/azaryc2s/coeval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 3 jobs: processing times, tardiness weights, due dates.
const schedInstance = `3
2 3 1
1 2 3
2 4 1
`

func parseSched(t *testing.T, raw string) *coeval.Instance {
	t.Helper()
	inst, err := coeval.ParseInstance(raw, coeval.SCHED)
	require.NoError(t, err)
	return inst
}

func TestParseSchedInstance(t *testing.T) {
	inst := parseSched(t, schedInstance)
	assert.Equal(t, 3, inst.Dimension)
	assert.Equal(t, []int{2, 3, 1}, inst.ProcTimes)
	assert.Equal(t, []int{1, 2, 3}, inst.TardyWeights)
	assert.Equal(t, []int{2, 4, 1}, inst.DueDates)
}

func TestParseSchedInstance_Errors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		line int
	}{
		{"row too short", "3\n2 3\n1 2 3\n2 4 1\n", 2},
		{"negative processing time", "2\n2 -3\n1 2\n2 4\n", 2},
		{"non-numeric due date", "2\n2 3\n1 2\n2 x\n", 4},
		{"extra row", "2\n2 3\n1 2\n2 4\n9 9\n", 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := coeval.ParseInstance(tc.raw, coeval.SCHED)
			var ferr *coeval.FormatError
			require.ErrorAs(t, err, &ferr)
			assert.Equal(t, tc.line, ferr.Line)
		})
	}
}

func TestValidateSched(t *testing.T) {
	inst := parseSched(t, schedInstance)

	out := coeval.Validate(inst, &coeval.Solution{Route: []int{3, 1, 2}})
	assert.True(t, out.Feasible)

	out = coeval.Validate(inst, &coeval.Solution{Route: []int{1, 2}})
	assert.False(t, out.Feasible, "every job must be scheduled")

	out = coeval.Validate(inst, &coeval.Solution{Route: []int{1, 1, 2}})
	require.False(t, out.Feasible)
	assert.Equal(t, "job 1", out.Element)

	out = coeval.Validate(inst, &coeval.Solution{Route: []int{1, 2, 4}})
	require.False(t, out.Feasible)
	assert.Equal(t, "job 4", out.Element)
}

func TestEvaluateSched(t *testing.T) {
	inst := parseSched(t, schedInstance)

	// order 1,2,3: C=2,5,6 against d=2,4,1 -> tardiness 0,1,5 weighted 0,2,15
	obj, err := coeval.Evaluate(inst, &coeval.Solution{Route: []int{1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, 17.0, obj)

	// order 3,1,2: C=1,3,6 against d=1,2,4 -> tardiness 0,1,2 weighted 0,1,4
	obj, err = coeval.Evaluate(inst, &coeval.Solution{Route: []int{3, 1, 2}})
	require.NoError(t, err)
	assert.Equal(t, 5.0, obj)
}
