package coeval_test

import (
	"testing"

	"git.solver4all.com/azaryc2s/coeval"
	"github.com/stretchr/testify/assert"
)

func TestFormatError(t *testing.T) {
	err := &coeval.FormatError{Line: 3, Expected: "3 fields (edge record)", Found: "2 fields"}
	assert.Equal(t, "line 3: expected 3 fields (edge record), found 2 fields", err.Error())

	err = &coeval.FormatError{Expected: "problem kind", Found: `"FOO"`}
	assert.Equal(t, `expected problem kind, found "FOO"`, err.Error())
}

func TestOutcomeString(t *testing.T) {
	out := coeval.Outcome{Feasible: true}
	assert.Equal(t, "feasible", out.String())

	out = coeval.Outcome{Reason: "edge not present in the instance", Element: "edge 1-3"}
	assert.Equal(t, "infeasible at edge 1-3: edge not present in the instance", out.String())

	out = coeval.Outcome{Reason: "got 2 stops, expected 4"}
	assert.Equal(t, "infeasible: got 2 stops, expected 4", out.String())
}

func TestPreconditionError(t *testing.T) {
	err := &coeval.PreconditionError{Msg: "evaluating an unvalidated solution"}
	assert.Contains(t, err.Error(), "precondition violated")
}
