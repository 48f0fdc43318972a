package coeval

import "fmt"

// kindSpec bundles the parser, validator and objective function of one
// problem kind. The kind is selected once, when the instance is loaded.
type kindSpec struct {
	parseInstance func(*lineScanner) (*Instance, error)
	parseSolution func(*lineScanner, *Instance) (*Solution, error)
	validate      func(*Instance, *Solution) Outcome
	evaluate      func(*Instance, *Solution) float64
}

var kinds = map[string]kindSpec{
	TSP:    {parseTSPInstance, parseRouteSolution, validateTSP, evaluateTSP},
	ASSIGN: {parseAssignInstance, parseAssignSolution, validateAssign, evaluateAssign},
	SCHED:  {parseSchedInstance, parseRouteSolution, validateSched, evaluateSched},
	CANDLE: {parseCandleInstance, parseRouteSolution, validateCandle, evaluateCandle},
}

// Kinds lists the supported problem kinds.
func Kinds() []string {
	return []string{TSP, ASSIGN, SCHED, CANDLE}
}

// ParseInstance builds an Instance of the declared kind from raw instance
// text. It returns a *FormatError when the text does not match the kind's
// grammar.
func ParseInstance(raw string, kind string) (*Instance, error) {
	spec, ok := kinds[kind]
	if !ok {
		return nil, &FormatError{Expected: fmt.Sprintf("problem kind out of %v", Kinds()), Found: fmt.Sprintf("%q", kind)}
	}
	inst, err := spec.parseInstance(newLineScanner(raw))
	if err != nil {
		return nil, err
	}
	inst.Kind = kind
	return inst, nil
}

// ParseSolution reads a candidate solution for inst. Only syntactic shape is
// checked here; whether the referenced ids exist is a feasibility concern
// and left to Validate. inst must come from ParseInstance.
func ParseSolution(raw string, inst *Instance) (*Solution, error) {
	return kinds[inst.Kind].parseSolution(newLineScanner(raw), inst)
}

// Validate checks structural completeness and constraint satisfaction of sol
// against inst. It stops at the first violation and names the offending
// element.
func Validate(inst *Instance, sol *Solution) Outcome {
	return kinds[inst.Kind].validate(inst, sol)
}

// Evaluate computes the objective value of a feasible solution. Calling it
// with a solution that does not pass Validate is a caller bug and fails with
// a *PreconditionError.
func Evaluate(inst *Instance, sol *Solution) (float64, error) {
	spec := kinds[inst.Kind]
	if out := spec.validate(inst, sol); !out.Feasible {
		return 0, &PreconditionError{Msg: fmt.Sprintf("evaluating an unvalidated solution (%s)", out)}
	}
	return spec.evaluate(inst, sol), nil
}
