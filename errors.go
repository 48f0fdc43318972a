package coeval

import "fmt"

// FormatError reports malformed instance or solution text. Line is 1-based;
// a Line of 0 means the error concerns the file as a whole.
type FormatError struct {
	Line     int
	Expected string
	Found    string
}

func (e *FormatError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
	}
	return fmt.Sprintf("line %d: expected %s, found %s", e.Line, e.Expected, e.Found)
}

func formatErrorf(line int, expected string, found string, args ...interface{}) *FormatError {
	return &FormatError{Line: line, Expected: expected, Found: fmt.Sprintf(found, args...)}
}

// Outcome is the result of a feasibility check. For infeasible solutions
// Reason describes the violated constraint and Element names the offending
// node, edge, task or resource.
type Outcome struct {
	Feasible bool   `json:"feasible"`
	Reason   string `json:"reason,omitempty"`
	Element  string `json:"element,omitempty"`
}

func feasible() Outcome {
	return Outcome{Feasible: true}
}

func infeasible(element string, reason string, args ...interface{}) Outcome {
	return Outcome{Feasible: false, Reason: fmt.Sprintf(reason, args...), Element: element}
}

func (o Outcome) String() string {
	if o.Feasible {
		return "feasible"
	}
	if o.Element == "" {
		return fmt.Sprintf("infeasible: %s", o.Reason)
	}
	return fmt.Sprintf("infeasible at %s: %s", o.Element, o.Reason)
}

// PreconditionError indicates a caller bug, e.g. evaluating a solution that
// never passed validation.
type PreconditionError struct {
	Msg string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition violated: %s", e.Msg)
}
