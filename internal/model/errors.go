package model

import "fmt"

// InputError reports malformed geometry or reinforcement placement.
// Fatal for the element it belongs to, never for the batch.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string {
	return "input error: " + e.Msg
}

// Inputf builds an InputError with a formatted message.
func Inputf(format string, args ...any) *InputError {
	return &InputError{Msg: fmt.Sprintf(format, args...)}
}

// MaterialError reports an unsupported or missing material property
// combination.
type MaterialError struct {
	Msg string
}

func (e *MaterialError) Error() string {
	return "material error: " + e.Msg
}

// ConvergenceError reports a computation that cannot produce a result:
// an unbraceable demand point, an undefined moment magnifier, or an
// exhausted proposal search.
type ConvergenceError struct {
	Op  string // which computation failed
	Msg string
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("convergence error in %s: %s", e.Op, e.Msg)
}
