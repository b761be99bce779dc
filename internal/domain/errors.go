package domain

import "fmt"

// ErrCode is a closed set of error kinds the Assignment Core can raise.
// It intentionally carries no relation to any particular solver
// backend's own error types — callers switch on ErrCode, never on the
// underlying cause.
type ErrCode string

const (
	// ErrInputSchema means a required column or row is absent or malformed. Fatal.
	ErrInputSchema ErrCode = "INPUT_SCHEMA"
	// ErrInputType means a required numeric cell could not be coerced. Fatal.
	ErrInputType ErrCode = "INPUT_TYPE"
	// ErrAvoidanceParse means the optional avoidance rows could not be parsed.
	// Recovered locally by the Normalizer: logged, treated as empty avoidance.
	ErrAvoidanceParse ErrCode = "AVOIDANCE_PARSE"
	// ErrSolverUnavailable means no configured backend could be constructed. Fatal.
	ErrSolverUnavailable ErrCode = "SOLVER_UNAVAILABLE"
	// ErrSolverInfeasible means the solver proved infeasibility. Not fatal.
	ErrSolverInfeasible ErrCode = "SOLVER_INFEASIBLE"
	// ErrSolverTimeout means the time limit was reached without a proven optimum.
	ErrSolverTimeout ErrCode = "SOLVER_TIMEOUT"
	// ErrInvariantViolation means the extracted solution fails a §3 invariant. Fatal.
	ErrInvariantViolation ErrCode = "INVARIANT_VIOLATION"
)

// RosterError is the Assignment Core's single error type. Every fatal
// condition raised by the normalizer, model builder, solver driver or
// extractor is a *RosterError so callers can switch on Code rather
// than string-matching messages.
type RosterError struct {
	Code    ErrCode
	Message string
	Cause   error
}

func (e *RosterError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *RosterError) Unwrap() error {
	return e.Cause
}

// NewRosterError builds a RosterError. cause may be nil.
func NewRosterError(code ErrCode, message string, cause error) *RosterError {
	return &RosterError{Code: code, Message: message, Cause: cause}
}

// IsCode reports whether err is a *RosterError carrying the given code.
func IsCode(err error, code ErrCode) bool {
	re, ok := err.(*RosterError)
	if !ok {
		return false
	}
	return re.Code == code
}
