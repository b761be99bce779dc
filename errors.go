package rostercore

import "github.com/flightops/rostercore/internal/domain"

// Re-exported error machinery (spec.md §7) so a caller can switch on
// ErrCode without importing internal/domain.
type (
	ErrCode     = domain.ErrCode
	RosterError = domain.RosterError
)

const (
	ErrInputSchema        = domain.ErrInputSchema
	ErrInputType          = domain.ErrInputType
	ErrAvoidanceParse     = domain.ErrAvoidanceParse
	ErrSolverUnavailable  = domain.ErrSolverUnavailable
	ErrSolverInfeasible   = domain.ErrSolverInfeasible
	ErrSolverTimeout      = domain.ErrSolverTimeout
	ErrInvariantViolation = domain.ErrInvariantViolation
)

// IsCode reports whether err is a *RosterError carrying code.
func IsCode(err error, code ErrCode) bool {
	return domain.IsCode(err, code)
}
