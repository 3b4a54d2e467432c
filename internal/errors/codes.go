package errors

// Code represents an error code
type Code string

// Error codes. Generic codes cover the usual service taxonomy; the last
// three are scox domain codes with dedicated process exit statuses.
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"

	// CodeCatalogIntegrity flags a rule catalog authoring bug caught at load time
	CodeCatalogIntegrity Code = "CATALOG_INTEGRITY"
	// CodeAllocationDeadlock flags an archetype whose budget cannot be fully spent
	CodeAllocationDeadlock Code = "ALLOCATION_DEADLOCK"
	// CodeTeamBalance flags an infeasible team generation request
	CodeTeamBalance Code = "TEAM_BALANCE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Process exit statuses, one per scriptable failure class, so callers can
// distinguish an infeasible request from an environment problem without
// parsing stderr.
const (
	ExitOK                 = 0
	ExitFailure            = 1
	ExitInvalidArgument    = 2
	ExitCatalogIntegrity   = 3
	ExitAllocationDeadlock = 4
	ExitTeamBalance        = 5
)

// ExitStatus returns the process exit status for the code
func (c Code) ExitStatus() int {
	switch c {
	case CodeOK:
		return ExitOK
	case CodeInvalidArgument:
		return ExitInvalidArgument
	case CodeCatalogIntegrity:
		return ExitCatalogIntegrity
	case CodeAllocationDeadlock:
		return ExitAllocationDeadlock
	case CodeTeamBalance:
		return ExitTeamBalance
	default:
		return ExitFailure
	}
}
