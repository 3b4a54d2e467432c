package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// Type checking helpers

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsCatalogIntegrity checks if an error is a catalog integrity error
func IsCatalogIntegrity(err error) bool {
	return GetCode(err) == CodeCatalogIntegrity
}

// IsAllocationDeadlock checks if an error is an allocation deadlock error
func IsAllocationDeadlock(err error) bool {
	return GetCode(err) == CodeAllocationDeadlock
}

// IsTeamBalance checks if an error is a team balance error
func IsTeamBalance(err error) bool {
	return GetCode(err) == CodeTeamBalance
}

// ExitStatus returns the process exit status for an error
func ExitStatus(err error) int {
	return GetCode(err).ExitStatus()
}
