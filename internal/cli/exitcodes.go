package cli

import (
	"errors"

	"github.com/fastygo/planner/domain"
)

// Exit codes reported by the planner binary.
const (
	ExitSuccess    = 0
	ExitError      = 1
	ExitUsage      = 2
	ExitNotFound   = 3
	ExitDataErr    = 4
	ExitValidation = 5
)

// UsageError marks mistakes in how a command was invoked.
type UsageError struct {
	msg string
}

func (e *UsageError) Error() string { return e.msg }

func usageError(msg string) error {
	return &UsageError{msg: msg}
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var usage *UsageError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &usage):
		return ExitUsage
	case domain.IsDomainError(err, domain.ErrCodeNotFound):
		return ExitNotFound
	case domain.IsDomainError(err, domain.ErrCodeInvalid):
		return ExitValidation
	case domain.IsDomainError(err, domain.ErrCodeUnavailable), domain.IsDomainError(err, domain.ErrCodeQuotaExceeded):
		return ExitDataErr
	}
	return ExitError
}
