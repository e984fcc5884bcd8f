// Package exitcode defines the process exit codes of habitask.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError covers bad arguments, unknown commands and out-of-range task numbers.
	UserError = 1

	// AuthError covers missing, unreadable or rejected credentials.
	AuthError = 2

	// BackendError covers network failures, API errors and responses
	// that could not be decoded.
	BackendError = 3
)
