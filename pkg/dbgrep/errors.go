package dbgrep

import "errors"

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	records, err := scanner.Scan(root)
//	if errors.Is(err, dbgrep.ErrPathNotFound) {
//	    // Handle missing root path
//	}
var (
	// ErrInvalidConfig indicates the provided scan configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrPathNotFound indicates the root path does not exist.
	ErrPathNotFound = errors.New("path does not exist")

	// ErrInvalidPattern indicates the keyword failed to compile as a regular
	// expression. This is a configuration error, never a per-file error.
	ErrInvalidPattern = errors.New("invalid search pattern")

	// ErrExportFailed indicates results could not be written to the export
	// destination.
	ErrExportFailed = errors.New("export failed")
)

// ExitCodeForError returns the process exit code for an error. Returns
// ExitSuccess (0) for nil and ExitError (1) for everything else; the CLI
// surface defines no finer-grained codes.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitError
}
