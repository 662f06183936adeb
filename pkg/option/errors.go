package option

import "fmt"

// OptionError reports a failable option that returned an error.
type OptionError struct {
	// Index is the position of the failing option in the applied list.
	Index int
	// Cause is the error the option returned.
	Cause error
}

// Error implements the error interface.
func (e *OptionError) Error() string {
	return fmt.Sprintf("option %d failed: %v", e.Index, e.Cause)
}

// Unwrap returns the underlying error.
func (e *OptionError) Unwrap() error {
	return e.Cause
}
