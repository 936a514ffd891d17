package primary

import "errors"

// FailureKind classifies a user-facing failure.
type FailureKind string

const (
	FailureStructure    FailureKind = "structure"
	FailureUnauthorized FailureKind = "unauthorized"
	FailureNotFound     FailureKind = "not_found"
	FailureGeneric      FailureKind = "generic"
	FailureInternal     FailureKind = "internal"
)

// Failure is the single error shape shown to the user. Message is safe to
// display; Err keeps the detail for logs.
type Failure struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (f *Failure) Error() string { return f.Message }

func (f *Failure) Unwrap() error { return f.Err }

// AsFailure extracts a Failure from an error chain.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
