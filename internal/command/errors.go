package command

import "errors"

var (
	// ErrInvalidInput flags malformed numeric or enumerated fields.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTransactionFailure flags an atomic store operation that could not
	// commit. The wrapped text is surfaced to the caller verbatim.
	ErrTransactionFailure = errors.New("transaction failure")
)
