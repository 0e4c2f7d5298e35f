// Copyright (c) 2025-2026 The intx developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package torture

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrUnsupportedWidth indicates a width in bits that does not
	// correspond to one of the fixed precision integer types.
	ErrUnsupportedWidth = ErrorKind("ErrUnsupportedWidth")

	// ErrCorpus indicates a general failure related to the failure corpus
	// database.
	ErrCorpus = ErrorKind("ErrCorpus")

	// ErrCorpusEntry indicates a corpus entry that can not be parsed.
	ErrCorpusEntry = ErrorKind("ErrCorpusEntry")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to the torture engine or its corpus.  It
// has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
