package pbx

import "errors"

var (
	// ErrSectionNotFound reports that a required manifest region could
	// not be located. Callers treat this as fatal for the whole run.
	ErrSectionNotFound = errors.New("section not found")

	// ErrUnknownFileType reports a filename whose extension has no
	// declared type tag, built in or configured.
	ErrUnknownFileType = errors.New("unknown file type")

	// ErrIdentifierExhausted reports that identifier generation ran out
	// of attempts without finding one absent from the manifest.
	ErrIdentifierExhausted = errors.New("identifier space exhausted")
)
