package books

import "errors"

var (
	// ErrNotFound means no document matched the id.
	ErrNotFound = errors.New("no book exists")
	// ErrMalformedID means the id can't be parsed into the backend's id format.
	ErrMalformedID = errors.New("malformed book id")
	// ErrNotAcknowledged means the store did not acknowledge a write.
	ErrNotAcknowledged = errors.New("write not acknowledged")
)
