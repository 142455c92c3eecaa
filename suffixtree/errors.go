package suffixtree

import "errors"

var (
	// ErrMarkerInText is returned by SetText when the input text contains
	// the end marker byte.
	ErrMarkerInText = errors.New("text contains end marker")

	// ErrSuffixLink is the sentinel wrapped by every failure that
	// CheckSuffixLinks reports.
	ErrSuffixLink = errors.New("suffix link check failed")
)
