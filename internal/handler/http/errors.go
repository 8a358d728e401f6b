package http

import "errors"

var (
	// ErrInvalidJSON is returned to the caller when the request body cannot be
	// decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrIntegrityCheckFailed is returned when the HashSHA256 header does not
	// match the request body.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")
)
