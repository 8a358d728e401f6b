// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing messages shared by the HTTP and gRPC
// transports, so both word the same outcome the same way.
package app

const (
	// MsgInternalServerError replaces the details of any failure the caller
	// cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgInvalidGzip is returned when a gzip-encoded request body cannot be
	// inflated.
	MsgInvalidGzip = "invalid gzip data"
)
