// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrEmptyBody is returned when an update request carries no body.
	ErrEmptyBody = errors.New("empty request body")

	// ErrInvalidGzipBody is returned when a request declares gzip encoding
	// but its body is not a gzip stream.
	ErrInvalidGzipBody = errors.New("invalid gzip request body")
)

// Details written in the {"detail": ...} body of error responses.
const (
	detailInvalidToken       = "Invalid token"
	detailForbidden          = "Unauthorized"
	detailNotFound           = "Not found"
	detailDecryptionFailed   = "Decryption failed"
	detailConsentRequired    = "Consent required"
	detailInvalidRequest     = "Invalid request"
	detailInternalError      = "Internal server error"
	detailStorageUnavailable = "Storage unavailable"
)
