// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Context is the UCIP context document: a user's consent record plus
// free-form profile attributes. Exactly one Context exists per owner.
//
// The struct is transport-neutral. Its wire form is the UCIP protobuf
// encoding produced by the codec package; its JSON form follows the
// protobuf JSON mapping (camelCase keys, default values omitted).
type Context struct {
	// Version is the schema version declared by the writer (e.g. "1.0").
	Version string

	// UserID is the owner identity. It always equals the identity the
	// document is stored under.
	UserID string

	// Timestamp is the creation/update time as an ISO-8601 string. It is
	// stored exactly as sent.
	Timestamp string

	// Consent holds the consent grant and the scopes it covers.
	Consent Consent

	// Attributes carries additional profile attributes. Nil when empty.
	Attributes map[string]string
}

// Consent is the consent sub-record of a [Context].
type Consent struct {
	// Granted must be true for a document to be persisted.
	Granted bool

	// Scopes lists granted scopes in the order supplied. Nil when empty.
	Scopes []string
}
