// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the business rules applied before a document is
// stored. [ContextValidator] is the consent gate of the write path; it takes
// either the raw JSON body or a decoded [models.Context] so HTTP and gRPC
// enforce the same rules.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator checks a value. fields optionally narrows which checks run;
// an empty list runs all of them.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
