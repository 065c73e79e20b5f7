// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks record requests against the Resource Definition
// of their kind before any storage call is made.
//
// Failures wrap one of the sentinel errors of this package so the transport
// can map them to a status code with errors.Is.
package validators

import "context"

// Validator validates a request value. The optional field names restrict
// validation to those parts of the value; with none, every rule applies.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
