// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request bodies and records before they reach
// the store.
//
// A Validator accepts any supported model and an optional list of field
// names. With no fields, a default set for the model is checked; with
// fields, only those are. Services call it through a decorator so that
// handlers and repositories stay free of input rules.
package validators

import "context"

// Validator validates obj, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
