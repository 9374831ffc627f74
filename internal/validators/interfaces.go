// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request models before they reach the services:
// account input on register and login, vault entries on every write and the
// master passphrase on the client.
//
// A Validator takes an optional list of field names. When the list is empty
// every field of the model is checked; otherwise only the named ones are,
// which lets the same validator serve create and update paths.
package validators

import "context"

// Validator validates the provided input, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
