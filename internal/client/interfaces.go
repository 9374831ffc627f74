// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command line in args and returns when it is done.
	Run(ctx context.Context, args []string) error
}

// Prompter reads values from the user. Secret never echoes input.
type Prompter interface {
	Secret(label string) (string, error)
	Line(label string) (string, error)
	Confirm(label string) (bool, error)
}

// Clipboard receives revealed passwords for `show --copy`.
type Clipboard interface {
	WriteAll(text string) error
}
