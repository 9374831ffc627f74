// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the vault command line client.
//
// Each invocation runs one cobra command. Commands that talk to the server
// open the local key store and build the client services on demand, so
// `--help` works without a configured server.
package client
