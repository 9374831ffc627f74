// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned when no REST handler was wired, which
// leaves nothing to serve.
var errNoServersAreCreated = errors.New("vault api has no http handler to serve")
