// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

// Describe turns a client error into a message for the terminal. Known
// failures get a fixed sentence; anything else is shown as is.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPromptCancelled):
		return "Cancelled."
	case errors.Is(err, service.ErrNotLoggedIn):
		return "You are not logged in. Run `login` first."
	case errors.Is(err, service.ErrTokenIsExpired):
		return "Your session has expired. Run `login` again."
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Your session is no longer valid. Run `login` again."
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, service.ErrCouldNotDecrypt):
		return "This entry could not be decrypted with your master passphrase."
	case errors.Is(err, store.ErrLoginAlreadyExists):
		return "That username or email is already registered."
	case errors.Is(err, store.ErrEntryNotFound):
		return "No such entry."
	case errors.Is(err, store.ErrVersionConflict):
		return "The entry was changed elsewhere. Run `show` and try again."
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Invalid input: " + err.Error()
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "The server is unreachable. Check your network and the server address."
	}

	return err.Error()
}

// RenderError styles a described error for stderr.
func RenderError(err error) string {
	return errorStyle.Render("Error:") + " " + Describe(err)
}
