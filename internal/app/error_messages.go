// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response messages shared by the server handlers
// and the client adapter. The client matches on them to tell apart errors
// that share a status code, so the wording is part of the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	MsgInvalidCredentials = "invalid credentials"

	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a bearer token verified but has
	// passed its exp claim.
	MsgTokenIsExpired = "token is expired"

	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgIDMismatch is returned by PUT when the path id and the body id
	// differ.
	MsgIDMismatch = "id in path does not match id in body"

	MsgEntryNotFound = "entry not found"

	// MsgVersionConflict is returned when an update names a version that is
	// no longer current.
	MsgVersionConflict = "version conflict"

	MsgRegistrationFailed = "registration failed"
	MsgLoginFailed        = "login failed"

	// MsgLoginAlreadyExists is returned when the username or email is taken.
	MsgLoginAlreadyExists = "username or email already exists"

	// MsgPayloadHashMismatch is returned when the X-Payload-Hash header of an
	// entry write does not match the body.
	MsgPayloadHashMismatch = "payload hash mismatch"
)
