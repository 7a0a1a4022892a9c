// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the response texts shared by the HTTP and gRPC
// handlers, so both transports word the same failure the same way.
package app

const (
	// MsgInvalidLoginPassword answers a login with an unknown email or a
	// wrong password. The two cases are not told apart.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgEmailAlreadyTaken answers a sign-up with a registered email.
	MsgEmailAlreadyTaken = "email already taken"

	// MsgNoSessionToken answers a vault request without a token.
	MsgNoSessionToken = "no session token"

	// MsgTokenIsExpiredOrInvalid answers a request whose token failed
	// signature, issuer or expiry checks.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgRecordNotFound answers a request for a record that does not exist
	// or belongs to another user.
	MsgRecordNotFound = "record not found"

	MsgInternalServerError = "internal server error"
)
