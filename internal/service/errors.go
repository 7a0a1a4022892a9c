// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyTaken  = errors.New("email already taken")
	ErrUnauthorized       = errors.New("no authenticated user")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrRecordNotFound is returned for missing records and for records
	// owned by someone else.
	ErrRecordNotFound = errors.New("vault record not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
