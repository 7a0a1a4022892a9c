// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrInvalidRecordID    = errors.New("invalid record ID")
	ErrEmptyTitle         = errors.New("title is required")
	ErrEmptyUsername      = errors.New("username is required")
	ErrEmptyEncryptedData = errors.New("encrypted data is required")
	ErrEmptyEmail         = errors.New("email is required")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrEmptyPassword      = errors.New("password is required")
	ErrPasswordTooLong    = errors.New("password is longer than 72 bytes")
)
