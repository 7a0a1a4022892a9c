// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
)

// errorMessage turns an error into one status line. Vault errors are
// checked first since they also wrap the adapter error behind them.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, vault.ErrInvalidMasterSecret):
		return "invalid master password"
	case errors.Is(err, vault.ErrDecryptionFailure):
		return "entry could not be decrypted"
	case errors.Is(err, vault.ErrLocked):
		return "vault is locked"
	case errors.Is(err, vault.ErrNotFoundOrUnauthorized):
		return "entry not found"
	case errors.Is(err, vault.ErrUnauthenticated):
		return "session expired, log out and log in again"
	case errors.Is(err, vault.ErrValidation):
		return validationMessage(err)
	case errors.Is(err, vault.ErrTransport), errors.Is(err, adapter.ErrTransport):
		return "server unavailable, try again"
	}
	return humanizeServerUnavailableError(err)
}

// authErrorMessage is errorMessage for the login and sign-up pages, where a
// 401 means wrong credentials rather than an expired session.
func authErrorMessage(err error) string {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "wrong email or password"
	case errors.Is(err, adapter.ErrConflict):
		return "email is already registered"
	case errors.Is(err, adapter.ErrBadRequest):
		return "invalid email or password"
	}
	return errorMessage(err)
}

// validationMessage keeps the part after the "validation failure: " prefix.
func validationMessage(err error) string {
	msg := err.Error()
	if _, rest, ok := strings.Cut(msg, vault.ErrValidation.Error()+": "); ok {
		msg, _, _ = strings.Cut(rest, ": ")
	}
	return msg
}

func humanizeServerUnavailableError(err error) string {
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "server unavailable, try again"
	}

	return err.Error()
}
