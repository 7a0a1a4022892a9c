// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
)

var (
	// ErrDecryptionFailure is the codec's error; it is re-exported so callers
	// only need this package to classify failures.
	ErrDecryptionFailure = crypto.ErrDecryptionFailure

	// ErrValidation is returned before any crypto or network work when a
	// required field is missing.
	ErrValidation = errors.New("validation failure")

	// ErrNotFoundOrUnauthorized does not distinguish a missing record from
	// a record owned by someone else.
	ErrNotFoundOrUnauthorized = errors.New("record not found or not owned")

	// ErrTransport is a retryable network or storage failure.
	ErrTransport = errors.New("storage unavailable")

	// ErrUnauthenticated means the session is missing or expired.
	ErrUnauthenticated = errors.New("not authenticated")

	ErrLocked              = errors.New("vault is locked")
	ErrAlreadyUnlocked     = errors.New("vault is already unlocked")
	ErrInvalidMasterSecret = errors.New("invalid master password")

	// ErrStaleResponse is returned by Refresh when a newer refresh or a
	// delete was issued while it was in flight. Its result is discarded.
	ErrStaleResponse = errors.New("stale response discarded")
)

func mapStoreError(err error) error {
	switch {
	case errors.Is(err, adapter.ErrNotFound), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrNotFoundOrUnauthorized, err)
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	default:
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
}
