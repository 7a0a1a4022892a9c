// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrDecryptionFailure is returned when a ciphertext cannot be opened:
	// wrong secret, tampered bytes, unknown format or invalid plaintext.
	ErrDecryptionFailure = errors.New("decryption failure")

	// ErrEmptySecret is returned when an empty master secret is supplied.
	ErrEmptySecret = errors.New("master secret is empty")

	// ErrInvalidKDFParams is returned by NewCodec for out-of-range Argon2id parameters.
	ErrInvalidKDFParams = errors.New("invalid key derivation parameters")
)
