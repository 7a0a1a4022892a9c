// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	keySize  = 32 // AES-256
	saltSize = 16

	maxKDFTime    = 16
	maxKDFMemory  = 1 << 20 // 1 GiB in KiB
	maxKDFThreads = 64
)

// KDFParams are the Argon2id cost parameters used to derive a field key
// from the master secret. Memory is expressed in KiB.
type KDFParams struct {
	Time    uint32
	Memory  uint32
	Threads uint8
}

// DefaultKDFParams returns the parameters used when nothing is configured:
// 1 pass over 64 MiB with 4 lanes.
//
// Every field carries its own salt, so each field costs one full derivation.
// Unlocking a vault of N records runs 2N+1 derivations (title and username
// per record, plus the secret check) while the vault lock is held. Later
// refreshes only pay for records whose ciphertext changed. See
// BenchmarkDecryptField for the per-field cost on the current machine.
func DefaultKDFParams() KDFParams {
	return KDFParams{
		Time:    1,
		Memory:  64 * 1024,
		Threads: 4,
	}
}

// Validate checks the parameters against the bounds accepted on both the
// encrypting and the decrypting side.
func (p KDFParams) Validate() error {
	switch {
	case p.Time == 0 || p.Time > maxKDFTime:
		return fmt.Errorf("%w: time %d out of range 1..%d", ErrInvalidKDFParams, p.Time, maxKDFTime)
	case p.Threads == 0 || p.Threads > maxKDFThreads:
		return fmt.Errorf("%w: threads %d out of range 1..%d", ErrInvalidKDFParams, p.Threads, maxKDFThreads)
	case p.Memory < 8*uint32(p.Threads) || p.Memory > maxKDFMemory:
		return fmt.Errorf("%w: memory %d KiB out of range %d..%d", ErrInvalidKDFParams, p.Memory, 8*uint32(p.Threads), maxKDFMemory)
	}
	return nil
}

// deriveKey stretches secret with the given salt. The caller owns the
// returned key and should Wipe it when done.
func deriveKey(secret, salt []byte, p KDFParams) []byte {
	return argon2.IDKey(secret, salt, p.Time, p.Memory, p.Threads, keySize)
}
