// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"crypto/subtle"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
)

// SecretHolder keeps the master secret for the length of one unlock.
// It owns a private copy; the caller may wipe its own slice right after
// Unlock returns. Lock zeroes the copy.
type SecretHolder struct {
	mu     sync.RWMutex
	secret []byte
}

func NewSecretHolder() *SecretHolder {
	return &SecretHolder{}
}

// Unlock replaces any held secret with a copy of secret.
func (h *SecretHolder) Unlock(secret []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	crypto.Wipe(h.secret)
	h.secret = append([]byte(nil), secret...)
}

// Lock wipes and forgets the held secret. It is safe to call repeatedly.
func (h *SecretHolder) Lock() {
	h.mu.Lock()
	defer h.mu.Unlock()

	crypto.Wipe(h.secret)
	h.secret = nil
}

// Held reports whether a secret is currently kept.
func (h *SecretHolder) Held() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.secret) > 0
}

// With lends the secret to fn. fn must not retain the slice.
// Returns ErrLocked when nothing is held.
func (h *SecretHolder) With(fn func(secret []byte) error) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.secret) == 0 {
		return ErrLocked
	}
	return fn(h.secret)
}

// Matches compares candidate with the held secret in constant time.
func (h *SecretHolder) Matches(candidate []byte) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.secret) > 0 && subtle.ConstantTimeCompare(h.secret, candidate) == 1
}
