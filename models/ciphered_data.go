// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Ciphertext is an opaque string produced by the client-side codec.
// Neither the server nor the database can interpret it; only a holder of
// the master secret can turn it back into plaintext.
type Ciphertext string

// String returns the encoded ciphertext.
func (c Ciphertext) String() string {
	return string(c)
}

// IsEmpty reports whether the ciphertext carries no data at all.
func (c Ciphertext) IsEmpty() bool {
	return c == ""
}
