// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault holds the client's view of the encrypted record list and the
// lock state that guards its plaintext.
//
// A [Vault] starts Locked. Records fetched with [Vault.Refresh] stay
// ciphertext until [Vault.Unlock] decrypts every title and username with the
// master secret. Unlock is all-or-nothing: one record that does not open
// leaves the vault Locked with no partial cache. While Unlocked the secret is
// kept by a [SecretHolder] and is wiped on [Vault.Lock] and after every
// successful update.
//
// Writes never touch the cache optimistically. A create requires a refresh to
// show up, an update re-locks the vault, and a delete is applied locally only
// after the server confirmed it.
package vault
