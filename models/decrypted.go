// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RecordPayload is the secondary part of an entry. It is serialized to JSON
// and encrypted as a single field.
type RecordPayload struct {
	Password string `json:"password"`
	URL      string `json:"url,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// PlainRecord is what a user types into the create and edit forms.
// It lives only in client memory and is encrypted before any network call.
type PlainRecord struct {
	Title    string
	Username string
	Payload  RecordPayload
}

// DecryptedView is the in-memory, session-scoped plaintext form of a
// [VaultRecord]. It has no JSON tags and is never persisted or sent.
type DecryptedView struct {
	ID        string
	Title     string
	Username  string
	CreatedAt time.Time

	// Payload is populated only for a single opened entry.
	// List and filter results leave it zero.
	Payload RecordPayload
}

// HasPayload reports whether the payload part has been decrypted.
func (v DecryptedView) HasPayload() bool {
	return v.Payload != (RecordPayload{})
}
