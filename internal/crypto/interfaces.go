// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-pass-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/codec_mock.go -package=mock

// Codec performs all client-side cryptography of the vault.
// It knows nothing about the network, storage or users: it turns plaintext
// into opaque [models.Ciphertext] under a master secret and back.
//
// Every output is self-describing: the key-derivation parameters, the salt
// and the nonce travel inside the ciphertext, so a field can be decrypted
// with nothing but the master secret and the ciphertext itself.
type Codec interface {
	// EncryptField encrypts a single scalar field (title, username).
	// Two calls with the same input produce different ciphertexts.
	EncryptField(plaintext string, secret []byte) (models.Ciphertext, error)

	// DecryptField reverses EncryptField. Any failure to open the ciphertext,
	// including a wrong secret and a non UTF-8 result, yields an error
	// wrapping [ErrDecryptionFailure].
	DecryptField(ciphertext models.Ciphertext, secret []byte) (string, error)

	// EncryptPayload serializes the payload to JSON and encrypts it as one field.
	EncryptPayload(payload models.RecordPayload, secret []byte) (models.Ciphertext, error)

	// DecryptPayload reverses EncryptPayload. Undecodable JSON is reported as
	// [ErrDecryptionFailure] as well.
	DecryptPayload(ciphertext models.Ciphertext, secret []byte) (models.RecordPayload, error)
}
