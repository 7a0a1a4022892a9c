// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Blob layout before base64:
//
//	version(1) | time(4) | memory(4) | threads(1) | salt(16) | nonce(12) | sealed
//
// The header (everything before the nonce) is bound to the ciphertext as
// GCM additional data, so editing the parameters breaks the tag.
const (
	formatVersion byte = 1
	headerSize         = 1 + 4 + 4 + 1 + saltSize
	nonceSize          = 12
	tagSize            = 16
)

type codec struct {
	params KDFParams
	random io.Reader
}

// NewCodec constructs a [Codec] that encrypts with the given Argon2id
// parameters. Decryption always uses the parameters stored in the ciphertext.
func NewCodec(params KDFParams) (Codec, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &codec{params: params, random: rand.Reader}, nil
}

func (c *codec) EncryptField(plaintext string, secret []byte) (models.Ciphertext, error) {
	blob, err := c.seal([]byte(plaintext), secret)
	if err != nil {
		return "", err
	}
	return models.Ciphertext(base64.StdEncoding.EncodeToString(blob)), nil
}

func (c *codec) DecryptField(ciphertext models.Ciphertext, secret []byte) (string, error) {
	plaintext, err := c.open(ciphertext, secret)
	if err != nil {
		return "", err
	}
	defer Wipe(plaintext)

	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: plaintext is not valid UTF-8", ErrDecryptionFailure)
	}
	return string(plaintext), nil
}

func (c *codec) EncryptPayload(payload models.RecordPayload, secret []byte) (models.Ciphertext, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}
	defer Wipe(data)

	blob, err := c.seal(data, secret)
	if err != nil {
		return "", err
	}
	return models.Ciphertext(base64.StdEncoding.EncodeToString(blob)), nil
}

func (c *codec) DecryptPayload(ciphertext models.Ciphertext, secret []byte) (models.RecordPayload, error) {
	var payload models.RecordPayload

	plaintext, err := c.open(ciphertext, secret)
	if err != nil {
		return payload, err
	}
	defer Wipe(plaintext)

	if err = json.Unmarshal(plaintext, &payload); err != nil {
		return models.RecordPayload{}, fmt.Errorf("%w: unmarshal payload: %w", ErrDecryptionFailure, err)
	}
	return payload, nil
}

func (c *codec) seal(plaintext, secret []byte) ([]byte, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	header := make([]byte, headerSize)
	header[0] = formatVersion
	binary.BigEndian.PutUint32(header[1:5], c.params.Time)
	binary.BigEndian.PutUint32(header[5:9], c.params.Memory)
	header[9] = c.params.Threads
	salt := header[10:]
	if _, err := io.ReadFull(c.random, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	key := deriveKey(secret, salt, c.params)
	defer Wipe(key)

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, nonceSize)
	if _, err = io.ReadFull(c.random, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, headerSize+nonceSize+len(plaintext)+tagSize)
	blob = append(blob, header...)
	blob = append(blob, nonce...)
	return gcm.Seal(blob, nonce, plaintext, header), nil
}

func (c *codec) open(ciphertext models.Ciphertext, secret []byte) ([]byte, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	blob, err := base64.StdEncoding.DecodeString(ciphertext.String())
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrDecryptionFailure, err)
	}
	if len(blob) < headerSize+nonceSize+tagSize {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrDecryptionFailure)
	}
	if blob[0] != formatVersion {
		return nil, fmt.Errorf("%w: unsupported format version %d", ErrDecryptionFailure, blob[0])
	}

	params := KDFParams{
		Time:    binary.BigEndian.Uint32(blob[1:5]),
		Memory:  binary.BigEndian.Uint32(blob[5:9]),
		Threads: blob[9],
	}
	if err = params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailure, err)
	}

	header := blob[:headerSize]
	nonce := blob[headerSize : headerSize+nonceSize]
	sealed := blob[headerSize+nonceSize:]

	key := deriveKey(secret, header[10:], params)
	defer Wipe(key)

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, nonce, sealed, header)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailure, err)
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// IsDecryptionFailure reports whether err was caused by an unreadable ciphertext.
func IsDecryptionFailure(err error) bool {
	return errors.Is(err, ErrDecryptionFailure)
}
