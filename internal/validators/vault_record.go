// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the server-assigned record identifier.
	FieldID = "id"

	// FieldUserID targets the owner identifier.
	FieldUserID = "user_id"

	// FieldTitle targets the encrypted title.
	FieldTitle = "title"

	// FieldUsername targets the encrypted username. An empty plaintext
	// username still encrypts to a non-empty ciphertext.
	FieldUsername = "username"

	// FieldEncryptedData targets the encrypted payload.
	FieldEncryptedData = "encrypted_data"

	FieldEmail    = "email"
	FieldPassword = "password"
)

// bcrypt ignores everything past 72 bytes.
const maxPasswordBytes = 72

// VaultValidator implements Validator for vault records, record requests
// and account credentials. Value and pointer forms are both accepted.
type VaultValidator struct {
}

// NewVaultValidator constructs a VaultValidator and returns it as Validator.
func NewVaultValidator() Validator {
	return &VaultValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.VaultRecord / *models.VaultRecord
//   - models.RecordRequest / *models.RecordRequest
//   - models.Credentials / *models.Credentials
//
// Returns ErrUnsupportedType for anything else. When fields is empty a
// default set for the type is checked.
func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.VaultRecord:
		return v.validateRecord(ctx, value, fields...)
	case *models.VaultRecord:
		return v.validateRecord(ctx, *value, fields...)

	case models.RecordRequest:
		return v.validateRequest(ctx, value, fields...)
	case *models.RecordRequest:
		return v.validateRequest(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRecord checks a record about to be stored.
//
// Default fields: ID, UserID, Title, Username, EncryptedData.
func (v *VaultValidator) validateRecord(ctx context.Context, record models.VaultRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldTitle, FieldUsername, FieldEncryptedData}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(record.ID) == "" {
				return ErrInvalidRecordID
			}
		case FieldUserID:
			if record.UserID <= 0 {
				return ErrInvalidUserID
			}
		default:
			if err := checkCiphertexts(f, record.Title, record.Username, record.EncryptedData); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateRequest checks the body of a create or update call.
//
// Default fields: Title, Username, EncryptedData.
func (v *VaultValidator) validateRequest(ctx context.Context, request models.RecordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldUsername, FieldEncryptedData}
	}

	for _, f := range fields {
		if err := checkCiphertexts(f, request.Title, request.Username, request.EncryptedData); err != nil {
			return err
		}
	}

	return nil
}

func checkCiphertexts(field string, title, username, data models.Ciphertext) error {
	switch field {
	case FieldTitle:
		if title.IsEmpty() {
			return ErrEmptyTitle
		}
	case FieldUsername:
		if username.IsEmpty() {
			return ErrEmptyUsername
		}
	case FieldEncryptedData:
		if data.IsEmpty() {
			return ErrEmptyEncryptedData
		}
	default:
		return ErrUnknownField
	}
	return nil
}

// validateCredentials checks sign-up and login bodies.
//
// Default fields: Email, Password.
func (v *VaultValidator) validateCredentials(ctx context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			email := credentials.NormalizedEmail()
			if email == "" {
				return ErrEmptyEmail
			}
			at := strings.IndexByte(email, '@')
			if at <= 0 || at == len(email)-1 || strings.ContainsAny(email, " \t") {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
			if len(credentials.Password) > maxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
