// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the vault Storage API.
//
// [ServerAdapter] hides the transport from the vault core. The HTTP
// implementation keeps the session cookie issued at login in the resty
// cookie jar, so every later call is authenticated without the caller
// handling credentials.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrUnauthorized] for 401). Requests that never got a response wrap
// [ErrTransport].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the vault server.
type ServerAdapter interface {
	// Signup creates an account. It does not log the user in.
	Signup(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login authenticates the account and keeps the issued session for
	// subsequent calls.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)

	// Logout ends the session on the server and forgets it locally.
	Logout(ctx context.Context) error

	// ListRecords returns every record owned by the session user, newest first.
	ListRecords(ctx context.Context) ([]models.VaultRecord, error)

	// CreateRecord stores a new record and returns it with the
	// server-assigned id and timestamps.
	CreateRecord(ctx context.Context, req models.RecordRequest) (models.VaultRecord, error)

	// UpdateRecord replaces all three ciphertext fields of a record.
	// Returns [ErrNotFound] (wrapped) when the record is missing or not owned.
	UpdateRecord(ctx context.Context, id string, req models.RecordRequest) (models.VaultRecord, error)

	// DeleteRecord removes a record.
	// Returns [ErrNotFound] (wrapped) when the record is missing or not owned.
	DeleteRecord(ctx context.Context, id string) error

	// GetVersion returns the server application version.
	GetVersion(ctx context.Context) (string, error)
}
