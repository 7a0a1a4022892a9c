// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "master secret", err: fmt.Errorf("%w: %w", vault.ErrInvalidMasterSecret, vault.ErrDecryptionFailure), want: "invalid master password"},
		{name: "decryption", err: fmt.Errorf("record x: %w", vault.ErrDecryptionFailure), want: "entry could not be decrypted"},
		{name: "locked", err: vault.ErrLocked, want: "vault is locked"},
		{name: "not found", err: fmt.Errorf("%w: %w", vault.ErrNotFoundOrUnauthorized, adapter.ErrNotFound), want: "entry not found"},
		{name: "unauthenticated", err: fmt.Errorf("%w: %w", vault.ErrUnauthenticated, adapter.ErrUnauthorized), want: "session expired, log out and log in again"},
		{name: "validation", err: fmt.Errorf("%w: password is required", vault.ErrValidation), want: "password is required"},
		{name: "transport", err: fmt.Errorf("%w: %w", vault.ErrTransport, adapter.ErrTransport), want: "server unavailable, try again"},
		{name: "network text", err: errors.New("Get http://x: dial tcp 127.0.0.1:1: connection refused"), want: "server unavailable, try again"},
		{name: "other", err: errors.New("something odd"), want: "something odd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorMessage(tt.err))
		})
	}
}

func TestAuthErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "unauthorized", err: fmt.Errorf("login: %w", adapter.ErrUnauthorized), want: "wrong email or password"},
		{name: "conflict", err: fmt.Errorf("signup: %w", adapter.ErrConflict), want: "email is already registered"},
		{name: "bad request", err: fmt.Errorf("signup: %w", adapter.ErrBadRequest), want: "invalid email or password"},
		{name: "transport", err: fmt.Errorf("login: %w", adapter.ErrTransport), want: "server unavailable, try again"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, authErrorMessage(tt.err))
		})
	}
}
