// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Session tracks the signed-in account. The session cookie itself lives in
// the adapter's cookie jar.
type Session struct {
	adapter adapter.ServerAdapter
	vault   *vault.Vault

	userID atomic.Int64

	logger *logger.Logger
}

func NewSession(serverAdapter adapter.ServerAdapter, v *vault.Vault, logger *logger.Logger) *Session {
	return &Session{
		adapter: serverAdapter,
		vault:   v,
		logger:  logger,
	}
}

// Signup registers an account. The caller still has to log in.
func (s *Session) Signup(ctx context.Context, creds models.Credentials) (models.User, error) {
	user, err := s.adapter.Signup(ctx, creds)
	if err != nil {
		s.logger.Warn().Err(err).Msg("signup failed")
		return models.User{}, fmt.Errorf("signup: %w", err)
	}

	s.logger.Info().Int64("user_id", user.UserID).Msg("account created")
	return user, nil
}

// Login starts a session. Whatever the vault held for a previous account is
// discarded first.
func (s *Session) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	s.vault.Reset()

	token, err := s.adapter.Login(ctx, creds)
	if err != nil {
		s.logger.Warn().Err(err).Msg("login failed")
		return models.Token{}, fmt.Errorf("login: %w", err)
	}

	s.userID.Store(token.UserID)
	s.logger.Info().Int64("user_id", token.UserID).Msg("logged in")
	return token, nil
}

// Logout locks the vault and then ends the session on the server. The local
// state is cleared even if the server call fails.
func (s *Session) Logout(ctx context.Context) error {
	s.vault.Reset()
	userID := s.userID.Swap(0)

	if err := s.adapter.Logout(ctx); err != nil {
		s.logger.Warn().Err(err).Int64("user_id", userID).Msg("server logout failed")
		return fmt.Errorf("logout: %w", err)
	}

	s.logger.Info().Int64("user_id", userID).Msg("logged out")
	return nil
}

// UserID is zero while logged out.
func (s *Session) UserID() int64 {
	return s.userID.Load()
}

func (s *Session) ServerVersion(ctx context.Context) (string, error) {
	return s.adapter.GetVersion(ctx)
}
