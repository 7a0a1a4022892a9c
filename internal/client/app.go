// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

var ErrNilConfig = errors.New("client config is nil")

// App is the terminal client process.
type App struct {
	session *Session
	vault   *vault.Vault
	ui      *tui.TUI

	logger *logger.Logger
}

// NewApp builds every client component from cfg. Nothing touches the network
// until the user logs in.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	codec, err := crypto.NewCodec(crypto.KDFParams{
		Time:    cfg.Crypto.KDFTime,
		Memory:  cfg.Crypto.KDFMemory,
		Threads: cfg.Crypto.KDFThreads,
	})
	if err != nil {
		return nil, fmt.Errorf("create codec: %w", err)
	}

	v := vault.New(serverAdapter, codec, vault.NewSecretHolder(), logger)
	session := NewSession(serverAdapter, v, logger)

	ui, err := tui.New(session, v, generator.New(), buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		session: session,
		vault:   v,
		ui:      ui,
		logger:  logger,
	}, nil
}

// Run blocks until the user quits. The master secret is wiped on the way out.
func (a *App) Run(ctx context.Context) error {
	defer a.vault.Lock()

	if version, err := a.session.ServerVersion(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("server version unavailable")
	} else {
		a.logger.Info().Str("server_version", version).Msg("server reachable")
	}

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
