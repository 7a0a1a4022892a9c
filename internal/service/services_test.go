// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{
		UserRepository:  mock.NewMockUserRepository(ctrl),
		VaultRepository: mock.NewMockVaultRepository(ctrl),
	}
	cfg := &config.StructuredConfig{App: testAppConfig()}

	services, err := NewServices(storages, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, services.AuthService)
	require.NotNil(t, services.AppInfoService)
	assert.Equal(t, "1.2.3", services.AppInfoService.GetAppVersion(context.Background()))

	_, wrapped := services.VaultService.(*vaultValidationService)
	assert.True(t, wrapped, "vault service must be wrapped by validation")

	_, err = services.VaultService.List(context.Background(), 0)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestNewServices_MissingVersion(t *testing.T) {
	cfg := &config.StructuredConfig{App: testAppConfig()}
	cfg.App.Version = ""

	_, err := NewServices(&store.Storages{}, cfg, logger.Nop())

	require.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
